package model

import "fmt"

// SubjectNotFoundError is returned when a selected code has no matching subject in the catalog
type SubjectNotFoundError struct {
	Code string
}

func (err SubjectNotFoundError) Error() string {
	return fmt.Sprintf("subject \"%v\" was not found in the catalog", err.Code)
}

// UnknownPriorityKindError is returned when a priority is built from an unrecognized type
type UnknownPriorityKindError struct {
	Type string
}

func (err UnknownPriorityKindError) Error() string {
	return fmt.Sprintf("unknown priority kind \"%v\"", err.Type)
}

// PriorityValueError is returned when a raw priority value cannot be interpreted for its kind
type PriorityValueError struct {
	Index int
	Type  PriorityType
	Err   error
}

func (err PriorityValueError) Error() string {
	return fmt.Sprintf("priority %d (%v) has an invalid value: %v", err.Index, err.Type, err.Err)
}

func (err PriorityValueError) Unwrap() error {
	return err.Err
}
