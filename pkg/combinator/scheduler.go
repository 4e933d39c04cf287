package combinator

import (
	"errors"
	"time"

	"github.com/limaJavier/combinations/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultWeek is the set of days an "any day" free-day priority looks into
var DefaultWeek = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

type Scheduler interface {
	// Schedule builds every combination of one commission per selected subject that satisfies all the exclusive priorities,
	// scores them and returns them sorted by descending weight.
	// Selections whose code is not in the catalog are reported as model.SubjectNotFoundError (joined) unless lenient resolution is enabled
	Schedule(
		subjects []model.Subject,
		selections []model.SubjectSelection,
		priorities []model.Priority,
		mode SortMode,
	) ([]model.Combination, error)
}

type Option func(scheduler *scheduler)

func WithLogger(logger *zap.Logger) Option {
	return func(scheduler *scheduler) {
		if logger != nil {
			scheduler.logger = logger
		}
	}
}

func WithTransform(transform Transform) Option {
	return func(scheduler *scheduler) {
		if transform != nil {
			scheduler.transform = transform
		}
	}
}

func WithTravelEstimator(estimator TravelEstimator) Option {
	return func(scheduler *scheduler) {
		if estimator != nil {
			scheduler.travel = estimator
		}
	}
}

func WithWeek(week []time.Weekday) Option {
	return func(scheduler *scheduler) {
		if len(week) > 0 {
			scheduler.week = week
		}
	}
}

// WithPruning discards partial combinations that already break an exclusive priority instead of waiting for them to be complete.
// Results are the same, fewer leaves are visited
func WithPruning(enabled bool) Option {
	return func(scheduler *scheduler) {
		scheduler.pruning = enabled
	}
}

// WithLenientResolution silently drops (and logs) selections that are not in the catalog
func WithLenientResolution(enabled bool) Option {
	return func(scheduler *scheduler) {
		scheduler.lenient = enabled
	}
}

type scheduler struct {
	logger    *zap.Logger
	transform Transform
	travel    TravelEstimator
	week      []time.Weekday
	pruning   bool
	lenient   bool
}

func NewScheduler(options ...Option) Scheduler {
	scheduler := &scheduler{
		logger:    zap.NewNop(),
		transform: Identity,
		travel:    ConstantTravel(DefaultTravelMinutes),
		week:      DefaultWeek,
	}
	for _, option := range options {
		option(scheduler)
	}
	return scheduler
}

func (scheduler *scheduler) Schedule(
	subjects []model.Subject,
	selections []model.SubjectSelection,
	priorities []model.Priority,
	mode SortMode,
) ([]model.Combination, error) {
	start := time.Now()

	mode, err := ParseSortMode(string(mode))
	if err != nil {
		return nil, err
	}

	//** Resolve selections
	selected, err := scheduler.resolve(subjects, selections)
	if err != nil {
		return nil, err
	}

	//** Initialize dependencies
	evaluator := newPriorityEvaluator(scheduler.travel, scheduler.week)
	var pruner func(partial *model.Combination) bool
	if scheduler.pruning {
		pruner = func(partial *model.Combination) bool {
			return !lo.SomeBy(priorities, func(priority model.Priority) bool {
				return evaluator.Violated(*partial, priority)
			})
		}
	}
	generator := newCombinationGenerator(pruner)

	//** Enumerate
	combinations, leaves := generator.Enumerate(selected, func(combination *model.Combination) bool {
		return evaluator.Verify(combination, priorities)
	})

	//** Score
	for i := range combinations {
		Score(&combinations[i], priorities, selections, scheduler.transform)
	}

	//** Sort
	if err := SortByWeight(combinations, mode); err != nil {
		return nil, err
	}

	scheduler.logger.Debug("combinations scheduled",
		zap.Int("subjects", len(selected)),
		zap.Int("priorities", len(priorities)),
		zap.Uint64("leaves", leaves),
		zap.Int("accepted", len(combinations)),
		zap.Bool("pruning", scheduler.pruning),
		zap.String("sort", string(mode)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return combinations, nil
}

func (scheduler *scheduler) resolve(subjects []model.Subject, selections []model.SubjectSelection) ([]model.Subject, error) {
	catalog := lo.KeyBy(subjects, func(subject model.Subject) string { return subject.Code })

	selected := make([]model.Subject, 0, len(selections))
	placed := make(map[string]bool)
	errs := make([]error, 0)
	for _, selection := range selections {
		subject, ok := catalog[selection.Code]
		if !ok {
			if scheduler.lenient {
				scheduler.logger.Warn("dropping selection missing from the catalog", zap.String("code", selection.Code))
				continue
			}
			errs = append(errs, model.SubjectNotFoundError{Code: selection.Code})
			continue
		}

		// A subject can only be taken once
		if placed[subject.Code] {
			scheduler.logger.Debug("ignoring repeated selection", zap.String("code", subject.Code))
			continue
		}
		placed[subject.Code] = true
		selected = append(selected, subject)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return selected, nil
}
