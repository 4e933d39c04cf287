package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/limaJavier/combinations/pkg/combinator"
	"github.com/limaJavier/combinations/pkg/model"
)

const (
	MB float32 = 1024 * 1024
)

type CatalogMetadata struct {
	Name        string
	Subjects    int
	Commissions int // Commissions per subject
	Blocks      int // Timeblocks per commission
	Seed        int64
}

type BenchmarkResult struct {
	Catalog      string  `csv:"catalog"`
	Subjects     int     `csv:"subjects"`
	Commissions  int     `csv:"commissions"`
	Sort         string  `csv:"sort"`
	Pruning      bool    `csv:"pruning"`
	Combinations int     `csv:"combinations"`
	Duration     int64   `csv:"duration_ms"`
	Memory       float32 `csv:"memory_mb"`
}

var (
	outFile     string
	repetitions int

	sortModes = []combinator.SortMode{combinator.ComparatorSort, combinator.QuickSort}
	days      = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	buildings = []string{"North", "South", "Central"}
)

func main() {
	flag.StringVar(&outFile, "out", "benchmark_results.csv", "Path to the CSV file where results will be written")
	flag.IntVar(&repetitions, "repetitions", 3, "Amount of runs per configuration; the fastest one is kept")
	flag.Parse()

	if repetitions <= 0 {
		log.Fatalf("repetitions must be positive: %v", repetitions)
	}

	catalogs := getCatalogs()
	results := make([]BenchmarkResult, 0, len(catalogs)*len(sortModes)*2)

	for _, catalog := range catalogs {
		subjects, selections := generateCatalog(catalog)
		priorities := getPriorities(subjects)

		for _, mode := range sortModes {
			for _, pruning := range []bool{false, true} {
				fmt.Printf("Benchmarking catalog \"%v\" with sort \"%v\" and pruning \"%v\"\n", catalog.Name, mode, pruning)

				duration, memory, combinations := measure(subjects, selections, priorities, mode, pruning)

				results = append(results, BenchmarkResult{
					Catalog:      catalog.Name,
					Subjects:     catalog.Subjects,
					Commissions:  catalog.Commissions,
					Sort:         string(mode),
					Pruning:      pruning,
					Combinations: combinations,
					Duration:     duration,
					Memory:       memory,
				})
			}
		}
	}

	toCsv(results)
}

func getCatalogs() []CatalogMetadata {
	return []CatalogMetadata{
		{Name: "small", Subjects: 4, Commissions: 3, Blocks: 2, Seed: 1},
		{Name: "medium", Subjects: 6, Commissions: 4, Blocks: 2, Seed: 2},
		{Name: "large", Subjects: 7, Commissions: 5, Blocks: 3, Seed: 3},
		{Name: "wide", Subjects: 3, Commissions: 20, Blocks: 2, Seed: 4},
	}
}

// Every subject gets the same amount of commissions, so the search visits Commissions^Subjects leaves without pruning
func generateCatalog(catalog CatalogMetadata) ([]model.Subject, []model.SubjectSelection) {
	random := rand.New(rand.NewSource(catalog.Seed))

	subjects := make([]model.Subject, 0, catalog.Subjects)
	for i := range catalog.Subjects {
		subject := model.Subject{
			Code:        fmt.Sprintf("S%02d", i),
			Name:        fmt.Sprintf("Subject %d", i),
			Commissions: make([]model.Commission, 0, catalog.Commissions),
		}
		for j := range catalog.Commissions {
			schedule := make([]model.Timeblock, 0, catalog.Blocks)
			for range catalog.Blocks {
				start := model.Clock(8*60 + random.Intn(10)*60)
				schedule = append(schedule, model.Timeblock{
					Day:      days[random.Intn(len(days))],
					Start:    start,
					End:      start + 120,
					Building: buildings[random.Intn(len(buildings))],
				})
			}
			subject.Commissions = append(subject.Commissions, model.Commission{
				Label:      fmt.Sprintf("C%d", j),
				Professors: []string{fmt.Sprintf("Professor %d", random.Intn(catalog.Commissions))},
				Schedule:   schedule,
			})
		}
		subjects = append(subjects, subject)
	}

	selections := lo.Map(subjects, func(subject model.Subject, _ int) model.SubjectSelection {
		return model.SubjectSelection{Code: subject.Code, Weight: float64(1 + random.Intn(5))}
	})

	return subjects, selections
}

func getPriorities(subjects []model.Subject) []model.Priority {
	priorities := []model.Priority{
		{Value: model.Superposition{MaxOverlap: 30}, Weight: 5, Exclusive: true},
		{Value: model.FreeDay{Any: true}, Weight: 3},
		{Value: model.Location{}, Weight: 1},
	}
	if len(subjects) > 0 && len(subjects[0].Commissions) > 0 {
		priorities = append(priorities, model.Priority{
			Value:              model.CommissionChoice{Label: subjects[0].Commissions[0].Label},
			Weight:             2,
			RelatedSubjectCode: subjects[0].Code,
		})
	}
	return priorities
}

func measure(subjects []model.Subject, selections []model.SubjectSelection, priorities []model.Priority, mode combinator.SortMode, pruning bool) (duration int64, memory float32, combinations int) {
	scheduler := combinator.NewScheduler(combinator.WithPruning(pruning))

	duration = -1
	for range repetitions {
		runtime.GC()
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)

		start := time.Now()
		result, err := scheduler.Schedule(subjects, selections, priorities, mode)
		elapsed := time.Since(start).Milliseconds()

		runtime.ReadMemStats(&after)
		if err != nil {
			log.Fatalf("an error occurred while scheduling with sort \"%v\" and pruning \"%v\": %v", mode, pruning, err)
		}

		if duration < 0 || elapsed < duration {
			duration = elapsed
		}
		memory = max(memory, float32(after.TotalAlloc-before.TotalAlloc)/MB)
		combinations = len(result)
	}

	return duration, memory, combinations
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(outFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}
