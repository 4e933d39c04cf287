package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/combinations/pkg/calendar"
	"github.com/limaJavier/combinations/pkg/combinator"
	"github.com/limaJavier/combinations/pkg/config"
	"github.com/limaJavier/combinations/pkg/export"
	"github.com/limaJavier/combinations/pkg/logger"
	"github.com/limaJavier/combinations/pkg/model"
)

var version = "dev"

// A run that ends without combinations exits with exitNone, so scripts can tell it apart from a failure
const (
	exitFailure = 1
	exitNone    = 20
)

var errNoCombinations = errors.New("no combination satisfies the exclusive priorities")

var (
	validFormats = []string{"json", "csv", "xlsx", "pdf"}
	writers      = map[string]func(io.Writer, export.Report) error{
		"json": export.WriteJSON,
		"csv":  export.WriteCSV,
		"xlsx": export.WriteXLSX,
		"pdf":  export.WritePDF,
	}
)

type scheduleFlags struct {
	filePath      string
	outFilePath   string
	format        string
	sortMode      string
	transform     string
	travelMinutes int
	top           int
	prune         bool
	lenient       bool
	busyICS       string
	busyWeight    float64
	busyExclusive bool
}

func main() {
	err := newRootCommand().Execute()
	if errors.Is(err, errNoCombinations) {
		os.Exit(exitNone)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "combinations",
		Short:         "Rank every feasible combination of course commissions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScheduleCommand(), newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newScheduleCommand() *cobra.Command {
	flags := scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build, filter, score and rank the combinations described by an input file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.filePath, "file", "f", "", "Path to the input file")
	cmd.Flags().StringVarP(&flags.outFilePath, "out", "o", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	cmd.Flags().StringVar(&flags.format, "format", "json", `Output format. Allowed values are: "json", "csv", "xlsx" and "pdf"`)
	cmd.Flags().StringVar(&flags.sortMode, "sort", "", `Sort strategy. Allowed values are: "comparator" and "quicksort" (quadratic when many weights tie, prefer "comparator" for large outputs)`)
	cmd.Flags().StringVar(&flags.transform, "transform", "", `Weight transform. Allowed values are: "identity", "logarithmic" and "quadratic"`)
	cmd.Flags().IntVar(&flags.travelMinutes, "travel", 0, "Minutes assumed to move between two buildings when the input carries no travel table")
	cmd.Flags().IntVar(&flags.top, "top", 0, "Keep only the best N combinations (0 keeps them all)")
	cmd.Flags().BoolVar(&flags.prune, "prune", false, "Discard partial combinations as soon as they break an exclusive priority")
	cmd.Flags().BoolVar(&flags.lenient, "lenient", false, "Drop selections missing from the catalog instead of failing")
	cmd.Flags().StringVar(&flags.busyICS, "busy-ics", "", "iCalendar file whose events are added as a busy-time priority")
	cmd.Flags().Float64Var(&flags.busyWeight, "busy-weight", 1, "Weight of the busy-time priority built from --busy-ics")
	cmd.Flags().BoolVar(&flags.busyExclusive, "busy-exclusive", true, "Whether the busy-time priority built from --busy-ics is exclusive")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runSchedule(cmd *cobra.Command, flags scheduleFlags) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot load configuration: %v\n", err)
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot build logger: %v\n", err)
		return err
	}
	defer log.Sync()

	//** Merge configuration and flags
	settings := cfg.Scheduler
	changed := cmd.Flags().Changed
	if changed("sort") {
		settings.SortMode = flags.sortMode
	}
	if changed("transform") {
		settings.Transform = flags.transform
	}
	if changed("travel") {
		settings.TravelMinutes = flags.travelMinutes
	}
	if changed("prune") {
		settings.Prune = flags.prune
	}
	if changed("lenient") {
		settings.Lenient = flags.lenient
	}

	//** Validate arguments
	format := strings.ToLower(flags.format)
	if !slices.Contains(validFormats, format) {
		err := fmt.Errorf("%v is not a valid format", flags.format)
		log.Error("invalid arguments", zap.Error(err))
		return err
	} else if flags.top < 0 {
		err := fmt.Errorf("top must not be negative: %v", flags.top)
		log.Error("invalid arguments", zap.Error(err))
		return err
	}
	mode, err := combinator.ParseSortMode(settings.SortMode)
	if err != nil {
		log.Error("invalid arguments", zap.Error(err))
		return err
	}
	transform, err := combinator.ParseTransform(settings.Transform)
	if err != nil {
		log.Error("invalid arguments", zap.Error(err))
		return err
	}

	//** Extract input
	input, err := model.InputFromJson(flags.filePath)
	if err != nil {
		log.Error("cannot parse input file", zap.String("file", flags.filePath), zap.Error(err))
		return err
	}

	priorities := input.Priorities
	if flags.busyICS != "" {
		busy, err := readBusyTime(flags.busyICS)
		if err != nil {
			log.Error("cannot read busy-time calendar", zap.String("file", flags.busyICS), zap.Error(err))
			return err
		}
		priorities = append(slices.Clone(priorities), model.Priority{
			Value:     model.BusyTime{Blocks: busy},
			Weight:    flags.busyWeight,
			Exclusive: flags.busyExclusive,
		})
		log.Info("busy-time calendar loaded", zap.Int("blocks", len(busy)))
	}

	travel := combinator.ConstantTravel(settings.TravelMinutes)
	if input.Travel != nil {
		travel = combinator.TableTravel(*input.Travel)
	}

	//** Initialize engine
	scheduler := combinator.NewScheduler(
		combinator.WithLogger(log),
		combinator.WithTransform(transform),
		combinator.WithTravelEstimator(travel),
		combinator.WithWeek(settings.Week),
		combinator.WithPruning(settings.Prune),
		combinator.WithLenientResolution(settings.Lenient),
	)

	//** Build combinations
	combinations, err := scheduler.Schedule(input.Subjects, input.Selections, priorities, mode)
	if err != nil {
		var notFound model.SubjectNotFoundError
		if errors.As(err, &notFound) {
			log.Error("selection references unknown subjects", zap.Error(err))
		} else {
			log.Error("an error occurred during scheduling", zap.Error(err))
		}
		return err
	}

	if flags.top > 0 && len(combinations) > flags.top {
		combinations = combinations[:flags.top]
	}

	//** Write output
	report := export.NewReport(combinations)
	if err := write(flags.outFilePath, format, report); err != nil {
		log.Error("an error occurred while writing the output", zap.Error(err))
		return err
	}

	log.Info("combinations ranked",
		zap.String("report", report.ID),
		zap.Int("combinations", len(combinations)),
		zap.Int("priorities", len(priorities)),
		zap.Strings("satisfiedByBest", lo.Map(bestPriorities(combinations), func(index int, _ int) string {
			return string(priorities[index].Type())
		})),
	)

	if len(combinations) == 0 {
		return errNoCombinations
	}
	return nil
}

func readBusyTime(path string) ([]model.Timeblock, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return calendar.BusyTimeFromICS(file, time.Local)
}

// Verify outfile is empty, if so then write the results to the Standard Output
func write(outFilePath, format string, report export.Report) error {
	if outFilePath == "" {
		return writers[format](os.Stdout, report)
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		return err
	}
	defer file.Close()
	return writers[format](file, report)
}

func bestPriorities(combinations []model.Combination) []int {
	if len(combinations) == 0 {
		return nil
	}
	return combinations[0].Priorities
}
