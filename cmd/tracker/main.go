package main

import (
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/report"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// packages is the fixed set of tracker readings processed on every run.
var packages = []domain.Reading{
	{Code: domain.CodeSwimming, Params: []float64{720, 1, 80, 25, 40}},
	{Code: domain.CodeRunning, Params: []float64{15000, 1, 75}},
	{Code: domain.CodeWalking, Params: []float64{9000, 1, 75, 180}},
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("could not set up logging: %v", err)
	}

	reporter, err := report.NewReporter(cfg.Report.Locale)
	if err != nil {
		log.Fatalf("could not create reporter: %v", err)
	}

	if failed := run(context.Background(), service.NewTrackerService(reporter), packages, os.Stdout); failed > 0 {
		log.Warnf("%d of %d packages could not be summarized", failed, len(packages))
	}
}

// run prints one summary line per successful reading, in input order.
// Failed readings are logged and skipped; run returns how many failed.
func run(ctx context.Context, trackerService service.TrackerService, readings []domain.Reading, out io.Writer) int {
	failed := 0
	for i, res := range trackerService.SummarizeBatch(ctx, readings) {
		if res.Err != nil {
			failed++
			log.Errorf("package %d (%s %v): %v", i, res.Reading.Code, res.Reading.Params, res.Err)
			continue
		}
		fmt.Fprintln(out, res.Message)
	}
	return failed
}
