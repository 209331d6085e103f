package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/observability"
	"alcyxob/fitness-tracker/internal/report"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// --- Service Interface ---
type TrackerService interface {
	Summarize(ctx context.Context, reading domain.Reading) (*domain.Summary, error)
	SummarizeBatch(ctx context.Context, readings []domain.Reading) []BatchResult
	Render(summary domain.Summary) string
}

// BatchResult is the outcome for one reading of a batch. Exactly one of
// Summary and Err is set; Message holds the rendered summary.
type BatchResult struct {
	Reading domain.Reading
	Summary *domain.Summary
	Message string
	Err     error
}

// --- Service Implementation ---

// trackerService implements the TrackerService interface.
type trackerService struct {
	reporter *report.Reporter
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(reporter *report.Reporter) TrackerService {
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	return &trackerService{reporter: reporter}
}

// Summarize builds the workout for a reading and computes its summary.
func (s *trackerService) Summarize(ctx context.Context, reading domain.Reading) (*domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workout, err := domain.BuildWorkout(reading.Code, reading.Params)
	if err != nil {
		observability.RecordFailed(failureReason(err))
		return nil, err
	}

	summary, err := domain.Summarize(workout)
	if err != nil {
		observability.RecordFailed(failureReason(err))
		return nil, fmt.Errorf("summarize %s: %w", reading.Code, err)
	}

	observability.RecordSummarized(string(summary.Kind))
	return &summary, nil
}

// SummarizeBatch processes readings one after another in input order.
// A failed reading is reported in its BatchResult and does not stop the rest.
func (s *trackerService) SummarizeBatch(ctx context.Context, readings []domain.Reading) []BatchResult {
	results := make([]BatchResult, 0, len(readings))
	for i, reading := range readings {
		result := BatchResult{Reading: reading}

		summary, err := s.Summarize(ctx, reading)
		if err != nil {
			log.Debugf("reading %d (%s) rejected: %v", i, reading.Code, err)
			result.Err = err
		} else {
			result.Summary = summary
			result.Message = s.reporter.Render(*summary)
		}
		results = append(results, result)
	}
	return results
}

// Render formats a summary with the configured locale.
func (s *trackerService) Render(summary domain.Summary) string {
	return s.reporter.Render(summary)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownActivityCode):
		return observability.ReasonUnknownCode
	case errors.Is(err, domain.ErrArityMismatch):
		return observability.ReasonArityMismatch
	case errors.Is(err, domain.ErrInvalidParameter):
		return observability.ReasonInvalidParameter
	case errors.Is(err, domain.ErrComputationFault):
		return observability.ReasonComputationFault
	default:
		return observability.ReasonOther
	}
}
