package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/observability"
	"alcyxob/fitness-tracker/internal/report"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, locale string) TrackerService {
	t.Helper()
	reporter, err := report.NewReporter(locale)
	require.NoError(t, err)
	return NewTrackerService(reporter)
}

func TestTrackerService_Summarize(t *testing.T) {
	svc := newTestService(t, report.LocaleEN)
	before := testutil.ToFloat64(observability.SummarizedCount(string(domain.KindSwimming)))

	summary, err := svc.Summarize(context.Background(), domain.Reading{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}})
	require.NoError(t, err)
	assert.Equal(t, domain.KindSwimming, summary.Kind)
	assert.InDelta(t, 336.0, summary.Calories, 1e-9)
	assert.Equal(t, before+1, testutil.ToFloat64(observability.SummarizedCount(string(domain.KindSwimming))))
}

func TestTrackerService_SummarizeErrors(t *testing.T) {
	svc := newTestService(t, report.LocaleEN)

	tests := []struct {
		name    string
		reading domain.Reading
		wantErr error
		reason  string
	}{
		{"unknown code", domain.Reading{Code: "YOG", Params: []float64{1, 1, 1}}, domain.ErrUnknownActivityCode, observability.ReasonUnknownCode},
		{"arity", domain.Reading{Code: "RUN", Params: []float64{1, 1}}, domain.ErrArityMismatch, observability.ReasonArityMismatch},
		{"invalid parameter", domain.Reading{Code: "RUN", Params: []float64{1.5, 1, 70}}, domain.ErrInvalidParameter, observability.ReasonInvalidParameter},
		{"zero duration", domain.Reading{Code: "RUN", Params: []float64{1000, 0, 70}}, domain.ErrComputationFault, observability.ReasonComputationFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(observability.FailedCount(tt.reason))

			summary, err := svc.Summarize(context.Background(), tt.reading)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before+1, testutil.ToFloat64(observability.FailedCount(tt.reason)))
		})
	}
}

func TestTrackerService_SummarizeCanceled(t *testing.T) {
	svc := newTestService(t, report.LocaleEN)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Summarize(ctx, domain.Reading{Code: "RUN", Params: []float64{15000, 1, 75}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrackerService_SummarizeBatch(t *testing.T) {
	svc := newTestService(t, report.LocaleEN)

	readings := []domain.Reading{
		{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
		{Code: "XXX", Params: []float64{1}},
		{Code: "RUN", Params: []float64{15000, 1, 75}},
		{Code: "RUN", Params: []float64{15000, 0, 75}},
		{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
	}

	results := svc.SummarizeBatch(context.Background(), readings)
	require.Len(t, results, len(readings))

	for i, r := range results {
		assert.Equal(t, readings[i], r.Reading)
	}

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg. speed: 1.000 km/h; Calories burned: 336.000.", results[0].Message)

	assert.ErrorIs(t, results[1].Err, domain.ErrUnknownActivityCode)
	assert.Nil(t, results[1].Summary)
	assert.Empty(t, results[1].Message)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 699.750.", results[2].Message)

	assert.ErrorIs(t, results[3].Err, domain.ErrComputationFault)

	assert.NoError(t, results[4].Err)
	assert.Equal(t, "Workout type: Walking; Duration: 1.000 h.; Distance: 5.850 km; Avg. speed: 5.850 km/h; Calories burned: 157.500.", results[4].Message)
}

func TestTrackerService_RenderUsesLocale(t *testing.T) {
	svc := newTestService(t, report.LocaleRU)
	line := svc.Render(domain.Summary{Kind: domain.KindWalking, Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 157.5})
	assert.Equal(t, "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.", line)
}

func TestNewTrackerService_NilReporter(t *testing.T) {
	assert.Panics(t, func() { NewTrackerService(nil) })
}
