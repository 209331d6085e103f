package main

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/report"
	"alcyxob/fitness-tracker/internal/service"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FixedPackages(t *testing.T) {
	reporter, err := report.NewReporter(report.LocaleEN)
	require.NoError(t, err)

	var out bytes.Buffer
	failed := run(context.Background(), service.NewTrackerService(reporter), packages, &out)

	assert.Zero(t, failed)
	assert.Equal(t,
		"Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg. speed: 1.000 km/h; Calories burned: 336.000.\n"+
			"Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 699.750.\n"+
			"Workout type: Walking; Duration: 1.000 h.; Distance: 5.850 km; Avg. speed: 5.850 km/h; Calories burned: 157.500.\n",
		out.String())
}

func TestRun_FixedPackagesRussian(t *testing.T) {
	reporter, err := report.NewReporter(report.LocaleRU)
	require.NoError(t, err)

	var out bytes.Buffer
	failed := run(context.Background(), service.NewTrackerService(reporter), packages, &out)

	assert.Zero(t, failed)
	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"+
			"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n"+
			"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n",
		out.String())
}

func TestRun_SkipsBadPackages(t *testing.T) {
	reporter, err := report.NewReporter(report.LocaleRU)
	require.NoError(t, err)

	readings := []domain.Reading{
		{Code: "RUN", Params: []float64{15000, 0, 75}},
		{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
		{Code: "???", Params: nil},
		{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
	}

	var out bytes.Buffer
	failed := run(context.Background(), service.NewTrackerService(reporter), readings, &out)

	assert.Equal(t, 2, failed)
	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"+
			"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n",
		out.String())
}
