package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyRate(t *testing.T) {
	assert.Equal(t, 0.25, WeeklyRate(PaceSlow))
	assert.Equal(t, 0.5, WeeklyRate(PaceModerate))
	assert.Equal(t, 1.0, WeeklyRate(PaceFast))
	assert.Equal(t, 0.5, WeeklyRate(Pace("sprint")))
	assert.Equal(t, 0.5, WeeklyRate(""))
}

func TestTimelineWeeks(t *testing.T) {
	goal := Goal{Type: GoalLose, TargetWeightKg: 80, Pace: PaceModerate, StartDate: date(2024, 1, 1)}

	weeks, ok := goal.TimelineWeeks(95)
	require.True(t, ok)
	assert.Equal(t, 30.0, weeks)

	_, ok = goal.TimelineWeeks(0)
	assert.False(t, ok, "no current weight means no timeline")

	slow := Goal{TargetWeightKg: 70, Pace: PaceSlow}
	weeks, ok = slow.TimelineWeeks(70.3)
	require.True(t, ok)
	assert.Equal(t, 1.2, weeks)

	ties := []struct {
		current float64
		want    float64
	}{
		{80.125, 0.2},
		{80.375, 0.8},
		{79.875, 0.2},
		{81.25, 2.5},
	}
	for _, tt := range ties {
		weeks, ok = goal.TimelineWeeks(tt.current)
		require.True(t, ok)
		assert.Equal(t, tt.want, weeks, "current=%v", tt.current)
	}
}

func TestTimelineWeeksIsDirectionless(t *testing.T) {
	down := Goal{TargetWeightKg: 80, Pace: PaceFast}
	up := Goal{TargetWeightKg: 100, Pace: PaceFast}

	a, okA := down.TimelineWeeks(90)
	b, okB := up.TimelineWeeks(90)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestTargetDate(t *testing.T) {
	start := date(2024, 3, 1)
	goal := Goal{TargetWeightKg: 80, Pace: PaceModerate, StartDate: start}

	got, ok := goal.TargetDate(95)
	require.True(t, ok)
	assert.Equal(t, start.AddDate(0, 0, 210), got)

	// 0.75 kg at 0.5 kg/week is 1.5 weeks: 10.5 days, fraction dropped.
	goal.TargetWeightKg = 94.25
	got, ok = goal.TargetDate(95)
	require.True(t, ok)
	assert.Equal(t, date(2024, 3, 11), got)

	_, ok = goal.TargetDate(0)
	assert.False(t, ok)
}

func TestTargetDateAtGoal(t *testing.T) {
	start := date(2024, 3, 1)
	goal := Goal{TargetWeightKg: 80, Pace: PaceSlow, StartDate: start}

	got, ok := goal.TargetDate(80)
	require.True(t, ok)
	assert.Equal(t, start, got)
}

func TestProgressPercent(t *testing.T) {
	goal := Goal{Type: GoalLose, TargetWeightKg: 80, Pace: PaceModerate}

	tests := []struct {
		name        string
		baseline    float64
		hasBaseline bool
		current     float64
		want        float64
	}{
		{"no baseline", 0, false, 90, 0},
		{"halfway", 100, true, 90, 50},
		{"at target", 100, true, 80, 100},
		{"past target is capped", 100, true, 70, 100},
		{"baseline already at target", 80, true, 85, 100},
		{"rounded to one decimal", 95, true, 92, 20},
		{"one third", 95, true, 90, 33.3},
		{"moving away still counts", 95, true, 98, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, goal.ProgressPercent(tt.baseline, tt.hasBaseline, tt.current))
		})
	}
}

func TestBaseline(t *testing.T) {
	start := date(2024, 5, 10)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	entries := []Measurement{
		{WeightKg: 99, RecordedDate: date(2024, 5, 9), CreatedAt: created},
		{WeightKg: 97, RecordedDate: date(2024, 5, 20), CreatedAt: created},
		{WeightKg: 96, RecordedDate: date(2024, 5, 10), CreatedAt: created.Add(time.Hour)},
		{WeightKg: 98, RecordedDate: date(2024, 5, 10), CreatedAt: created},
	}

	weight, ok := Baseline(entries, start)
	require.True(t, ok)
	assert.Equal(t, 98.0, weight)

	_, ok = Baseline(entries[:1], start)
	assert.False(t, ok)

	_, ok = Baseline(nil, start)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	start := date(2024, 1, 1)
	goal := Goal{Type: GoalLose, TargetWeightKg: 80, Pace: PaceModerate, StartDate: start}

	s := goal.Summarize(90, 95, true)
	assert.Equal(t, 90.0, s.CurrentWeight)
	assert.Equal(t, 80.0, s.TargetWeight)
	assert.Equal(t, 10.0, s.WeightDifference)
	require.NotNil(t, s.WeeksToGoal)
	assert.Equal(t, 20.0, *s.WeeksToGoal)
	require.NotNil(t, s.TargetDate)
	assert.Equal(t, start.AddDate(0, 0, 140), *s.TargetDate)
	assert.Equal(t, 33.3, s.Progress)
	assert.Equal(t, 0.5, s.WeeklyRate)
}

func TestGoalTypeDisplay(t *testing.T) {
	assert.Equal(t, "Lose Weight", GoalLose.Display())
	assert.Equal(t, "Gain Weight", GoalGain.Display())
	assert.Equal(t, "Maintain Weight", GoalMaintain.Display())
	assert.True(t, GoalGain.Valid())
	assert.False(t, GoalType("bulk").Valid())
	assert.True(t, PaceFast.Valid())
	assert.False(t, Pace("").Valid())
}
