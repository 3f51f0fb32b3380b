// Package health holds the pure weight-goal arithmetic: BMI, weekly-rate
// timelines and progress toward a target weight. Nothing here touches the
// database; callers hand in already-validated values.
package health

import (
	"math"
	"sort"
	"time"
)

// GoalType is what the user wants to do with their weight.
type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalGain     GoalType = "gain"
	GoalMaintain GoalType = "maintain"
)

// Display returns the human label for the goal type.
func (t GoalType) Display() string {
	switch t {
	case GoalLose:
		return "Lose Weight"
	case GoalGain:
		return "Gain Weight"
	case GoalMaintain:
		return "Maintain Weight"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known goal types.
func (t GoalType) Valid() bool {
	return t == GoalLose || t == GoalGain || t == GoalMaintain
}

// Pace is the planned rate of change.
type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

var weeklyRates = map[Pace]float64{
	PaceSlow:     0.25,
	PaceModerate: 0.5,
	PaceFast:     1.0,
}

// Valid reports whether p is one of the known paces.
func (p Pace) Valid() bool {
	_, ok := weeklyRates[p]
	return ok
}

// WeeklyRate returns kg per week for a pace. Unknown paces fall back to the
// moderate rate.
func WeeklyRate(p Pace) float64 {
	if rate, ok := weeklyRates[p]; ok {
		return rate
	}
	return weeklyRates[PaceModerate]
}

// Goal is the subset of a stored weight goal the engine needs.
type Goal struct {
	Type           GoalType
	TargetWeightKg float64
	Pace           Pace
	StartDate      time.Time
}

// TimelineWeeks estimates the weeks needed to go from current to the target
// at the goal's pace, rounded to one decimal. A zero current weight means no
// weight has been recorded and yields ok=false.
func (g Goal) TimelineWeeks(current float64) (weeks float64, ok bool) {
	if current == 0 {
		return 0, false
	}
	rate := WeeklyRate(g.Pace)
	if rate == 0 {
		return 0, false
	}
	return roundTo(math.Abs(g.TargetWeightKg-current)/rate, 1), true
}

// TargetDate projects the timeline forward from the goal's start date.
// Fractional days are dropped.
func (g Goal) TargetDate(current float64) (time.Time, bool) {
	weeks, ok := g.TimelineWeeks(current)
	if !ok {
		return time.Time{}, false
	}
	days := int(weeks * 7)
	return g.StartDate.AddDate(0, 0, days), true
}

// ProgressPercent measures the distance travelled from the baseline weight
// toward the target, capped at 100. Without a baseline it is 0; a baseline
// already at the target counts as complete.
//
// The distance is unsigned: moving away from the target still counts.
func (g Goal) ProgressPercent(baseline float64, hasBaseline bool, current float64) float64 {
	if !hasBaseline {
		return 0
	}
	total := math.Abs(g.TargetWeightKg - baseline)
	if total == 0 {
		return 100
	}
	progress := roundTo(math.Abs(current-baseline)/total*100, 1)
	return math.Min(progress, 100)
}

// Measurement is one recorded weight as the engine sees it.
type Measurement struct {
	WeightKg     float64
	RecordedDate time.Time
	CreatedAt    time.Time
}

// Baseline picks the weight of the earliest measurement recorded on or after
// start. Same-day ties go to the entry created first.
func Baseline(entries []Measurement, start time.Time) (float64, bool) {
	candidates := make([]Measurement, 0, len(entries))
	for _, e := range entries {
		if !e.RecordedDate.Before(start) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].RecordedDate.Equal(candidates[j].RecordedDate) {
			return candidates[i].RecordedDate.Before(candidates[j].RecordedDate)
		}
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	return candidates[0].WeightKg, true
}

// Summary is the timeline block shown next to a goal.
type Summary struct {
	CurrentWeight    float64
	TargetWeight     float64
	WeightDifference float64
	WeeksToGoal      *float64
	TargetDate       *time.Time
	Progress         float64
	WeeklyRate       float64
}

// Summarize computes every derived goal figure for the given current weight
// and baseline.
func (g Goal) Summarize(current, baseline float64, hasBaseline bool) Summary {
	s := Summary{
		CurrentWeight:    current,
		TargetWeight:     g.TargetWeightKg,
		WeightDifference: roundTo(math.Abs(g.TargetWeightKg-current), 2),
		Progress:         g.ProgressPercent(baseline, hasBaseline, current),
		WeeklyRate:       WeeklyRate(g.Pace),
	}
	if weeks, ok := g.TimelineWeeks(current); ok {
		s.WeeksToGoal = &weeks
	}
	if date, ok := g.TargetDate(current); ok {
		s.TargetDate = &date
	}
	return s
}
