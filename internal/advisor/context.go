package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

// ProfileFacts is what the advisor knows about the user's body.
type ProfileFacts struct {
	HeightCm float64
	Gender   string // display form, e.g. "Male"
	Age      *int
}

// WeightFacts describes the latest weigh-in.
type WeightFacts struct {
	WeightKg float64
	BMI      *float64
	Category health.BMICategory
}

// GoalFacts describes the active goal. WeeksToGoal is nil when no timeline
// could be computed.
type GoalFacts struct {
	Type           health.GoalType
	TargetWeightKg float64
	WeeksToGoal    *float64
}

// HealthContext is the optional user data a reply is personalised with. Any
// field may be nil.
type HealthContext struct {
	Profile *ProfileFacts
	Latest  *WeightFacts
	Goal    *GoalFacts
}

// Lines renders the context block, one fact per line. It is empty when
// nothing is known about the user.
func (hc HealthContext) Lines() []string {
	var lines []string

	if p := hc.Profile; p != nil {
		lines = append(lines, fmt.Sprintf("📊 Your Profile: Height %scm, %s", formatNumber(p.HeightCm), p.Gender))
		if p.Age != nil && *p.Age > 0 {
			lines = append(lines, fmt.Sprintf("Age: %d years", *p.Age))
		}
	}

	if w := hc.Latest; w != nil {
		bmi := "N/A"
		if w.BMI != nil {
			bmi = formatNumber(*w.BMI)
		}
		lines = append(lines, fmt.Sprintf("⚖️ Current: %skg, BMI: %s (%s)", formatNumber(w.WeightKg), bmi, w.Category))
	}

	if g := hc.Goal; g != nil {
		lines = append(lines, fmt.Sprintf("🎯 Goal: %s to %skg", g.Type.Display(), formatNumber(g.TargetWeightKg)))
		if hc.Latest != nil && g.WeeksToGoal != nil && *g.WeeksToGoal > 0 {
			lines = append(lines, fmt.Sprintf("⏱️ Timeline: %s weeks to goal", formatNumber(*g.WeeksToGoal)))
		}
	}

	return lines
}

// formatNumber prints the shortest exact form of f, always keeping one
// decimal place for whole numbers (175 -> "175.0").
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
