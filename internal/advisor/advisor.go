// Package advisor answers chat messages with canned health advice. A message
// is routed to a topic by keyword, and the topic's reply is assembled from
// fixed text and random draws from the advice pools.
package advisor

import (
	"fmt"
	"strings"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

// Topic is the category a message was routed to.
type Topic string

const (
	TopicNutrition  Topic = "nutrition"
	TopicWorkout    Topic = "workout"
	TopicWeightLoss Topic = "weight_loss"
	TopicWeightGain Topic = "weight_gain"
	TopicMealPrep   Topic = "meal_prep"
	TopicVideos     Topic = "videos"
	TopicMotivation Topic = "motivation"
	TopicBMI        Topic = "bmi"
	TopicGreeting   Topic = "greeting"
	TopicGeneral    Topic = "general"
)

type rule struct {
	topic    Topic
	keywords []string
	respond  func(a *Advisor, hc HealthContext) []string
}

// rules are checked in order and the first match wins. The sets overlap
// ("lose weight" vs "diet", "meal prep" vs "meal"), so the order is part of
// the behaviour.
var rules = []rule{
	{TopicNutrition, []string{"diet", "eat", "food", "nutrition", "meal", "calorie", "hungry"}, (*Advisor).nutrition},
	{TopicWorkout, []string{"workout", "exercise", "gym", "train", "cardio", "strength", "fitness", "muscle"}, (*Advisor).workout},
	{TopicWeightLoss, []string{"lose weight", "weight loss", "fat", "slim", "reduce"}, (*Advisor).weightLoss},
	{TopicWeightGain, []string{"gain weight", "weight gain", "bulk", "muscle gain"}, (*Advisor).weightGain},
	{TopicMealPrep, []string{"meal prep", "prepare", "cooking", "recipe"}, (*Advisor).mealPrep},
	{TopicVideos, []string{"youtube", "video", "channel", "watch"}, (*Advisor).videos},
	{TopicMotivation, []string{"motivat", "inspire", "give up", "tired", "hard", "difficult"}, (*Advisor).motivation},
	{TopicBMI, []string{"bmi", "body mass", "healthy weight"}, (*Advisor).bmi},
	{TopicGreeting, []string{"hello", "hi", "hey", "help"}, (*Advisor).greeting},
}

// Advisor builds replies. It holds no per-user state and is safe for
// concurrent use as long as its Sampler is.
type Advisor struct {
	pools   Pools
	sampler Sampler
}

// New creates an Advisor over the given pools and sampler.
func New(pools Pools, sampler Sampler) *Advisor {
	return &Advisor{pools: pools, sampler: sampler}
}

// NewDefault creates an Advisor with the built-in pools and a random sampler.
func NewDefault() *Advisor {
	return New(DefaultPools(), NewRandomSampler())
}

// Reply is a generated answer.
type Reply struct {
	Topic Topic
	Text  string
}

// Classify returns the topic a message routes to.
func (a *Advisor) Classify(message string) Topic {
	if r := match(message); r != nil {
		return r.topic
	}
	return TopicGeneral
}

// Reply answers message, prefixing the user's health context when any is
// known.
func (a *Advisor) Reply(message string, hc HealthContext) Reply {
	topic := TopicGeneral
	var body []string
	if r := match(message); r != nil {
		topic = r.topic
		body = r.respond(a, hc)
	} else {
		body = a.general(hc)
	}

	var parts []string
	if ctx := hc.Lines(); len(ctx) > 0 {
		parts = append(parts, strings.Join(ctx, "\n"), "")
	}
	parts = append(parts, body...)

	return Reply{Topic: topic, Text: strings.Join(parts, "\n")}
}

func match(message string) *rule {
	lower := strings.ToLower(message)
	for i := range rules {
		for _, kw := range rules[i].keywords {
			if strings.Contains(lower, kw) {
				return &rules[i]
			}
		}
	}
	return nil
}

func (a *Advisor) nutrition(HealthContext) []string {
	lines := []string{"🍽️ NUTRITION ADVICE:"}
	lines = append(lines, a.sampler.Sample(a.pools.DietTips, 3)...)
	lines = append(lines, "", "📌 MEAL PREP IDEAS:")
	return append(lines, a.sampler.Sample(a.pools.MealPrepIdeas, 2)...)
}

func (a *Advisor) workout(HealthContext) []string {
	lines := []string{"💪 WORKOUT TIPS:"}
	lines = append(lines, a.sampler.Sample(a.pools.WorkoutTips, 3)...)
	lines = append(lines, "", "📺 RECOMMENDED CHANNELS:")
	return append(lines, a.sampler.Sample(a.pools.FitnessChannels, 3)...)
}

func (a *Advisor) weightLoss(HealthContext) []string {
	lines := []string{
		"🎯 WEIGHT LOSS TIPS:",
		"• Create a calorie deficit: burn more than you consume",
		"• Aim for 0.5-1kg loss per week (safe and sustainable)",
		"• Combine cardio + strength training for best results",
		"",
	}
	lines = append(lines, a.sampler.Sample(a.pools.DietTips, 2)...)
	lines = append(lines, "")
	return append(lines, a.sampler.Sample(a.pools.WorkoutTips, 2)...)
}

func (a *Advisor) weightGain(HealthContext) []string {
	return []string{
		"💪 WEIGHT GAIN TIPS:",
		"• Eat in a calorie surplus: consume more than you burn",
		"• Focus on protein: 1.6-2.2g per kg body weight",
		"• Lift heavy weights 4-5x per week",
		"• Eat every 3-4 hours, include protein at each meal",
		"• Track your calories and progressively increase",
	}
}

func (a *Advisor) mealPrep(HealthContext) []string {
	lines := []string{"🍱 MEAL PREP GUIDE:"}
	lines = append(lines, firstN(a.pools.MealPrepIdeas, 5)...)
	return append(lines, "", "💡 Pro tip: Invest in good containers and prep on Sundays!")
}

func (a *Advisor) videos(HealthContext) []string {
	lines := []string{"📺 TOP FITNESS CHANNELS:"}
	lines = append(lines, firstN(a.pools.FitnessChannels, 7)...)
	return append(lines, "", "💡 Search YouTube for: 'home workout no equipment' or 'beginner HIIT'")
}

func (a *Advisor) motivation(HealthContext) []string {
	lines := []string{"⭐ YOU'VE GOT THIS!"}
	lines = append(lines, a.sampler.Sample(a.pools.MotivationalQuotes, 4)...)
	return append(lines, "", "Remember: Every expert was once a beginner. Keep going! 💪")
}

func (a *Advisor) bmi(hc HealthContext) []string {
	w := hc.Latest
	if w == nil || w.BMI == nil {
		return []string{"Add your weight first to calculate BMI!"}
	}

	lines := []string{fmt.Sprintf("📊 Your BMI: %s (%s)", formatNumber(*w.BMI), w.Category), ""}
	switch w.Category {
	case health.Underweight:
		return append(lines,
			"• Focus on gaining muscle mass through strength training",
			"• Eat calorie-dense foods: nuts, avocados, whole milk",
		)
	case health.Overweight, health.Obese:
		return append(lines,
			"• Focus on sustainable weight loss: 0.5-1kg/week",
			"• Combine cardio and strength training",
			"• Track your food intake and create a calorie deficit",
		)
	default:
		return append(lines, "✅ Great! Maintain with balanced diet and regular exercise")
	}
}

func (a *Advisor) greeting(HealthContext) []string {
	return []string{
		"👋 Hello! I'm your Health Tracker assistant!",
		"",
		"I can help you with:",
		"• 🍽️ Diet and nutrition advice",
		"• 💪 Workout plans and tips",
		"• 🍱 Meal prep ideas",
		"• 📺 YouTube fitness channels",
		"• ⭐ Motivation and tips",
		"",
		"Ask me anything about fitness, diet, workouts, or meal planning!",
	}
}

func (a *Advisor) general(HealthContext) []string {
	lines := []string{"🏥 GENERAL HEALTH TIPS:"}
	lines = append(lines, a.sampler.Sample(a.pools.DietTips, 2)...)
	lines = append(lines, "")
	lines = append(lines, a.sampler.Sample(a.pools.WorkoutTips, 2)...)
	return append(lines, "", "💡 Ask me about: diet, workouts, meal prep, or motivation!")
}

func firstN(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	return append([]string(nil), pool[:n]...)
}
