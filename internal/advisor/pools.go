package advisor

// Pools are the canned advice tables the advisor draws from. The text is part
// of the product and must not be reworded.
type Pools struct {
	DietTips           []string
	WorkoutTips        []string
	MealPrepIdeas      []string
	FitnessChannels    []string
	MotivationalQuotes []string
}

// DefaultPools returns a fresh copy of the built-in tables.
func DefaultPools() Pools {
	return Pools{
		DietTips:           clone(dietTips),
		WorkoutTips:        clone(workoutTips),
		MealPrepIdeas:      clone(mealPrepIdeas),
		FitnessChannels:    clone(fitnessChannels),
		MotivationalQuotes: clone(motivationalQuotes),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

var dietTips = []string{
	"🥗 Try meal prepping on Sundays! Prepare grilled chicken, brown rice, and roasted vegetables for the week.",
	"🍎 Start your day with a protein-rich breakfast - eggs, Greek yogurt, or a protein smoothie.",
	"💧 Drink at least 8 glasses of water daily. Add lemon or cucumber for flavor!",
	"🥑 Include healthy fats: avocados, nuts, olive oil, and fatty fish like salmon.",
	"🍽️ Use smaller plates to control portion sizes naturally.",
	"🥦 Fill half your plate with vegetables at every meal.",
	"🚫 Avoid sugary drinks - they add empty calories without making you feel full.",
	"🍗 Lean proteins: chicken breast, turkey, fish, tofu, and legumes.",
	"🌾 Choose whole grains: brown rice, quinoa, oats, and whole wheat bread.",
	"⏰ Don't skip meals - eat every 3-4 hours to maintain metabolism.",
}

var workoutTips = []string{
	"🏃 Beginner workout: 30 min walk daily + 10 push-ups + 20 squats + 30 sec plank",
	"💪 Strength training 3x/week helps build muscle and boost metabolism.",
	"🏋️ Full body workout: Squats, Push-ups, Lunges, Rows, Planks - 3 sets of 10 reps each.",
	"🚴 Cardio options: Running, cycling, swimming, or dancing - 150 min/week.",
	"🧘 Don't forget rest days! Your muscles need time to recover and grow.",
	"⚡ HIIT workout: 30 sec sprint + 30 sec rest, repeat 10 times = quick fat burn!",
	"🏃‍♀️ Mix it up: Combine cardio, strength training, and flexibility exercises.",
	"📱 Follow fitness YouTubers: FitnessBlender, POPSUGAR Fitness, Chloe Ting.",
	"🎯 Progressive overload: Gradually increase weight, reps, or intensity each week.",
	"🤸 Bodyweight exercises: Perfect for home workouts - no equipment needed!",
}

var mealPrepIdeas = []string{
	"🍱 Meal Prep Idea: Chicken teriyaki bowls - chicken, broccoli, carrots, and brown rice.",
	"🥘 Batch cook chili or soup - freeze in portions for quick healthy meals.",
	"🍳 Prep breakfast: Overnight oats with berries, chia seeds, and almond butter.",
	"🥙 Make wraps: Whole wheat tortilla + hummus + grilled veggies + protein.",
	"🍝 Healthy pasta: Whole grain pasta + marinara + lean ground turkey + vegetables.",
	"🥗 Mason jar salads: Layer dressing, hard veggies, protein, greens (lasts 5 days!).",
	"🍗 Baked protein: Season 5 chicken breasts, bake at 375°F for 25 min, divide for week.",
	"🥕 Pre-cut veggies: Wash and chop carrots, celery, peppers for easy snacking.",
	"🍚 Rice cooker hack: Make a big batch of brown rice/quinoa on Sunday.",
	"🫙 Portion control: Use meal prep containers to pre-portion your meals.",
}

var fitnessChannels = []string{
	"📺 Chloe Ting - Free workout programs and abs challenges",
	"📺 FitnessBlender - 500+ free workout videos for all levels",
	"📺 POPSUGAR Fitness - Dance cardio and fun workouts",
	"📺 Yoga with Adriene - Yoga for beginners to advanced",
	"📺 Athlean-X - Science-based fitness and nutrition",
	"📺 Blogilates - Pilates and fitness challenges",
	"📺 MadFit - No jumping apartment-friendly workouts",
	"📺 The Body Coach TV - HIIT workouts with Joe Wicks",
	"📺 HASfit - Free complete workout programs",
	"📺 Pamela Reif - No talking, music-only workouts",
}

var motivationalQuotes = []string{
	"💪 'The only bad workout is the one that didn't happen.'",
	"🎯 'Progress, not perfection. Small steps lead to big changes!'",
	"⭐ 'Your body can do it. It's your mind you need to convince.'",
	"🔥 'Don't wish for it. Work for it!'",
	"🌟 'You're one workout away from a better mood.'",
	"💯 'Consistency is key. Show up every day, even when it's hard.'",
	"🏆 'Believe in yourself and you will be unstoppable!'",
	"🚀 'Your health is an investment, not an expense.'",
	"💎 'Take care of your body. It's the only place you have to live.'",
	"✨ 'Every meal is a chance to fuel your body right!'",
}
