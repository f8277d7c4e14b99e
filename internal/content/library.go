package content

import (
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

var breakfasts = []models.Recipe{
	{
		ID:          "oatmeal-power-bowl",
		Meal:        constants.SlotBreakfast,
		Title:       "Oatmeal Power Bowl",
		Summary:     "Rolled oats with crushed walnuts, blueberries, and manuka honey.",
		Ingredients: []string{"rolled oats", "crushed walnuts", "blueberries", "manuka honey", "oat milk"},
		Steps: []string{
			"Simmer oats in oat milk 5 min.",
			"Top with walnuts and blueberries.",
			"Drizzle manuka honey to finish.",
		},
		Tags: []string{"kidney-friendly", "anti-inflammatory", "vegetarian", "quick"},
	},
	{
		ID:          "bagel-wow-butter",
		Meal:        constants.SlotBreakfast,
		Title:       "Bagel + Wow Butter",
		Summary:     "Toasted bagel with wow butter or cream cheese, Fuji apple on the side.",
		Ingredients: []string{"bagel", "wow butter or cream cheese", "Fuji apple"},
		Steps: []string{
			"Toast bagel.",
			"Spread wow butter or cream cheese.",
			"Serve with sliced Fuji apple on the side.",
		},
		Tags: []string{"quick", "vegetarian"},
	},
	{
		ID:          "buckwheat-waffles",
		Meal:        constants.SlotBreakfast,
		Title:       "Buckwheat Waffles",
		Summary:     "Buckwheat waffles with maple syrup, hash browns, and eggs.",
		Ingredients: []string{"buckwheat waffle mix", "maple syrup", "hash browns", "eggs"},
		Steps: []string{
			"Prepare waffle batter per package; cook in waffle iron.",
			"Pan-fry hash browns until crispy.",
			"Cook eggs as preferred.",
			"Serve together with maple syrup.",
		},
		Tags: []string{"gluten-free-leaning", "coffee-morning", "adds-eggs", "weekend"},
	},
	{
		ID:          "blueberry-pancakes",
		Meal:        constants.SlotBreakfast,
		Title:       "Blueberry Pancakes",
		Summary:     "Fluffy blueberry pancakes with maple syrup.",
		Ingredients: []string{"pancake mix", "blueberries", "maple syrup", "oat milk"},
		Steps: []string{
			"Mix batter; fold in blueberries.",
			"Cook on medium heat, flip when bubbles form.",
			"Serve with maple syrup.",
		},
		Tags: []string{"vegetarian", "weekend", "anti-inflammatory"},
	},
	{
		ID:          "eggs-hash-browns",
		Meal:        constants.SlotBreakfast,
		Title:       "Eggs with Hash Browns",
		Summary:     "Scrambled or fried eggs with crispy hash browns and optional garlic and peppers.",
		Ingredients: []string{"eggs", "hash browns", "fresh garlic (optional)", "rainbow peppers (optional)", "olive oil"},
		Steps: []string{
			"Pan-fry hash browns until golden and crispy.",
			"Sauté garlic and peppers if using.",
			"Cook eggs as preferred.",
			"Serve together.",
		},
		Tags: []string{"protein", "savory", "adds-eggs", "kidney-friendly"},
	},
	{
		ID:          "golden-morning-bowl",
		Meal:        constants.SlotBreakfast,
		Title:       "Golden Morning Bowl",
		Summary:     "Warm oats + banana with turmeric & cinnamon; creamy + crunchy.",
		Ingredients: []string{"rolled oats", "almond/oat milk", "banana", "turmeric", "cinnamon", "pumpkin seeds (small sprinkle)"},
		Steps: []string{
			"Simmer oats in milk 5–7 min.",
			"Mash in ½ banana; stir turmeric + pinch cinnamon.",
			"Top with thin banana slices + tiny sprinkle seeds for crunch.",
		},
		Tags: []string{"kidney-friendly", "low-oxalate-leaning", "vegetarian"},
	},
	{
		ID:          "crispy-morning-hash",
		Meal:        constants.SlotBreakfast,
		Title:       "Crispy Morning Hash (Low-Oxalate)",
		Summary:     "Potato + zucchini hash, crisp edges, soft middle.",
		Ingredients: []string{"potato (diced)", "zucchini (diced)", "olive oil", "garlic powder", "pepper"},
		Steps: []string{
			"Pan on medium-high; oil until shimmering.",
			"Add potato; leave 3–4 min before stirring.",
			"Add zucchini; season; cook to crisp edges.",
		},
		Tags: []string{"kidney-friendly", "gluten-free"},
	},
	{
		ID:          "basic-crepes-fruit",
		Meal:        constants.SlotBreakfast,
		Title:       "Basic Crêpes + Fruit",
		Summary:     "Thin crêpes with yogurt & berries/banana.",
		Ingredients: []string{"crêpe batter", "plain yogurt", "berries/banana", "maple (drizzle)"},
		Steps: []string{
			"Nonstick pan, thin layer batter; flip when edges lift.",
			"Fill with yogurt + fruit; fold; drizzle a touch of maple.",
		},
		Tags: []string{"vegetarian"},
	},
	{
		ID:          "breakfast-greens-rotation",
		Meal:        constants.SlotBreakfast,
		Title:       "Breakfast Greens Sauté",
		Summary:     "Quick sautéed greens + egg or tofu for protein.",
		Ingredients: []string{"greens (e.g., kale/chard)", "olive oil", "garlic", "egg or tofu"},
		Steps:       []string{"Sauté greens 3–4 min.", "Add egg/tofu, cook through.", "Pepper; serve."},
		Tags:        []string{"protein", "quick"},
	},
}

var lunches = []models.Recipe{
	{
		ID:          "monster-turkey-sandwich",
		Meal:        constants.SlotLunch,
		Title:       "Monster Turkey Sandwich",
		Summary:     "Whole wheat turkey sandwich with guacamole, romaine, and Fritos.",
		Ingredients: []string{"whole wheat bread", "turkey cold cuts", "romaine", "tomato", "guacamole", "vegan mayo", "caesar dressing", "sliced onion", "Fritos"},
		Steps: []string{
			"Layer turkey, romaine, tomato, and onion on bread.",
			"Spread guacamole and vegan mayo.",
			"Drizzle caesar dressing.",
			"Serve with Fritos on the side.",
		},
		Tags: []string{"quick", "filling"},
	},
	{
		ID:          "pasta-tuna-bowl",
		Meal:        constants.SlotLunch,
		Title:       "Pasta Tuna Bowl",
		Summary:     "Whole wheat pasta with low-sodium tuna, broccoli, peas, and alfredo sauce.",
		Ingredients: []string{"whole wheat pasta", "low-sodium tuna", "broccoli", "green peas", "alfredo or cheez whiz sauce"},
		Steps: []string{
			"Cook pasta; reserve a little pasta water.",
			"Steam broccoli and peas.",
			"Drain tuna; combine all with sauce.",
			"Add pasta water to loosen if needed.",
		},
		Tags: []string{"adds-tuna", "filling", "kidney-aware"},
	},
	{
		ID:          "golden-cauliflower-curry",
		Meal:        constants.SlotLunch,
		Title:       "Golden Cauliflower Curry",
		Summary:     "Turmeric coconut curry; mild, cozy.",
		Ingredients: []string{"cauliflower", "onion", "garlic", "turmeric", "coconut milk", "rice"},
		Steps:       []string{"Sauté onion/garlic.", "Add cauliflower + turmeric.", "Pour coconut milk; simmer; serve over rice."},
		Tags:        []string{"vegan"},
	},
	{
		ID:          "sesame-tofu-fried-rice",
		Meal:        constants.SlotLunch,
		Title:       "Golden Grove Fried Rice (Sesame Tofu)",
		Summary:     "Leftover rice + tofu; toasted sesame finish.",
		Ingredients: []string{"cooked rice", "firm tofu", "frozen peas/carrots", "sesame oil", "low-sodium tamari (light)"},
		Steps:       []string{"Crisp tofu cubes.", "Add rice + veg; toss.", "Finish with a little sesame oil; tiny splash tamari."},
		Tags:        []string{"kidney-aware", "low-sodium"},
	},
	{
		ID:          "tuna-chickpea-smash",
		Meal:        constants.SlotLunch,
		Title:       "Tuna + Chickpea Smash (Low-Sodium)",
		Summary:     "High-protein spread for wrap or romaine boats.",
		Ingredients: []string{"low-sodium tuna (rinsed)", "chickpeas (rinsed, mashed)", "olive oil", "lemon", "dill"},
		Steps:       []string{"Mash chickpeas; fold in tuna.", "Olive oil + lemon + dill.", "Serve in wrap/lettuce."},
		Tags:        []string{"adds tuna", "quick"},
	},
	{
		ID:          "veg-rice-soup",
		Meal:        constants.SlotLunch,
		Title:       "Vegetable & Rice Soup (One-Pot)",
		Summary:     "Light, soothing; great make-ahead.",
		Ingredients: []string{"onion", "carrot", "celery", "rice", "water/low-sodium stock", "bay"},
		Steps:       []string{"Sweat veg 5 min.", "Add rice + liquid + bay; simmer till tender.", "Pepper to finish."},
		Tags:        []string{"gentle", "kidney-aware"},
	},
}

var dinners = []models.Recipe{
	{
		ID:          "jamaican-style-curry",
		Meal:        constants.SlotDinner,
		Title:       "Jamaican-Style Curry",
		Summary:     "Chicken or chickpeas with zucchini, cauliflower, and coconut milk over rice.",
		Ingredients: []string{"chicken or chickpeas", "zucchini", "cauliflower", "celery", "carrots", "bell peppers", "coconut milk", "curry powder", "cumin", "ginger powder", "cayenne", "rice", "cilantro"},
		Steps: []string{
			"Sauté onion and peppers 3–4 min.",
			"Add spices; toast 1 min.",
			"Add chicken or chickpeas + vegetables; stir to coat.",
			"Pour coconut milk; simmer 20–25 min until tender.",
			"Serve over rice with fresh cilantro.",
		},
		Tags: []string{"adds-chicken", "kidney-aware", "makes-two-meals", "anti-inflammatory"},
	},
	{
		ID:          "rice-veggie-bowl",
		Meal:        constants.SlotDinner,
		Title:       "Rice Veggie Bowl",
		Summary:     "Rice with cilantro, mixed vegetables, and chicken or chickpeas.",
		Ingredients: []string{"rice", "cilantro", "mixed vegetables", "chicken or chickpeas", "olive oil", "garlic powder", "pepper"},
		Steps: []string{
			"Cook rice; fluff with cilantro.",
			"Season and cook chicken or chickpeas until done.",
			"Sauté mixed vegetables.",
			"Assemble bowl; serve.",
		},
		Tags: []string{"adds-chicken", "gentle", "kidney-aware", "makes-two-meals"},
	},
	{
		ID:          "pasta-chicken-bowl",
		Meal:        constants.SlotDinner,
		Title:       "Pasta Chicken Bowl",
		Summary:     "Pasta with chicken, broccoli, green peas, and alfredo sauce.",
		Ingredients: []string{"pasta", "chicken", "broccoli", "green peas", "alfredo sauce"},
		Steps: []string{
			"Cook pasta.",
			"Season and cook chicken; slice.",
			"Steam broccoli and peas.",
			"Combine all with alfredo sauce.",
		},
		Tags: []string{"adds-chicken", "filling"},
	},
	{
		ID:          "chicken-caesar-twist",
		Meal:        constants.SlotDinner,
		Title:       "Chicken Caesar (Twist)",
		Summary:     "Grilled/air-fried chicken; light dressing.",
		Ingredients: []string{"chicken breast", "romaine", "olive oil", "lemon", "parmesan (pinch)"},
		Steps:       []string{"Cook chicken; slice.", "Toss romaine with oil + lemon.", "Top with chicken + tiny parmesan."},
		Tags:        []string{"adds chicken", "light"},
	},
	{
		ID:          "baked-salmon-sheetpan",
		Meal:        constants.SlotDinner,
		Title:       "Baked Salmon Sheet-Pan",
		Summary:     "Lemon-herb salmon + veggies.",
		Ingredients: []string{"salmon", "zucchini", "bell pepper", "olive oil", "lemon", "herbs"},
		Steps:       []string{"Tray with veg; oil + season.", "Lay salmon on top; 200°C / 400°F ~12–15 min.", "Finish with lemon."},
		Tags:        []string{"adds salmon"},
	},
	{
		ID:          "golden-cauliflower-curry-dinner",
		Meal:        constants.SlotDinner,
		Title:       "Golden Cauliflower Curry (Dinner)",
		Summary:     "Double up for leftover-friendly dinner.",
		Ingredients: []string{"cauliflower", "onion", "garlic", "turmeric", "coconut milk", "rice"},
		Steps:       []string{"Same method as lunch version; larger batch."},
		Tags:        []string{"vegan"},
	},
}

var (
	qiGongWarmUp   = models.Block{Label: "Qi Gong Warm-up", Minutes: 10, Details: "Ba Duan Jin style; gentle range"}
	qiGongCoolDown = models.Block{Label: "Qi Gong Cool-down", Minutes: 5, Details: "Loose shakes, breath, open/close"}
)

// rotation is indexed by weekday mod 4.
var rotation = []models.WorkoutPlan{
	{
		ID:    "mobility-walk",
		Title: "Mobility + Walk (Energy)",
		Blocks: []models.Block{
			qiGongWarmUp,
			{Label: "Walk (easy pace)", Minutes: 25, Details: "RPE 3–4; nasal breathing"},
			{Label: "Hips/Shoulders Mobility", Minutes: 10, Details: "Cats-cows, hip circles, wall slides"},
			qiGongCoolDown,
		},
	},
	{
		ID:    "strength-a",
		Title: "Strength A (Low-Impact)",
		Blocks: []models.Block{
			qiGongWarmUp,
			{Label: "Circuit ×2", Minutes: 20, Details: "Chair squats 8–12, Wall push-ups 8–12, Band rows 8–12, Glute bridge 10–15, Dead bug 8–10/side"},
			{Label: "Walk (short)", Minutes: 15, Details: "Easy flush"},
			qiGongCoolDown,
		},
	},
	{
		ID:    "balance-core",
		Title: "Balance + Core",
		Blocks: []models.Block{
			qiGongWarmUp,
			{Label: "Balance Drills", Minutes: 12, Details: "Single-leg (support nearby), heel-toe walks"},
			{Label: "Core (gentle)", Minutes: 10, Details: "Side plank (knees), bird-dog slow reps"},
			{Label: "Walk", Minutes: 20, Details: "Relaxed"},
			qiGongCoolDown,
		},
	},
	{
		ID:    "recovery-long-walk",
		Title: "Recovery + Longer Walk",
		Blocks: []models.Block{
			{Label: "Qi Gong Flow", Minutes: 15, Details: "Smooth continuous set"},
			{Label: "Walk (long easy)", Minutes: 35, Details: "Comfortable pace"},
			{Label: "Stretch", Minutes: 8, Details: "Calves, hamstrings, chest doorway stretch"},
		},
	},
}

var (
	bruceQuotes = []models.Quote{
		{Text: "Be water, my friend.", Author: "Bruce Lee"},
		{Text: "The successful warrior is the average man, with laser-like focus.", Author: "Bruce Lee"},
		{Text: "Absorb what is useful, discard what is not, add what is uniquely your own.", Author: "Bruce Lee"},
		{Text: "Knowing is not enough, we must apply. Willing is not enough, we must do.", Author: "Bruce Lee"},
	}
	alanQuotes = []models.Quote{
		{Text: "Muddy water is best cleared by leaving it alone.", Author: "Alan Watts"},
		{Text: "You are an aperture through which the universe is looking at and exploring itself.", Author: "Alan Watts"},
		{Text: "Stop measuring days by degree of productivity and start experiencing them by degree of presence.", Author: "Alan Watts"},
		{Text: "Trying to define yourself is like trying to bite your own teeth.", Author: "Alan Watts"},
	}
)
