package catalog

import "fitguide/fitness-app/internal/domain"

var (
	gym     = []domain.Location{domain.LocationGym}
	gymHome = []domain.Location{domain.LocationGym, domain.LocationHome}
)

// defaultExercises is the built-in catalog. Machine exercises that have a
// bodyweight/band alternative list it as a replacement entry.
var defaultExercises = []domain.Exercise{
	// back
	{ID: "back_1", Name: "Lat Pulldown", Muscles: []string{"Back"}, Sets: 3, Reps: "10–12", Instruction: "Pull the bar toward your upper chest.", Image: "/lat_pulldown_seq.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Lat Pulldown"},
	{ID: "back_2", Name: "Seated Cable Row", Muscles: []string{"Back"}, Sets: 3, Reps: "10–12", Instruction: "Pull handle to waist, keep back straight.", Image: "/seated_row_seq.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Rower"},
	{ID: "back_3", Name: "Barbell Row", Muscles: []string{"Back"}, Sets: 3, Reps: "8–10", Instruction: "Bend forward, pull bar to ribs.", Image: "/barbell_row_seq.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyIntermediate, EquipmentRequired: "Barbells"},
	{ID: "back_4", Name: "Assisted Pull-ups", Muscles: []string{"Back", "Arms"}, Sets: 3, Reps: "8–10", Instruction: "Use assistance to pull chin over bar.", Image: "/assisted_pullups.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner},
	{ID: "back_5", Name: "Resistance Band Row", Muscles: []string{"Back"}, Sets: 3, Reps: "12–15", Instruction: "Anchor band and row back to squeeze blades.", Image: "/resistance_band_row.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner},
	{ID: "back_2r", Name: "Inverted Table Row", Muscles: []string{"Back"}, Sets: 3, Reps: "10–12", Instruction: "Lie under a sturdy table and pull your chest to the edge.", Image: "/inverted_row.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyIntermediate, IsReplacement: true, ReplacesID: "back_2"},

	// chest
	{ID: "chest_1", Name: "Bench Press", Muscles: []string{"Chest"}, Sets: 3, Reps: "8–10", Instruction: "Press bar vertically using a bench.", Image: "/bench_press.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Barbells"},
	{ID: "chest_2", Name: "Incline Dumbbell Press", Muscles: []string{"Chest", "Shoulders"}, Sets: 3, Reps: "10", Instruction: "Press dumbbells up at an incline.", Image: "/incline_press_seq.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyIntermediate, EquipmentRequired: "Dumbbells"},
	{ID: "chest_3", Name: "Chest Fly (Machine)", Muscles: []string{"Chest"}, Sets: 3, Reps: "12", Instruction: "Squeeze handles together in a flying motion.", Image: "/chest_fly_seq.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Chest Fly"},
	{ID: "chest_4", Name: "Push Ups", Muscles: []string{"Chest", "Shoulders", "Triceps"}, Sets: 3, Reps: "15–20", Instruction: "Lower body to floor and push back up.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/pushups.png", Category: domain.CategoryStrength, Locations: []domain.Location{domain.LocationHome, domain.LocationGym}, Difficulty: domain.DifficultyBeginner},
	{ID: "chest_3r", Name: "Wide Push Ups", Muscles: []string{"Chest"}, Sets: 3, Reps: "12", Instruction: "Hands wider than shoulders, lower slowly and squeeze up.", Image: "/wide_pushups.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, IsReplacement: true, ReplacesID: "chest_3"},

	// shoulders
	{ID: "shoulder_1", Name: "Shoulder Press", Muscles: []string{"Shoulders"}, Sets: 3, Reps: "10", Instruction: "Press dumbbells vertically above head.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/military-press.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Dumbbells"},
	{ID: "shoulder_2", Name: "Lateral Raise", Muscles: []string{"Shoulders"}, Sets: 3, Reps: "12–15", Instruction: "Raise arms out to the sides horizontally.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/deadlift.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Dumbbells"},

	// arms
	{ID: "bicep_1", Name: "Dumbbell Bicep Curl", Muscles: []string{"Biceps"}, Sets: 3, Reps: "12", Instruction: "Curl dumbbells towards shoulders.", Image: "/dumbbell_bicep_curl.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Dumbbells"},
	{ID: "bicep_2", Name: "Hammer Curl", Muscles: []string{"Biceps"}, Sets: 3, Reps: "12", Instruction: "Curl dumbbells with neutral grip.", Image: "/hammer_curl_seq.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Dumbbells"},
	{ID: "bicep_3", Name: "Concentration Curl", Muscles: []string{"Biceps"}, Sets: 3, Reps: "12", Instruction: "Isolate bicep curling against inner thigh.", Image: "/concentration_curl_seq.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Dumbbells"},
	{ID: "bicep_4", Name: "Preacher Curl", Muscles: []string{"Biceps"}, Sets: 3, Reps: "10", Instruction: "Rest arms on pad and curl upwards.", Image: "/preacher_curl_seq.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Seated Curl"},
	{ID: "bicep_4r", Name: "Resistance Band Curl", Muscles: []string{"Biceps"}, Sets: 3, Reps: "12–15", Instruction: "Stand on the band and curl the handles to your shoulders.", Image: "/band_curl.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, IsReplacement: true, ReplacesID: "bicep_4"},

	// legs
	{ID: "leg_1", Name: "Bodyweight Squats", Muscles: []string{"Legs"}, Sets: 3, Reps: "15", Instruction: "Lower hips while keeping heels flat.", Image: "/squats.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner},
	{ID: "leg_2", Name: "Leg Press", Muscles: []string{"Legs"}, Sets: 3, Reps: "12", Instruction: "Push weight away using leg power.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/leg-press.png", Category: domain.CategoryStrength, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Leg Press"},
	{ID: "leg_3", Name: "Lunges", Muscles: []string{"Legs"}, Sets: 3, Reps: "12", Instruction: "Step forward and lower back knee to floor.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/lunges.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner},
	{ID: "leg_4", Name: "Calf Raises", Muscles: []string{"Legs"}, Sets: 3, Reps: "20", Instruction: "Raise heels and stand on tiptoes.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/flex-foot.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner},
	{ID: "leg_2r", Name: "Wall Sit", Muscles: []string{"Legs"}, Sets: 3, Reps: "45s", Instruction: "Slide down a wall until knees are at 90 degrees and hold.", Image: "/wall_sit.png", Category: domain.CategoryStrength, Locations: gymHome, Difficulty: domain.DifficultyBeginner, IsReplacement: true, ReplacesID: "leg_2"},

	// core
	{ID: "core_1", Name: "Plank", Muscles: []string{"Core"}, Sets: 3, Reps: "60s", Instruction: "Hold straight line from head to heels.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/plank.png", Category: domain.CategoryCore, Locations: []domain.Location{domain.LocationHome, domain.LocationGym}, Difficulty: domain.DifficultyBeginner},
	{ID: "core_2", Name: "Crunches", Muscles: []string{"Core"}, Sets: 3, Reps: "20", Instruction: "Curl upper body towards knees.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/crunches.png", Category: domain.CategoryCore, Locations: []domain.Location{domain.LocationHome, domain.LocationGym}, Difficulty: domain.DifficultyBeginner},
	{ID: "core_3", Name: "Bicycle Crunches", Muscles: []string{"Core"}, Sets: 3, Reps: "20", Instruction: "Opposite elbow to opposite knee cycling motion.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/cycling.png", Category: domain.CategoryCore, Locations: []domain.Location{domain.LocationHome, domain.LocationGym}, Difficulty: domain.DifficultyIntermediate},

	// cardio
	{ID: "cardio_1", Name: "Treadmill", Muscles: []string{"Heart", "Legs"}, Sets: 1, Reps: "15 mins", Instruction: "Running or power walking.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/treadmill.png", Category: domain.CategoryCardio, Locations: gym, Difficulty: domain.DifficultyBeginner, EquipmentRequired: "Treadmill"},
	{ID: "cardio_2", Name: "Rowing Machine", Muscles: []string{"Heart", "Back"}, Sets: 1, Reps: "10 mins", Instruction: "Full-body rowing motion.", Image: "https://img.icons8.com/fluency-systems-filled/200/10B981/rowing-machine.png", Category: domain.CategoryCardio, Locations: gym, Difficulty: domain.DifficultyIntermediate, EquipmentRequired: "Rower"},
	{ID: "cardio_1r", Name: "Jumping Jacks", Muscles: []string{"Heart", "Legs"}, Sets: 3, Reps: "60s", Instruction: "Jump feet out while raising arms overhead, then back.", Image: "/jumping_jacks.png", Category: domain.CategoryCardio, Locations: gymHome, Difficulty: domain.DifficultyBeginner, IsReplacement: true, ReplacesID: "cardio_1"},
	{ID: "cardio_2r", Name: "Burpees", Muscles: []string{"Heart", "Back"}, Sets: 3, Reps: "8–10", Instruction: "Squat, kick back to plank, return and jump.", Image: "/burpees.png", Category: domain.CategoryCardio, Locations: gymHome, Difficulty: domain.DifficultyIntermediate, IsReplacement: true, ReplacesID: "cardio_2"},
}

// gymEquipment is the reference list offered during onboarding.
var gymEquipment = []domain.Equipment{
	{ID: "Treadmill", Name: "Treadmill", Icon: "🏃"},
	{ID: "Elliptical", Name: "Elliptical Trainer", Icon: "🚲"},
	{ID: "Rower", Name: "Rowing Machine", Icon: "🚣"},
	{ID: "Upright Bike", Name: "Upright Bike", Icon: "🚴"},
	{ID: "Recumbent Bike", Name: "Recumbent Bike", Icon: "🪑"},
	{ID: "Spin Bike", Name: "Spin Bike", Icon: "🔥"},
	{ID: "Stair Climber", Name: "Stair Climber", Icon: "🪜"},
	{ID: "Air Bike", Name: "Air Bike", Icon: "💨"},
	{ID: "Ski Erg", Name: "Ski Ergometer", Icon: "🎿"},
	{ID: "Leg Press", Name: "Leg Press", Icon: "🦵"},
	{ID: "Lat Pulldown", Name: "Lat Pulldown", Icon: "👐"},
	{ID: "Chest Fly", Name: "Chest Fly", Icon: "🦋"},
	{ID: "Seated Curl", Name: "Curl Machine", Icon: "💪"},
	{ID: "Barbells", Name: "Barbells", Icon: "🏋️"},
	{ID: "Dumbbells", Name: "Dumbbells", Icon: "⚖️"},
	{ID: "Cable Machine", Name: "Cable Machine", Icon: "⛓️"},
	{ID: "Leg Extension", Name: "Leg Extension", Icon: "🦵"},
	{ID: "Leg Curl", Name: "Leg Curl", Icon: "➰"},
	{ID: "Ab Crunch Machine", Name: "Ab Crunch Machine", Icon: "📉"},
	{ID: "Pull Up Bar", Name: "Pull Up Bar / Power Tower", Icon: "🏗️"},
	{ID: "Decline Bench", Name: "Decline Bench", Icon: "🪑"},
	{ID: "Ab Roller", Name: "Ab Roller Wheel", Icon: "🛞"},
	{ID: "Captain’s Chair", Name: "Captain’s Chair", Icon: "💺"},
}
