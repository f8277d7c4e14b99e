package constants

const (
	// Default Settings Values
	DefaultBreakfastOffsetMin = 60
	DefaultMealIntervalHours  = 4
	DefaultExerciseMode       = ExerciseEvening
	DefaultExerciseOffsetMin  = 60
	DefaultQuotePref          = QuoteBoth
	DefaultNotifyMeals        = true
	DefaultNotifyExercise     = true
	DefaultNotifyQuotes       = true
	DefaultNotifySound        = true
	DefaultCalendarID         = "primary"
	DefaultTimezone           = "Local" // Use system local timezone by default

	// Sleep log defaults
	DefaultSleepQuality = 7
	MaxSleepMinutes     = 16 * 60
)
