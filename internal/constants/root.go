package constants

import "time"

// SlotKind identifies one of the four agenda slots
type SlotKind string

// ExerciseMode selects how the exercise slot is derived
type ExerciseMode string

// QuotePref selects which authors the daily quote is drawn from
type QuotePref string

// PantryStatus represents the stock level of a pantry item
type PantryStatus string

// PantryCategory groups pantry items for display
type PantryCategory string

const (
	AppName            = "energycoach"
	DefaultKeyringUser = "database-connection"
	OAuthKeyringUser   = "google-oauth-token"
	DefaultConfigPath  = "~/.config/energycoach/energycoach.db"
	DefaultCredentials = "~/.config/energycoach/credentials.json"
	EnvDBConnection    = "ENERGYCOACH_DB_CONNECTION"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys
	KeySettings    = "settings"
	KeyAgenda      = "agenda"
	KeyPantry      = "pantry"
	KeySleepPrefix = "sleep:"

	// Notify constants
	NotifierLockfileName   = "energycoach-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.energycoach"
	TrayExecutablePrefix   = "energycoach-tray"
	TraySecretHeader       = "X-Energycoach-Secret"
	WebhookTimeout         = 5 * time.Second
	QuoteTitle             = "Daily Inspiration"

	// Audible cue
	CueDurationMs  = 400
	CueFrequencyHz = 880

	// Time derivation
	MorningExerciseLeadMin = 30
	CountdownNowWindow     = 30 * time.Second

	// Calendar
	CalendarFetchTimeout = 10 * time.Second
	OAuthRedirectPort    = "6789"

	// Host loop
	WatchTick = time.Second

	// Slot kinds
	SlotBreakfast SlotKind = "breakfast"
	SlotLunch     SlotKind = "lunch"
	SlotDinner    SlotKind = "dinner"
	SlotExercise  SlotKind = "exercise"

	// Exercise modes
	ExerciseMorning ExerciseMode = "morning"
	ExerciseEvening ExerciseMode = "evening"
	ExerciseCustom  ExerciseMode = "custom"

	// Quote preferences
	QuoteBruce QuotePref = "bruce"
	QuoteAlan  QuotePref = "alan"
	QuoteBoth  QuotePref = "both"

	// Pantry statuses
	PantryFull PantryStatus = "full"
	PantryLow  PantryStatus = "low"
	PantryOut  PantryStatus = "out"

	// Pantry categories
	CategoryProtein PantryCategory = "protein"
	CategoryProduce PantryCategory = "produce"
	CategoryPantry  PantryCategory = "pantry"
	CategoryDairy   PantryCategory = "dairy"
	CategoryFrozen  PantryCategory = "frozen"
	CategoryDrinks  PantryCategory = "drinks"

	// RequiresTagPrefix marks recipe tags that depend on a pantry item being in stock
	RequiresTagPrefix = "adds-"
)
