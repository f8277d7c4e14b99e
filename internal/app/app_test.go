package app

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmhodges/clock"

	"github.com/julianstephens/energycoach/internal/constants"
	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/sleep"
	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/storage/sqlite"
	"github.com/julianstephens/energycoach/internal/utils"
)

type recordingChannel struct {
	mu     sync.Mutex
	titles []string
}

func (r *recordingChannel) Name() string { return "recording" }
func (r *recordingChannel) RequestPermission() notifier.Permission {
	return notifier.PermissionGranted
}
func (r *recordingChannel) Deliver(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
	return nil
}

func (r *recordingChannel) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}

var start = time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC)

func setupApp(t *testing.T) (*App, clock.FakeClock, *recordingChannel) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "coach.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clk := clock.NewFake()
	clk.Set(start)
	ch := &recordingChannel{}
	a := New(store, clk, Options{Channel: ch, Rand: rand.New(rand.NewPCG(3, 4))})
	t.Cleanup(a.Close)

	s := models.DefaultSettings()
	s.Timezone = "UTC"
	if err := a.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	return a, clk, ch
}

func hhmm(at *time.Time) string {
	if at == nil {
		return ""
	}
	return utils.ClockTime(*at)
}

func TestTodayBeforeCheckIn(t *testing.T) {
	a, _, _ := setupApp(t)
	ag := a.Today()
	if ag.Day != "2024-05-06" || ag.HasAnchor() {
		t.Errorf("Today() = %+v, want empty agenda for 2024-05-06", ag)
	}
	if ag.Breakfast.Note != "" {
		t.Error("empty agenda should not be filled")
	}
}

func TestCheckInPersistsAndAnnounces(t *testing.T) {
	a, _, ch := setupApp(t)
	ag := a.CheckIn()

	if hhmm(ag.Breakfast.At) != "08:00" || hhmm(ag.Exercise.At) != "17:00" {
		t.Errorf("check-in times = %s / %s", hhmm(ag.Breakfast.At), hhmm(ag.Exercise.At))
	}
	for _, s := range ag.Slots() {
		if s.Note == "" {
			t.Errorf("%s note is empty after check-in", s.Kind)
		}
	}

	reloaded := a.Today()
	if !reloaded.HasAnchor() || reloaded.Lunch.Note != ag.Lunch.Note {
		t.Error("agenda was not persisted")
	}

	titles := ch.Titles()
	if len(titles) != 1 || titles[0] != constants.QuoteTitle {
		t.Errorf("deliveries = %v, want only the quote", titles)
	}
}

func TestQuoteToggleOff(t *testing.T) {
	a, _, ch := setupApp(t)
	s := a.Settings()
	s.Notify.Quotes = false
	if err := a.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	a.CheckIn()
	if len(ch.Titles()) != 0 {
		t.Errorf("deliveries = %v, want none", ch.Titles())
	}
}

func TestEditTime(t *testing.T) {
	a, _, _ := setupApp(t)

	if _, err := a.EditTime(constants.SlotBreakfast, "09:00", true); !errors.Is(err, apperrors.ErrPreconditionNotMet) {
		t.Errorf("edit before check-in error = %v", err)
	}

	a.CheckIn()
	ag, err := a.EditTime(constants.SlotBreakfast, "09:00", true)
	if err != nil {
		t.Fatalf("EditTime() error: %v", err)
	}
	got := [4]string{hhmm(ag.Breakfast.At), hhmm(ag.Lunch.At), hhmm(ag.Dinner.At), hhmm(ag.Exercise.At)}
	if got != [4]string{"09:00", "13:00", "17:00", "17:00"} {
		t.Errorf("times = %v", got)
	}
	if saved := a.Today(); hhmm(saved.Dinner.At) != "17:00" || !saved.Edited {
		t.Error("edit was not persisted")
	}
}

func TestEditNoteSurvivesFill(t *testing.T) {
	a, _, _ := setupApp(t)
	a.CheckIn()
	if _, err := a.EditNote(constants.SlotDinner, "pizza night"); err != nil {
		t.Fatal(err)
	}
	if got := a.Today().Dinner.Note; got != "pizza night" {
		t.Errorf("dinner note = %q", got)
	}
}

func TestRollover(t *testing.T) {
	a, clk, _ := setupApp(t)
	a.StartReminders()
	a.CheckIn()
	if len(a.Reminders.Pending()) == 0 {
		t.Fatal("expected pending reminders after check-in")
	}

	clk.Set(time.Date(2024, 5, 7, 0, 0, 1, 0, time.UTC))
	ag := a.Today()
	if ag.Day != "2024-05-07" || ag.HasAnchor() || ag.Breakfast.Note != "" {
		t.Errorf("Today() after midnight = %+v, want empty", ag)
	}
	if n := len(a.Reminders.Pending()); n != 0 {
		t.Errorf("%d reminders survived rollover", n)
	}

	var entry models.SleepEntry
	if !storage.GetJSON(a.Store, sleep.Key("2024-05-07"), &entry) {
		t.Fatal("rollover should create the new day's sleep record")
	}
	if entry.Quality != sleep.DefaultQuality {
		t.Errorf("sleep quality = %d, want default", entry.Quality)
	}
}

func TestLiveRemindersFollowEdits(t *testing.T) {
	a, _, _ := setupApp(t)
	a.StartReminders()
	a.CheckIn()

	if _, err := a.EditTime(constants.SlotLunch, "13:30", false); err != nil {
		t.Fatal(err)
	}
	var lunch *models.Task
	count := 0
	for _, task := range a.Reminders.Pending() {
		if task.Slot == constants.SlotLunch {
			lunch = &task
			count++
		}
	}
	if count != 1 || lunch == nil || hhmm(&lunch.FireAt) != "13:30" {
		t.Errorf("lunch reminders = %d, at %v", count, lunch)
	}
}

func pendingAt(a *App, kind constants.SlotKind) []string {
	var out []string
	for _, task := range a.Reminders.Pending() {
		if task.Slot == kind {
			out = append(out, hhmm(&task.FireAt))
		}
	}
	return out
}

func TestLiveRemindersFollowOtherProcesses(t *testing.T) {
	a, clk, _ := setupApp(t)
	a.StartReminders()
	if n := len(a.Reminders.Pending()); n != 0 {
		t.Fatalf("%d reminders armed before check-in", n)
	}

	other := New(a.Store, clk, Options{Rand: rand.New(rand.NewPCG(5, 6))})
	t.Cleanup(other.Close)

	other.CheckIn()
	a.Today()
	if n := len(a.Reminders.Pending()); n != 4 {
		t.Fatalf("Pending() = %d after a check-in elsewhere, want 4", n)
	}

	if _, err := other.EditTime(constants.SlotLunch, "13:30", false); err != nil {
		t.Fatal(err)
	}
	a.Today()
	if got := pendingAt(a, constants.SlotLunch); len(got) != 1 || got[0] != "13:30" {
		t.Errorf("lunch reminders = %v, want [13:30]", got)
	}
}

func TestNoteEditDoesNotRedeliver(t *testing.T) {
	a, clk, ch := setupApp(t)
	s := a.Settings()
	s.Notify.Quotes = false
	if err := a.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	a.StartReminders()
	a.CheckIn()

	clk.Set(start.Add(90 * time.Minute))
	deadline := time.Now().Add(2 * time.Second)
	for len(ch.Titles()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := a.EditNote(constants.SlotDinner, "pizza night"); err != nil {
		t.Fatal(err)
	}
	a.Today()
	time.Sleep(100 * time.Millisecond)

	if titles := ch.Titles(); len(titles) != 1 || titles[0] != "Breakfast" {
		t.Errorf("deliveries = %v, want a single Breakfast", titles)
	}
	if got := pendingAt(a, constants.SlotBreakfast); len(got) != 0 {
		t.Errorf("breakfast re-armed at %v", got)
	}
}

func TestPantryDrivesFill(t *testing.T) {
	a, _, _ := setupApp(t)
	items := a.Pantry()
	if len(items) != 33 {
		t.Fatalf("default pantry has %d items", len(items))
	}
	items[0].Status = constants.PantryOut
	if err := a.SavePantry(items); err != nil {
		t.Fatal(err)
	}
	if got := a.Pantry()[0].Status; got != constants.PantryOut {
		t.Errorf("saved status = %s", got)
	}
}

func TestSleepRoundTrip(t *testing.T) {
	a, _, _ := setupApp(t)
	e := a.Sleep("2024-05-06")
	e.Dream = "ocean"
	if err := a.SaveSleep(e); err != nil {
		t.Fatal(err)
	}
	if got := a.Sleep("2024-05-06"); got.Dream != "ocean" {
		t.Errorf("Sleep() = %+v", got)
	}
}

type brokenStore struct{ storage.Provider }

func (brokenStore) Get(string) (string, error) { return "", errors.New("disk gone") }
func (brokenStore) Set(string, string) error   { return errors.New("read-only") }

func TestStorageFailureUsesDefaults(t *testing.T) {
	clk := clock.NewFake()
	clk.Set(start)
	a := New(brokenStore{}, clk, Options{})
	defer a.Close()

	if got := a.Settings(); got.MealIntervalHours != constants.DefaultMealIntervalHours {
		t.Errorf("Settings() = %+v, want defaults", got)
	}
	ag := a.CheckIn()
	if !ag.HasAnchor() {
		t.Error("check-in should still work without storage")
	}
}
