package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/utils"
)

func clock(t *testing.T, at *time.Time) string {
	t.Helper()
	if at == nil {
		return ""
	}
	return utils.ClockTime(*at)
}

func TestComputeSchedule(t *testing.T) {
	anchor := time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exercise models.ExerciseSchedule
		offset   int
		interval int
		want     [4]string // breakfast, lunch, dinner, exercise
	}{
		{
			name:     "default settings evening exercise",
			exercise: models.Evening(60),
			offset:   60,
			interval: 4,
			want:     [4]string{"08:00", "12:00", "16:00", "17:00"},
		},
		{
			name:     "morning exercise leads breakfast by 30 minutes",
			exercise: models.Morning(),
			offset:   60,
			interval: 4,
			want:     [4]string{"08:00", "12:00", "16:00", "07:30"},
		},
		{
			name:     "custom exercise leaves slot unset",
			exercise: models.Custom(),
			offset:   30,
			interval: 3,
			want:     [4]string{"07:30", "10:30", "13:30", ""},
		},
		{
			name:     "evening offset of zero coincides with dinner",
			exercise: models.Evening(0),
			offset:   0,
			interval: 5,
			want:     [4]string{"07:00", "12:00", "17:00", "17:00"},
		},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.DefaultSettings()
			settings.BreakfastOffsetMin = tt.offset
			settings.MealIntervalHours = tt.interval
			settings.Exercise = tt.exercise

			sched := s.ComputeSchedule(anchor, settings)
			got := [4]string{
				clock(t, sched.At(constants.SlotBreakfast)),
				clock(t, sched.At(constants.SlotLunch)),
				clock(t, sched.At(constants.SlotDinner)),
				clock(t, sched.At(constants.SlotExercise)),
			}
			if got != tt.want {
				t.Errorf("ComputeSchedule() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeSchedule_Idempotent(t *testing.T) {
	anchor := time.Date(2024, 5, 6, 6, 42, 0, 0, time.UTC)
	settings := models.DefaultSettings()
	s := New()

	first := s.ComputeSchedule(anchor, settings)
	second := s.ComputeSchedule(anchor, settings)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeSchedule() not idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeSchedule_CrossesMidnight(t *testing.T) {
	anchor := time.Date(2024, 5, 6, 22, 0, 0, 0, time.UTC)
	sched := New().ComputeSchedule(anchor, models.DefaultSettings())

	if sched.Dinner.Day() != 7 {
		t.Errorf("dinner should roll into the next day, got %v", sched.Dinner)
	}
	if got := utils.ClockTime(sched.Dinner); got != "07:00" {
		t.Errorf("dinner = %s, want 07:00", got)
	}
}

func TestDownstream(t *testing.T) {
	tests := []struct {
		kind constants.SlotKind
		want []constants.SlotKind
	}{
		{constants.SlotBreakfast, []constants.SlotKind{constants.SlotLunch, constants.SlotDinner}},
		{constants.SlotLunch, []constants.SlotKind{constants.SlotDinner}},
		{constants.SlotDinner, nil},
		{constants.SlotExercise, nil},
	}
	for _, tt := range tests {
		if got := Downstream(tt.kind); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Downstream(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
