package storage

import (
	"errors"
	"sort"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/energycoach/internal/errors"
)

type memStore struct {
	data    map[string]string
	failGet bool
	failSet bool
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Init() error { return nil }
func (m *memStore) Load() error { return nil }
func (m *memStore) Close() error { return nil }

func (m *memStore) Get(key string) (string, error) {
	if m.failGet {
		return "", errors.New("disk gone")
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(key, value string) error {
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Keys(prefix string) ([]string, error) {
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStore) GetConfigPath() string { return "memory" }

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetJSONDefaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memStore)
	}{
		{"missing key", func(*memStore) {}},
		{"malformed payload", func(m *memStore) { m.data["rec"] = "{not json" }},
		{"read failure", func(m *memStore) { m.failGet = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMemStore()
			tt.setup(m)
			rec := record{Name: "default", Count: 3}
			if GetJSON(m, "rec", &rec) {
				t.Error("GetJSON() = true, want false")
			}
			if rec.Name != "default" || rec.Count != 3 {
				t.Errorf("default was overwritten: %+v", rec)
			}
		})
	}

	t.Run("nil provider", func(t *testing.T) {
		rec := record{Name: "default"}
		if GetJSON(nil, "rec", &rec) {
			t.Error("GetJSON(nil) = true, want false")
		}
	})
}

func TestSetGetJSONRoundTrip(t *testing.T) {
	m := newMemStore()
	if err := SetJSON(m, "rec", record{Name: "oats", Count: 2}); err != nil {
		t.Fatalf("SetJSON() error: %v", err)
	}
	var got record
	if !GetJSON(m, "rec", &got) {
		t.Fatal("GetJSON() = false after SetJSON")
	}
	if got.Name != "oats" || got.Count != 2 {
		t.Errorf("GetJSON() = %+v", got)
	}
}

func TestSetJSONFailure(t *testing.T) {
	m := newMemStore()
	m.failSet = true
	err := SetJSON(m, "rec", record{})
	if !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Errorf("SetJSON() error = %v, want ErrStorageUnavailable", err)
	}
	if err := SetJSON(nil, "rec", record{}); !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Errorf("SetJSON(nil) error = %v, want ErrStorageUnavailable", err)
	}
}
