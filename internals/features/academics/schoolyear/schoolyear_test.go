package schoolyear

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCurrentLabel(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "mid january", now: date(2025, time.January, 15), want: "2024/2025"},
		{name: "late august", now: date(2025, time.August, 31), want: "2024/2025"},
		{name: "first of september", now: date(2025, time.September, 1), want: "2025/2026"},
		{name: "october", now: date(2025, time.October, 1), want: "2025/2026"},
		{name: "december 31st", now: date(2025, time.December, 31), want: "2025/2026"},
		{name: "year boundary", now: date(2026, time.January, 1), want: "2025/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentLabel(tt.now); got != tt.want {
				t.Errorf("CurrentLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAvailableLabels(t *testing.T) {
	now := date(2025, time.October, 1) // current = 2025/2026

	tests := []struct {
		name      string
		persisted []string
		want      []string
	}{
		{
			name:      "empty store still yields current",
			persisted: nil,
			want:      []string{"2025/2026"},
		},
		{
			name:      "union sorted descending",
			persisted: []string{"2022/2023", "2023/2024"},
			want:      []string{"2025/2026", "2023/2024", "2022/2023"},
		},
		{
			name:      "duplicates collapse",
			persisted: []string{"2025/2026", "2025/2026", "2023/2024"},
			want:      []string{"2025/2026", "2023/2024"},
		},
		{
			name:      "blank labels skipped, malformed kept",
			persisted: []string{"", "  ", "not-a-year", "2024/2025"},
			want:      []string{"not-a-year", "2025/2026", "2024/2025"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailableLabels(now, tt.persisted); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailableLabels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableLabelsOrderIndependent(t *testing.T) {
	now := date(2025, time.March, 3)
	persisted := []string{"2021/2022", "2019/2020", "2023/2024", "2020/2021"}
	want := AvailableLabels(now, persisted)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), persisted...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := AvailableLabels(now, shuffled); !reflect.DeepEqual(got, want) {
			t.Fatalf("AvailableLabels() order-dependent: got %v, want %v", got, want)
		}
	}
}
