package gameclock

import (
	"testing"
	"time"
)

func TestState_TickAccumulatesMinutes(t *testing.T) {
	s := State{DayCount: 1, MinuteOfDay: 480}
	now := time.Now()

	res := s.Tick(90, now)
	if res.DayRolled {
		t.Fatal("no rollover expected")
	}
	if res.DeltaMinutes != 90 {
		t.Fatalf("delta = %v, want 90", res.DeltaMinutes)
	}
	if res.State.MinuteOfDay != 570 || res.State.DayCount != 1 {
		t.Fatalf("state = %+v", res.State)
	}
	if !res.State.LastUpdatedAt.Equal(now) {
		t.Fatal("LastUpdatedAt not stamped")
	}
}

func TestState_TickRollsMidnight(t *testing.T) {
	s := State{DayCount: 1, MinuteOfDay: 1439}

	res := s.Tick(120, time.Now())
	if !res.DayRolled || res.DaysRolled != 1 {
		t.Fatalf("expected single rollover, got %+v", res)
	}
	if res.State.DayCount != 2 {
		t.Fatalf("day = %d, want 2", res.State.DayCount)
	}
	if res.State.MinuteOfDay != 119 {
		t.Fatalf("minute = %v, want 119", res.State.MinuteOfDay)
	}
}

func TestState_TickRollsSeveralDays(t *testing.T) {
	s := State{DayCount: 1, MinuteOfDay: 0}

	res := s.Tick(3*MinutesPerDay+1, time.Now())
	if res.DaysRolled != 3 {
		t.Fatalf("expected 3 rollovers, got %d", res.DaysRolled)
	}
	if res.State.DayCount != 4 || res.State.MinuteOfDay != 1 {
		t.Fatalf("state = %+v", res.State)
	}
}

func TestState_NegativeDeltaIsIgnored(t *testing.T) {
	s := State{DayCount: 1, MinuteOfDay: 100}
	res := s.Tick(-30, time.Now())
	if res.State.MinuteOfDay != 100 || res.DeltaMinutes != 0 {
		t.Fatalf("negative delta should freeze the clock, got %+v", res)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minute float64
		want   string
	}{
		{0, "12:00 AM"},
		{1, "12:01 AM"},
		{480, "8:00 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{780, "1:00 PM"},
		{1439, "11:59 PM"},
		{1439.7, "11:59 PM"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.minute); got != tc.want {
			t.Fatalf("FormatClock(%v) = %q, want %q", tc.minute, got, tc.want)
		}
	}
}

func TestOfflineMinutes_Capped(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := OfflineMinutes(now.Add(-30*time.Minute), now); got != 30 {
		t.Fatalf("30 minutes away should yield 30, got %v", got)
	}
	if got := OfflineMinutes(now.Add(-48*time.Hour), now); got != MaxOfflineMinutes {
		t.Fatalf("expected cap %v, got %v", float64(MaxOfflineMinutes), got)
	}
	if got := OfflineMinutes(time.Time{}, now); got != 0 {
		t.Fatalf("zero save time should yield 0, got %v", got)
	}
	if got := OfflineMinutes(now.Add(time.Minute), now); got != 0 {
		t.Fatalf("future save time should yield 0, got %v", got)
	}
}
