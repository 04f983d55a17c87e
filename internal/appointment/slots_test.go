package appointment

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func newTestGenerator(t *testing.T, seed uint64) *SlotGenerator {
	t.Helper()
	g, err := NewSlotGenerator(gofakeit.New(seed), DefaultStartWorkHour, DefaultEndWorkHour)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return g
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestNewSlotGenerator_RejectsInvalidHours(t *testing.T) {
	for _, hours := range [][2]int{{17, 9}, {9, 9}, {-1, 10}, {9, 25}} {
		if _, err := NewSlotGenerator(nil, hours[0], hours[1]); err == nil {
			t.Fatalf("expected error for hours %v", hours)
		}
	}
}

func TestSlots_BeforeWorkStart(t *testing.T) {
	g := newTestGenerator(t, 1)
	now := at(8, 0)

	slots := g.Slots(now, now)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	for i, s := range slots {
		want := at(9+i, 0)
		if !s.Equal(want) {
			t.Fatalf("slot %d: expected %s, got %s", i, want.Format(time.RFC3339), s.Format(time.RFC3339))
		}
	}
}

func TestSlots_AfterLastHour(t *testing.T) {
	g := newTestGenerator(t, 1)

	if slots := g.Slots(at(16, 30), at(16, 30)); len(slots) != 0 {
		t.Fatalf("expected no slots at 16:30, got %d", len(slots))
	}
	// next hour would wrap past midnight
	if slots := g.Slots(at(23, 30), at(23, 30)); len(slots) != 0 {
		t.Fatalf("expected no slots at 23:30, got %d", len(slots))
	}
}

func TestSlots_MidDayPlusFullDays(t *testing.T) {
	g := newTestGenerator(t, 1)
	now := at(12, 15)

	slots := g.Slots(now, now.AddDate(0, 0, 2))
	// 13..16 today, then two full days of 8 hours
	if len(slots) != 4+16 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if !slots[0].Equal(at(13, 0)) {
		t.Fatalf("expected first slot 13:00, got %s", slots[0].Format(time.RFC3339))
	}
	if !slots[4].Equal(at(9, 0).AddDate(0, 0, 1)) {
		t.Fatalf("expected fifth slot tomorrow 09:00, got %s", slots[4].Format(time.RFC3339))
	}
	if last := slots[len(slots)-1]; !last.Equal(at(16, 0).AddDate(0, 0, 2)) {
		t.Fatalf("expected last slot in two days at 16:00, got %s", last.Format(time.RFC3339))
	}

	for i, s := range slots {
		if s.Hour() < DefaultStartWorkHour || s.Hour() >= DefaultEndWorkHour {
			t.Fatalf("slot %s outside work hours", s.Format(time.RFC3339))
		}
		if s.Minute() != 0 || s.Second() != 0 || s.Nanosecond() != 0 {
			t.Fatalf("slot %s not truncated to the hour", s.Format(time.RFC3339))
		}
		if i > 0 && !slots[i-1].Before(s) {
			t.Fatalf("slots not ascending at %d", i)
		}
	}
}

func TestSlots_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	g := newTestGenerator(t, 1)
	now := time.Date(2026, 10, 15, 7, 10, 0, 0, loc)

	slots := g.Slots(now, now)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if slots[0].Location() != loc || slots[0].Hour() != 9 {
		t.Fatalf("expected 09:00 local slot, got %s", slots[0])
	}
}

func TestGenerate_CapsAtAvailableSlots(t *testing.T) {
	g := newTestGenerator(t, 7)
	now := at(8, 0)

	apps := g.Generate(100, now, now)
	if len(apps) != 8 {
		t.Fatalf("expected 8 appointments, got %d", len(apps))
	}

	seen := map[time.Time]bool{}
	for i, a := range apps {
		if seen[a.Time] {
			t.Fatalf("duplicate slot %s", a.Time.Format(time.RFC3339))
		}
		seen[a.Time] = true
		if i > 0 && !apps[i-1].Time.Before(a.Time) {
			t.Fatalf("appointments not in ascending slot order at %d", i)
		}
	}
}

func TestGenerate_Fields(t *testing.T) {
	g := newTestGenerator(t, 42)
	now := at(10, 5)

	apps := g.Generate(12, now, now.AddDate(0, 0, 3))
	if len(apps) != 12 {
		t.Fatalf("expected 12 appointments, got %d", len(apps))
	}

	for _, a := range apps {
		if a.ID != 0 {
			t.Fatalf("generated appointment must not carry an id, got %d", a.ID)
		}
		if a.Status != StatusPass {
			t.Fatalf("expected status PASS, got %s", a.Status)
		}
		if !a.Price.IsInteger() || a.Price.IntPart()%10 != 0 || a.Price.IntPart() < 10 || a.Price.IntPart() > 200 {
			t.Fatalf("unexpected price %s", a.Price)
		}
		first, last, ok := strings.Cut(a.ClientName, " ")
		if !ok || !slices.Contains(firstNames, first) || !slices.Contains(lastNames, last) {
			t.Fatalf("unexpected client name %q", a.ClientName)
		}
		if !a.Time.After(now) {
			t.Fatalf("slot %s is not in the future", a.Time.Format(time.RFC3339))
		}
	}
}

func TestGenerate_EmptyUniverse(t *testing.T) {
	g := newTestGenerator(t, 3)
	now := at(16, 30)

	if apps := g.Generate(5, now, now); len(apps) != 0 {
		t.Fatalf("expected no appointments, got %d", len(apps))
	}
}

func TestGenerate_NonPositiveQuantity(t *testing.T) {
	g := newTestGenerator(t, 3)
	now := at(8, 0)

	if apps := g.Generate(0, now, now); len(apps) != 0 {
		t.Fatalf("expected no appointments, got %d", len(apps))
	}
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	now := at(9, 45)
	end := now.AddDate(0, 0, 5)

	first := newTestGenerator(t, 2026).Generate(10, now, end)
	second := newTestGenerator(t, 2026).Generate(10, now, end)

	if len(first) != len(second) {
		t.Fatalf("length mismatch %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("appointment %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerate_CustomWorkHours(t *testing.T) {
	g, err := NewSlotGenerator(gofakeit.New(5), 10, 12)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	now := at(6, 0)

	apps := g.Generate(10, now, now.AddDate(0, 0, 1))
	if len(apps) != 4 {
		t.Fatalf("expected 4 appointments, got %d", len(apps))
	}
	for _, a := range apps {
		if a.Time.Hour() < 10 || a.Time.Hour() >= 12 {
			t.Fatalf("slot %s outside work hours", a.Time.Format(time.RFC3339))
		}
	}
}
