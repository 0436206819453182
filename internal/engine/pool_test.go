package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/f3rmion/snack/internal/snack"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSecretPool(t *testing.T) {
	pool, err := SecretPool(zoo)
	if err != nil {
		t.Fatalf("SecretPool failed: %v", err)
	}
	want := []string{"African Elephant", "White Rhino", "Orca", "Cow"}
	if len(pool) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(pool))
	}
	for i, it := range pool {
		if it.Name != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], it.Name)
		}
	}
}

func TestSecretPoolEmpty(t *testing.T) {
	_, err := SecretPool([]snack.Item{ostrich, python})
	if !errors.Is(err, snack.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	var epe *snack.EmptyPoolError
	if !errors.As(err, &epe) || epe.Total != 2 {
		t.Fatalf("expected EmptyPoolError with total 2, got %#v", err)
	}
}

func TestSecretPoolCustomEligible(t *testing.T) {
	pool, err := SecretPool(zoo, snack.Hard)
	if err != nil {
		t.Fatalf("SecretPool failed: %v", err)
	}
	if len(pool) != 2 || pool[0].Name != "Ostrich" {
		t.Fatalf("unexpected hard pool: %v", pool)
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.January, 1), 0},
		{date(2025, time.January, 2), 1},
		{date(2025, time.December, 31), 364},
		{date(2024, time.December, 31), 365},
		{date(2024, time.March, 1), 60},
	}
	for _, tt := range tests {
		if got := DayOfYear(tt.date); got != tt.want {
			t.Errorf("DayOfYear(%s): expected %d, got %d", tt.date.Format(time.DateOnly), tt.want, got)
		}
	}
}

func TestDayOfYearIgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("no tzdata: %v", err)
	}
	// The day after the spring-forward switch is 23h short of a whole day count.
	d := time.Date(2025, time.March, 31, 0, 30, 0, 0, loc)
	if got := DayOfYear(d); got != 89 {
		t.Fatalf("expected 89, got %d", got)
	}
}

func TestSelectSecretDeterministic(t *testing.T) {
	pool, _ := SecretPool(zoo)
	d := date(2025, time.March, 14)

	first, err := SelectSecret(pool, d)
	if err != nil {
		t.Fatalf("SelectSecret failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := SelectSecret(pool, d)
		if again.Name != first.Name {
			t.Fatalf("call %d: expected %s, got %s", i, first.Name, again.Name)
		}
	}

	// Day 72 of the year mod 4 items.
	if want := pool[72%4].Name; first.Name != want {
		t.Fatalf("expected %s, got %s", want, first.Name)
	}
}

func TestSelectSecretRotates(t *testing.T) {
	pool, _ := SecretPool(zoo)
	for i := range pool {
		got, _ := SelectSecret(pool, date(2025, time.January, 1+i))
		if got.Name != pool[i].Name {
			t.Errorf("day %d: expected %s, got %s", i, pool[i].Name, got.Name)
		}
	}
}

func TestSelectSecretEmptyPool(t *testing.T) {
	_, err := SelectSecret(nil, date(2025, time.June, 1))
	if !errors.Is(err, snack.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2025, time.May, 2, 5, 0, 0, 0, loc) // May 1, 19:00 UTC

	local := Today(now, BoundaryLocal)
	if local.Day() != 2 {
		t.Errorf("local boundary: expected day 2, got %d", local.Day())
	}
	utc := Today(now, BoundaryUTC)
	if utc.Day() != 1 || utc.Location() != time.UTC {
		t.Errorf("utc boundary: expected May 1 UTC, got %s", utc)
	}
	if local.Hour() != 0 || utc.Hour() != 0 {
		t.Error("expected midnight")
	}
}

func TestDrawMatch(t *testing.T) {
	pool, _ := SecretPool(zoo)
	d := date(2025, time.July, 4)

	first, err := DrawMatch(pool, d, 3)
	if err != nil {
		t.Fatalf("DrawMatch failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 items, got %d", len(first))
	}

	seen := make(map[string]bool)
	for _, it := range first {
		if seen[it.Name] {
			t.Fatalf("duplicate draw %s", it.Name)
		}
		seen[it.Name] = true
	}

	again, _ := DrawMatch(pool, d, 3)
	for i := range first {
		if first[i].Name != again[i].Name {
			t.Fatalf("draw %d differs: %s vs %s", i, first[i].Name, again[i].Name)
		}
	}

	whole, _ := DrawMatch(pool, d, len(pool))
	if len(whole) != len(pool) {
		t.Fatalf("expected full permutation, got %d", len(whole))
	}
}

func TestDrawMatchErrors(t *testing.T) {
	pool, _ := SecretPool(zoo)
	d := date(2025, time.July, 4)

	if _, err := DrawMatch(pool, d, 0); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := DrawMatch(pool, d, len(pool)+1); err == nil {
		t.Error("expected error for n > pool")
	}
	if _, err := DrawMatch(nil, d, 1); !errors.Is(err, snack.ErrEmptyPool) {
		t.Errorf("expected ErrEmptyPool, got %v", err)
	}
}

func TestPracticeSecret(t *testing.T) {
	pool, _ := SecretPool(zoo)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		it, err := PracticeSecret(pool, rng)
		if err != nil {
			t.Fatalf("PracticeSecret failed: %v", err)
		}
		if it.Difficulty == snack.Hard {
			t.Fatalf("practice secret %s is outside the pool", it.Name)
		}
	}
}
