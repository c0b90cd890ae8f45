package schedule

import (
	"testing"
	"time"

	"github.com/teambition/rrule-go"
)

func TestReminderFiresOncePerOccurrence(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	r, err := NewReminder("stand up and stretch", rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
	})
	if err != nil {
		t.Fatal(err)
	}

	s := New()
	s.Add(r)

	before := start.Add(-time.Minute)
	if due := s.Due(before); len(due) != 0 {
		t.Fatalf("due = %v; want none before first occurrence", due)
	}

	after := start.Add(time.Minute)
	due := s.Due(after)
	if len(due) != 1 || due[0] != "stand up and stretch" {
		t.Fatalf("due = %v; want one firing", due)
	}

	if due := s.Due(after); len(due) != 0 {
		t.Fatalf("due = %v; want no repeat firing for the same occurrence", due)
	}
}

func TestNextReturnsFollowingOccurrence(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	r, err := NewReminder("daily check-in", rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
	})
	if err != nil {
		t.Fatal(err)
	}
	next := r.Next(start)
	want := start.Add(24 * time.Hour)
	if !next.Equal(want) {
		t.Fatalf("Next = %v; want %v", next, want)
	}
}
