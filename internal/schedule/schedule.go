// Package schedule implements recurring spoken reminders: a small set of
// rrule-go recurrence rules, each due at its next occurrence and spoken
// once per firing.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Reminder is one recurring announcement.
type Reminder struct {
	Message string
	rule    *rrule.RRule
	lastFired time.Time
}

// NewReminder builds a Reminder from rrule-go recurrence options
// (e.g. Freq: rrule.DAILY, Byhour: []int{9}, Byminute: []int{0}).
func NewReminder(message string, ro rrule.ROption) (*Reminder, error) {
	rule, err := rrule.NewRRule(ro)
	if err != nil {
		return nil, fmt.Errorf("parse recurrence rule for %q: %w", message, err)
	}
	return &Reminder{Message: message, rule: rule}, nil
}

// NewReminderFromRFCString builds a Reminder from an RFC 5545 recurrence
// rule string (e.g. "FREQ=DAILY;BYHOUR=9;BYMINUTE=0"), the form a config
// file stores recurrence rules in.
func NewReminderFromRFCString(message, rfcString string) (*Reminder, error) {
	rule, err := rrule.StrToRRule(rfcString)
	if err != nil {
		return nil, fmt.Errorf("parse recurrence rule for %q: %w", message, err)
	}
	return &Reminder{Message: message, rule: rule}, nil
}

// Next returns the first occurrence strictly after from.
func (r *Reminder) Next(from time.Time) time.Time {
	return r.rule.After(from, false)
}

// Scheduler holds every configured Reminder and tracks which have
// already fired so a single occurrence is never spoken twice.
type Scheduler struct {
	reminders []*Reminder
}

// New returns an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Add registers r.
func (s *Scheduler) Add(r *Reminder) {
	s.reminders = append(s.reminders, r)
}

// Due returns the messages of every reminder whose next occurrence at or
// before now hasn't already fired, advancing each fired reminder's state
// so the same occurrence isn't returned again.
func (s *Scheduler) Due(now time.Time) []string {
	var due []string
	for _, r := range s.reminders {
		occurrences := r.rule.Between(r.lastFired, now, false)
		if len(occurrences) == 0 {
			continue
		}
		r.lastFired = occurrences[len(occurrences)-1]
		due = append(due, r.Message)
	}
	return due
}
