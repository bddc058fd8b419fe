package domain

import (
	"fmt"
	"sort"
	"time"
)

type ClassStatus string

const (
	ClassStatusScheduled ClassStatus = ""
	ClassStatusCanceled  ClassStatus = "canceled"
	ClassStatusChanged   ClassStatus = "changed"
	ClassStatusOnline    ClassStatus = "online"
)

type Class struct {
	ID string
	// Source identifies the account that produced the record.
	Source  AccountID
	Subject string
	Teacher string
	Room    string
	Start   time.Time
	End     time.Time
	Status  ClassStatus
}

// Timetable maps a week number to the classes known for it. Bucket order is
// the order in which sources wrote their records.
type Timetable map[int][]Class

func (t Timetable) Clone() Timetable {
	cloned := make(Timetable, len(t))
	for week, classes := range t {
		cloned[week] = CloneClasses(classes)
	}
	return cloned
}

func (t Timetable) Weeks() []int {
	weeks := make([]int, 0, len(t))
	for week := range t {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

func (t Timetable) Validate() error {
	for week := range t {
		if err := ValidateWeek(week); err != nil {
			return err
		}
	}
	return nil
}

// CloneClasses never returns nil so that a known-empty week stays distinct
// from a week that was never fetched.
func CloneClasses(classes []Class) []Class {
	cloned := make([]Class, len(classes))
	copy(cloned, classes)
	return cloned
}

func ValidateWeek(week int) error {
	if week < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	return nil
}
