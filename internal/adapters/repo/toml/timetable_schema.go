package toml

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bnema/school-accounts-cli/internal/domain"
)

// Version 1 documents kept a flat [timetables] table keyed by the week
// rendered as a string. Version 2 stores an ordered array of buckets.
const (
	legacyTimetableSchemaVersion  = 1
	currentTimetableSchemaVersion = 2
)

type timetableFileSchema struct {
	Version int                      `toml:"version"`
	Profile string                   `toml:"profile,omitempty"`
	Buckets []bucketSchema           `toml:"buckets,omitempty"`
	Legacy  map[string][]classSchema `toml:"timetables,omitempty"`
}

type bucketSchema struct {
	Week    int           `toml:"week"`
	Classes []classSchema `toml:"classes,omitempty"`
}

type classSchema struct {
	ID      string `toml:"id"`
	Source  string `toml:"source"`
	Subject string `toml:"subject,omitempty"`
	Teacher string `toml:"teacher,omitempty"`
	Room    string `toml:"room,omitempty"`
	Start   string `toml:"start,omitempty"`
	End     string `toml:"end,omitempty"`
	Status  string `toml:"status,omitempty"`
}

func (s timetableFileSchema) validateVersion() error {
	if s.Version > currentTimetableSchemaVersion {
		return fmt.Errorf("unsupported timetable schema version %d (current %d)", s.Version, currentTimetableSchemaVersion)
	}

	return nil
}

// migrate upgrades a decoded document to the current version in memory.
func (s *timetableFileSchema) migrate() error {
	if s.Version == 0 && len(s.Legacy) > 0 {
		s.Version = legacyTimetableSchemaVersion
	}

	if s.Version <= legacyTimetableSchemaVersion {
		buckets := make([]bucketSchema, 0, len(s.Legacy))
		for rawWeek, classes := range s.Legacy {
			week, err := strconv.Atoi(rawWeek)
			if err != nil {
				return fmt.Errorf("migrate timetable week %q: %w", rawWeek, err)
			}
			buckets = append(buckets, bucketSchema{Week: week, Classes: classes})
		}
		sort.Slice(buckets, func(i, j int) bool { return buckets[i].Week < buckets[j].Week })

		s.Buckets = append(s.Buckets, buckets...)
		s.Legacy = nil
	}

	s.Version = currentTimetableSchemaVersion
	return nil
}

func toTimetableSchema(profile domain.ProfileID, timetable domain.Timetable) timetableFileSchema {
	file := timetableFileSchema{
		Version: currentTimetableSchemaVersion,
		Profile: string(profile),
		Buckets: make([]bucketSchema, 0, len(timetable)),
	}

	for _, week := range timetable.Weeks() {
		classes := timetable[week]
		bucket := bucketSchema{Week: week, Classes: make([]classSchema, 0, len(classes))}
		for _, class := range classes {
			bucket.Classes = append(bucket.Classes, toClassSchema(class))
		}
		file.Buckets = append(file.Buckets, bucket)
	}

	return file
}

func fromTimetableSchema(file timetableFileSchema) (domain.Timetable, error) {
	timetable := make(domain.Timetable, len(file.Buckets))
	for _, bucket := range file.Buckets {
		if err := domain.ValidateWeek(bucket.Week); err != nil {
			return nil, err
		}

		classes := make([]domain.Class, 0, len(bucket.Classes))
		for _, class := range bucket.Classes {
			decoded, err := fromClassSchema(class)
			if err != nil {
				return nil, fmt.Errorf("week %d class %q: %w", bucket.Week, class.ID, err)
			}
			classes = append(classes, decoded)
		}
		timetable[bucket.Week] = classes
	}

	return timetable, nil
}

func toClassSchema(class domain.Class) classSchema {
	return classSchema{
		ID:      class.ID,
		Source:  string(class.Source),
		Subject: class.Subject,
		Teacher: class.Teacher,
		Room:    class.Room,
		Start:   formatTime(class.Start),
		End:     formatTime(class.End),
		Status:  string(class.Status),
	}
}

func fromClassSchema(class classSchema) (domain.Class, error) {
	start, err := parseTime(class.Start)
	if err != nil {
		return domain.Class{}, err
	}
	end, err := parseTime(class.End)
	if err != nil {
		return domain.Class{}, err
	}

	return domain.Class{
		ID:      class.ID,
		Source:  domain.AccountID(class.Source),
		Subject: class.Subject,
		Teacher: class.Teacher,
		Room:    class.Room,
		Start:   start,
		End:     end,
		Status:  domain.ClassStatus(class.Status),
	}, nil
}
