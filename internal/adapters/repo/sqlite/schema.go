package sqlite

import (
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
)

const documentVersion = 2

const schema = `
CREATE TABLE IF NOT EXISTS timetable_documents (
	profile    TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	document   TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type documentJSON struct {
	Buckets []bucketJSON `json:"buckets"`
}

type bucketJSON struct {
	Week    int         `json:"week"`
	Classes []classJSON `json:"classes"`
}

type classJSON struct {
	ID      string     `json:"id"`
	Source  string     `json:"source"`
	Subject string     `json:"subject,omitempty"`
	Teacher string     `json:"teacher,omitempty"`
	Room    string     `json:"room,omitempty"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	Status  string     `json:"status,omitempty"`
}

func toDocument(timetable domain.Timetable) documentJSON {
	doc := documentJSON{Buckets: make([]bucketJSON, 0, len(timetable))}
	for _, week := range timetable.Weeks() {
		bucket := bucketJSON{Week: week, Classes: make([]classJSON, 0, len(timetable[week]))}
		for _, class := range timetable[week] {
			bucket.Classes = append(bucket.Classes, classJSON{
				ID:      class.ID,
				Source:  string(class.Source),
				Subject: class.Subject,
				Teacher: class.Teacher,
				Room:    class.Room,
				Start:   timePtr(class.Start),
				End:     timePtr(class.End),
				Status:  string(class.Status),
			})
		}
		doc.Buckets = append(doc.Buckets, bucket)
	}
	return doc
}

func fromDocument(doc documentJSON) (domain.Timetable, error) {
	timetable := make(domain.Timetable, len(doc.Buckets))
	for _, bucket := range doc.Buckets {
		if err := domain.ValidateWeek(bucket.Week); err != nil {
			return nil, err
		}

		classes := make([]domain.Class, 0, len(bucket.Classes))
		for _, class := range bucket.Classes {
			classes = append(classes, domain.Class{
				ID:      class.ID,
				Source:  domain.AccountID(class.Source),
				Subject: class.Subject,
				Teacher: class.Teacher,
				Room:    class.Room,
				Start:   timeValue(class.Start),
				End:     timeValue(class.End),
				Status:  domain.ClassStatus(class.Status),
			})
		}
		timetable[bucket.Week] = classes
	}
	return timetable, nil
}

func timePtr(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	return &value
}

func timeValue(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}
