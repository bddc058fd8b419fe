package ports

import (
	"context"

	"github.com/bnema/school-accounts-cli/internal/domain"
)

// TimetableRepository persists one aggregated timetable document per profile.
// Load returns an empty timetable when nothing was persisted for profile.
type TimetableRepository interface {
	Load(ctx context.Context, profile domain.ProfileID) (domain.Timetable, error)
	Save(ctx context.Context, profile domain.ProfileID, timetable domain.Timetable) error
}
