package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const timetableTempPattern = ".timetable-*.toml.tmp"

// TimetableRepository keeps one TOML document per profile under dir.
type TimetableRepository struct {
	dir string
}

var _ ports.TimetableRepository = (*TimetableRepository)(nil)

func NewTimetableRepository(dir string) (*TimetableRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("timetables directory is empty")
	}

	dir, err := normalizePath(dir)
	if err != nil {
		return nil, err
	}

	return &TimetableRepository{dir: dir}, nil
}

func (r *TimetableRepository) Load(ctx context.Context, profile domain.ProfileID) (domain.Timetable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.pathFor(profile)
	if err != nil {
		return nil, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Timetable{}, nil
		}
		return nil, fmt.Errorf("read timetable file: %w", err)
	}

	var file timetableFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode timetable file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	if err := file.migrate(); err != nil {
		return nil, err
	}

	return fromTimetableSchema(file)
}

func (r *TimetableRepository) Save(ctx context.Context, profile domain.ProfileID, timetable domain.Timetable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.pathFor(profile)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(toTimetableSchema(profile, timetable))
	if err != nil {
		return fmt.Errorf("encode timetable file: %w", err)
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return writeFileAtomic(path, timetableTempPattern, "timetable", data)
}

func (r *TimetableRepository) pathFor(profile domain.ProfileID) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}

	return filepath.Join(r.dir, strings.TrimSpace(string(profile))+".toml"), nil
}
