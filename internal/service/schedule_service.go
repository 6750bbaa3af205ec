package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitclub-admin/internal/domain"
)

// Accepted start-time layouts; the first is what an HTML datetime-local field sends.
var startLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ScheduleInput is raw form input; parsing is part of the operation so that
// a bad field fails it as a whole.
type ScheduleInput struct {
	SectionID string
	TrainerID string
	Datetime  string
	Duration  string
}

type scheduleFields struct {
	sectionID uint
	trainerID uint
	startsAt  time.Time
	duration  int
}

type ScheduleService struct {
	store domain.Store
	loc   *time.Location
}

func NewScheduleService(store domain.Store, loc *time.Location) *ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleService{store: store, loc: loc}
}

func (s *ScheduleService) ListSchedule(ctx context.Context) ([]domain.Schedule, error) {
	return s.store.Schedules().ListOrdered(ctx)
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id uint) (*domain.Schedule, error) {
	e, err := s.store.Schedules().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: schedule %d", domain.ErrNotFound, id)
	}
	return e, nil
}

// ScheduleForm is what an edit form needs: the entry and its choices.
type ScheduleForm struct {
	Schedule *domain.Schedule `json:"schedule"`
	Sections []domain.Section `json:"sections"`
	Trainers []domain.Actor   `json:"trainers"`
}

func (s *ScheduleService) Form(ctx context.Context, id uint) (*ScheduleForm, error) {
	var out ScheduleForm
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		e, err := tx.Schedules().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: schedule %d", domain.ErrNotFound, id)
		}
		out.Schedule = e
		if out.Sections, err = tx.Sections().List(ctx); err != nil {
			return err
		}
		out.Trainers, err = tx.Actors().ListByRole(ctx, domain.RoleTrainer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, in ScheduleInput) (*domain.Schedule, error) {
	var out *domain.Schedule
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		f, err := s.resolve(ctx, tx, in)
		if err != nil {
			return err
		}
		e := &domain.Schedule{SectionID: f.sectionID, TrainerID: f.trainerID, StartsAt: f.startsAt, Duration: f.duration}
		if err := tx.Schedules().Create(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	observe("create_schedule", err)
	return out, err
}

// EditSchedule overwrites section, trainer, start and duration together.
// Nothing is written unless every field is valid.
func (s *ScheduleService) EditSchedule(ctx context.Context, id uint, in ScheduleInput) (*domain.Schedule, error) {
	var out *domain.Schedule
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		e, err := tx.Schedules().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: schedule %d", domain.ErrNotFound, id)
		}
		f, err := s.resolve(ctx, tx, in)
		if err != nil {
			return err
		}
		e.SectionID, e.TrainerID, e.StartsAt, e.Duration = f.sectionID, f.trainerID, f.startsAt, f.duration
		e.Section, e.Trainer = nil, nil
		if err := tx.Schedules().Update(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	observe("edit_schedule", err)
	return out, err
}

// DeleteSchedule also deletes the registrations on the entry.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id uint) error {
	err := s.store.Atomic(ctx, func(tx domain.Store) error {
		if _, err := tx.Registrations().DeleteBySchedules(ctx, []uint{id}); err != nil {
			return err
		}
		n, err := tx.Schedules().Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: schedule %d", domain.ErrNotFound, id)
		}
		return nil
	})
	observe("delete_schedule", err)
	return err
}

func (s *ScheduleService) resolve(ctx context.Context, tx domain.Store, in ScheduleInput) (scheduleFields, error) {
	f, err := s.parse(in)
	if err != nil {
		return f, err
	}
	sec, err := tx.Sections().FindByID(ctx, f.sectionID)
	if err != nil {
		return f, err
	}
	if sec == nil {
		return f, fmt.Errorf("%w: section %d does not exist", domain.ErrInvalidInput, f.sectionID)
	}
	tr, err := actorWithRole(ctx, tx, f.trainerID, domain.RoleTrainer)
	if err != nil {
		return f, err
	}
	if tr == nil {
		return f, fmt.Errorf("%w: trainer %d does not exist", domain.ErrInvalidInput, f.trainerID)
	}
	return f, nil
}

func (s *ScheduleService) parse(in ScheduleInput) (scheduleFields, error) {
	var f scheduleFields
	var err error
	if f.sectionID, err = parseID("section_id", in.SectionID); err != nil {
		return f, err
	}
	if f.trainerID, err = parseID("trainer_id", in.TrainerID); err != nil {
		return f, err
	}
	if f.startsAt, err = ParseStart(in.Datetime, s.loc); err != nil {
		return f, err
	}
	d, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil || d <= 0 {
		return f, fmt.Errorf("%w: duration must be a positive number of minutes, got %q", domain.ErrInvalidInput, in.Duration)
	}
	f.duration = d
	return f, nil
}

// ParseStart parses a schedule start time in loc unless the value carries
// its own offset. The result is in UTC: start times are stored and ordered
// as UTC.
func ParseStart(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse datetime %q", domain.ErrInvalidInput, v)
}

func parseID(field, v string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, field, v)
	}
	return uint(n), nil
}
