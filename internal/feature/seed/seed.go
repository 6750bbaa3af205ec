// Package seed fills an empty database with the club's starting data:
// staff and client accounts, the section price list and a March 2025
// schedule.
package seed

import (
	"context"
	"fmt"
	"time"

	"fitclub-admin/internal/domain"
	"fitclub-admin/pkg/utils"
)

type account struct {
	username, password, phone string
	role                      domain.Role
}

var accounts = []account{
	{"admin", "admin123", "+79991112233", domain.RoleAdmin},
	{"manager", "manager123", "+79994445566", domain.RoleManager},
	{"trainer1", "trainer123", "+79997778899", domain.RoleTrainer},
	{"trainer2", "trainer123", "+79998887766", domain.RoleTrainer},
	{"client1", "client123", "+79993334455", domain.RoleClient},
	{"client2", "client123", "+79992223344", domain.RoleClient},
	{"client3", "client123", "+79991112244", domain.RoleClient},
	{"client4", "client123", "+79994445577", domain.RoleClient},
	{"client5", "client123", "+79995556688", domain.RoleClient},
	{"client6", "client123", "+79996667799", domain.RoleClient},
	{"client7", "client123", "+79997778800", domain.RoleClient},
	{"client8", "client123", "+79998889911", domain.RoleClient},
	{"client9", "client123", "+79999990022", domain.RoleClient},
	{"client10", "client123", "+79991112255", domain.RoleClient},
}

var sections = []domain.Section{
	{Name: "Йога", Price: 1500, Capacity: 15},
	{Name: "Фитнес", Price: 2000, Capacity: 20},
	{Name: "Плавание", Price: 2500, Capacity: 10},
	{Name: "Силовые тренировки", Price: 1800, Capacity: 12},
	{Name: "Аэробика", Price: 1600, Capacity: 25},
	{Name: "Танцы", Price: 1700, Capacity: 18},
	{Name: "Пилатес", Price: 1900, Capacity: 15},
	{Name: "Кроссфит", Price: 2200, Capacity: 10},
	{Name: "Спортивные игры", Price: 2000, Capacity: 30},
	{Name: "Бокс", Price: 2100, Capacity: 12},
	{Name: "Кикбоксинг", Price: 2300, Capacity: 10},
	{Name: "Тай-чи", Price: 1600, Capacity: 15},
}

// slot refers to sections by 1-based position and to trainers by username.
type slot struct {
	section  int
	trainer  string
	day      int
	hour     int
	duration int
}

var slots = []slot{
	{1, "trainer1", 1, 18, 60}, {2, "trainer1", 2, 19, 90},
	{3, "trainer2", 3, 10, 45}, {4, "trainer2", 4, 12, 60},
	{5, "trainer1", 5, 14, 30}, {6, "trainer2", 6, 16, 75},
	{7, "trainer1", 7, 9, 60}, {8, "trainer2", 8, 11, 90},
	{9, "trainer1", 9, 13, 60}, {10, "trainer2", 10, 15, 45},
	{11, "trainer1", 11, 17, 30}, {4, "trainer2", 12, 19, 60},
	{5, "trainer1", 13, 20, 60}, {6, "trainer2", 14, 21, 90},
	{7, "trainer1", 15, 22, 45}, {8, "trainer2", 16, 10, 60},
	{9, "trainer1", 17, 11, 30}, {10, "trainer2", 18, 12, 60},
	{11, "trainer1", 19, 13, 45}, {12, "trainer2", 20, 14, 90},
}

type Result struct {
	Skipped   bool
	Actors    int
	Sections  int
	Schedules int
}

// Run seeds only when there are no users yet.
func Run(ctx context.Context, store domain.Store, loc *time.Location) (Result, error) {
	if loc == nil {
		loc = time.Local
	}
	n, err := store.Actors().Count(ctx)
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		return Result{Skipped: true}, nil
	}

	actors := make([]domain.Actor, 0, len(accounts))
	for _, a := range accounts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			return Result{}, err
		}
		actors = append(actors, domain.Actor{Username: a.username, PasswordHash: hash, Role: a.role, Phone: a.phone})
	}

	var res Result
	err = store.Atomic(ctx, func(tx domain.Store) error {
		trainers := map[string]uint{}
		for i := range actors {
			if err := tx.Actors().Create(ctx, &actors[i]); err != nil {
				return err
			}
			if actors[i].Role == domain.RoleTrainer {
				trainers[actors[i].Username] = actors[i].ID
			}
		}
		secIDs := make([]uint, 0, len(sections))
		for _, sec := range sections {
			sec := sec
			if err := tx.Sections().Create(ctx, &sec); err != nil {
				return err
			}
			secIDs = append(secIDs, sec.ID)
		}
		for _, sl := range slots {
			e := &domain.Schedule{
				SectionID: secIDs[sl.section-1],
				TrainerID: trainers[sl.trainer],
				StartsAt:  time.Date(2025, time.March, sl.day, sl.hour, 0, 0, 0, loc).UTC(),
				Duration:  sl.duration,
			}
			if err := tx.Schedules().Create(ctx, e); err != nil {
				return fmt.Errorf("seed schedule: %w", err)
			}
		}
		res = Result{Actors: len(actors), Sections: len(secIDs), Schedules: len(slots)}
		return nil
	})
	return res, err
}
