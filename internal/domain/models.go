package domain

import "time"

const DefaultSectionCapacity = 10

// Actor is any person record: staff, trainer or client.
type Actor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;index" json:"role"`
	Phone        string    `gorm:"size:20" json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Actor) TableName() string { return "users" }

type Section struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Capacity int     `gorm:"not null;default:10" json:"capacity"`
}

// Schedule is one scheduled occurrence of a section led by a trainer.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SectionID uint      `gorm:"not null;index" json:"section_id"`
	TrainerID uint      `gorm:"not null;index" json:"trainer_id"`
	StartsAt  time.Time `gorm:"not null;index" json:"datetime"`
	Duration  int       `gorm:"not null" json:"duration"` // minutes

	Section *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Trainer *Actor   `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (s Schedule) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.Duration) * time.Minute)
}

type Registration struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientID     uint      `gorm:"not null;uniqueIndex:idx_registration_client_schedule" json:"client_id"`
	ScheduleID   uint      `gorm:"not null;uniqueIndex:idx_registration_client_schedule;index" json:"schedule_id"`
	RegisteredAt time.Time `gorm:"not null" json:"registration_date"`

	Client   *Actor    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

// Payment is recorded, never processed. It is not linked to what it pays for.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaidAt      time.Time `gorm:"not null" json:"payment_date"`
	Description string    `gorm:"size:200" json:"description"`

	Client *Actor `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// SectionStat is one analytics row. EstimatedIncome is registrations times
// list price, not recorded revenue.
type SectionStat struct {
	SectionID         uint    `json:"section_id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	RegistrationCount int64   `json:"registration_count"`
	EstimatedIncome   float64 `json:"estimated_income"`
}

// Models lists every table in migration order.
func Models() []any {
	return []any{&Actor{}, &Section{}, &Schedule{}, &Registration{}, &Payment{}}
}
