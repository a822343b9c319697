package model

import "time"

const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

const DefaultCategory = "general"

// DateLayout is the canonical calendar-day form. Lexicographic order on
// values in this form matches chronological order.
const DateLayout = "2006-01-02"

// Task is a single daily task owned by exactly one user. The gorm tags
// mirror the defaults and bounds, but the service layer validates every
// write explicitly; the schema is never the enforcement point.
type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"not null;index:idx_owner_date,priority:1" json:"owner_id"`
	Date      string    `gorm:"size:10;not null;index:idx_owner_date,priority:2" json:"date"`
	Title     string    `gorm:"not null" json:"title"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	Category  string    `gorm:"not null;default:general" json:"category"`
	Priority  int       `gorm:"not null;default:1" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
