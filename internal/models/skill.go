package models

import "time"

// Skill is owned by exactly one user. The ID is a random UUID string
// generated at add time; it is the join key for the catalog view and for
// requests, so it must be globally unique, not just unique per user.
type Skill struct {
	ID       string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   string     `gorm:"not null;index" json:"user_id"`
	Name     string     `gorm:"not null" json:"name"`
	Category string     `gorm:"not null;index" json:"category"`
	Level    SkillLevel `gorm:"type:varchar(20);not null" json:"level"`
	AddedAt  time.Time  `gorm:"autoCreateTime" json:"added_at"`
}
