package models

// Request is one learner's interest in one mentor's skill.
//
// Skill, mentor and learner names are snapshots taken at creation time and
// are intentionally not kept in sync with later profile edits.
//
// The partial unique index enforces "at most one pending request per
// (skill, learner)" atomically at the storage layer, so a concurrent
// duplicate create fails on insert instead of slipping past a read-then-write
// check.
type Request struct {
	BaseModel
	SkillID   string `gorm:"not null;uniqueIndex:idx_requests_pending_once,where:status = 'pending'" json:"skill_id"`
	SkillName string `gorm:"not null" json:"skill_name"`

	MentorID   string `gorm:"not null;index" json:"mentor_id"`
	MentorName string `gorm:"not null" json:"mentor_name"`

	LearnerID   string `gorm:"not null;index;uniqueIndex:idx_requests_pending_once,where:status = 'pending'" json:"learner_id"`
	LearnerName string `gorm:"not null" json:"learner_name"`

	Status RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
