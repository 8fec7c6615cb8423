package models

type UserRole string
type RequestStatus string
type SkillLevel string

const (
	UserRoleLearner UserRole = "learner"
	UserRoleMentor  UserRole = "mentor"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"

	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
)

// ValidRequestDecision reports whether a submitted status is a legal
// terminal decision. Pending is not a decision.
func ValidRequestDecision(s RequestStatus) bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// ValidSkillLevel checks the level against the closed set.
func ValidSkillLevel(l SkillLevel) bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return true
	}
	return false
}
