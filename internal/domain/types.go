package domain

import "time"

type UserID string
type AssessmentID string

type EventType string

const (
	EventMeeting   EventType = "meeting"
	EventFocusTime EventType = "focus_time"
	EventBreak     EventType = "break"
	EventOvertime  EventType = "overtime"
	EventPersonal  EventType = "personal"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels lists every level in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// RiskLevelForScore buckets a score in [0,1] into a level.
// Bucket edges are half-open, so every score lands in exactly one level.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score < 0.3:
		return RiskLow
	case score < 0.6:
		return RiskMedium
	case score < 0.8:
		return RiskHigh
	default:
		return RiskCritical
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Category string

const (
	CategoryWorkload  Category = "workload"
	CategoryStress    Category = "stress"
	CategoryLifestyle Category = "lifestyle"
	CategorySocial    Category = "social"
	CategoryHealth    Category = "health"
)

type Timestamp = time.Time
