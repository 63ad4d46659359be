package domain

import (
	"fmt"
	"math"
)

// FeatureVector is the canonical numeric summary of a user's behavioral
// signals over a time window. The shape is fixed: every field is always
// present, and a zero value means "no signal", never "missing key".
type FeatureVector struct {
	// Time-based
	WorkHours        float64 `json:"workHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	WeekendWork      float64 `json:"weekendWork"`
	EarlyMorningWork float64 `json:"earlyMorningWork"`
	LateNightWork    float64 `json:"lateNightWork"`

	// Meeting-based
	MeetingCount       float64 `json:"meetingCount"`
	MeetingDuration    float64 `json:"meetingDuration"`
	BackToBackMeetings float64 `json:"backToBackMeetings"`
	VirtualMeetings    float64 `json:"virtualMeetings"`

	// Communication-based
	EmailCount       float64 `json:"emailCount"`
	AvgEmailLength   float64 `json:"avgEmailLength"`
	StressEmailCount float64 `json:"stressEmailCount"`
	UrgentEmailCount float64 `json:"urgentEmailCount"`
	ResponseTime     float64 `json:"responseTime"`

	// Workload-derived
	TotalEvents      float64 `json:"totalEvents"`
	AvgEventDuration float64 `json:"avgEventDuration"`
	FocusTimeRatio   float64 `json:"focusTimeRatio"`
	BreakTimeRatio   float64 `json:"breakTimeRatio"`
	StressLevel      float64 `json:"stressLevel"`
	WorkloadLevel    float64 `json:"workloadLevel"`
	WorkLifeBalance  float64 `json:"workLifeBalance"`

	// Self-reported
	SocialInteraction float64 `json:"socialInteraction"`
	TeamCollaboration float64 `json:"teamCollaboration"`
	SleepQuality      float64 `json:"sleepQuality"`
	ExerciseFrequency float64 `json:"exerciseFrequency"`
	NutritionQuality  float64 `json:"nutritionQuality"`
}

// SelfReported carries the caller-supplied lifestyle signals that cannot be
// derived from calendar or email data.
type SelfReported struct {
	SleepQuality      float64 `json:"sleep_quality"`
	ExerciseFrequency float64 `json:"exercise_frequency"`
	NutritionQuality  float64 `json:"nutrition_quality"`
	SocialInteraction float64 `json:"social_interaction"`
	TeamCollaboration float64 `json:"team_collaboration"`
}

// ratioFields are bounded to [0,1]; every other field is only required to be
// a finite non-negative number.
var ratioFields = map[string]bool{
	"focusTimeRatio":  true,
	"breakTimeRatio":  true,
	"workLifeBalance": true,
}

// AsMap flattens the vector into the wire shape consumed by the scoring
// service: one flat object keyed by feature name.
func (f FeatureVector) AsMap() map[string]float64 {
	return map[string]float64{
		"workHours":          f.WorkHours,
		"overtimeHours":      f.OvertimeHours,
		"weekendWork":        f.WeekendWork,
		"earlyMorningWork":   f.EarlyMorningWork,
		"lateNightWork":      f.LateNightWork,
		"meetingCount":       f.MeetingCount,
		"meetingDuration":    f.MeetingDuration,
		"backToBackMeetings": f.BackToBackMeetings,
		"virtualMeetings":    f.VirtualMeetings,
		"emailCount":         f.EmailCount,
		"avgEmailLength":     f.AvgEmailLength,
		"stressEmailCount":   f.StressEmailCount,
		"urgentEmailCount":   f.UrgentEmailCount,
		"responseTime":       f.ResponseTime,
		"totalEvents":        f.TotalEvents,
		"avgEventDuration":   f.AvgEventDuration,
		"focusTimeRatio":     f.FocusTimeRatio,
		"breakTimeRatio":     f.BreakTimeRatio,
		"stressLevel":        f.StressLevel,
		"workloadLevel":      f.WorkloadLevel,
		"workLifeBalance":    f.WorkLifeBalance,
		"socialInteraction":  f.SocialInteraction,
		"teamCollaboration":  f.TeamCollaboration,
		"sleepQuality":       f.SleepQuality,
		"exerciseFrequency":  f.ExerciseFrequency,
		"nutritionQuality":   f.NutritionQuality,
	}
}

// Validate checks that every field is a finite non-negative number and that
// ratio fields stay inside [0,1]. A failure here means a bug in the
// aggregation code, not bad input data, so callers should treat it as fatal.
func (f FeatureVector) Validate() error {
	for name, v := range f.AsMap() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("feature %q is not finite: %v", name, v)
		}
		if v < 0 {
			return fmt.Errorf("feature %q is negative: %v", name, v)
		}
		if ratioFields[name] && v > 1 {
			return fmt.Errorf("feature %q is a ratio but exceeds 1: %v", name, v)
		}
	}
	return nil
}
