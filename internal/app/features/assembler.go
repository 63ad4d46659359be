package features

import (
	"fmt"

	"github.com/dmonzon/beacon/internal/domain"
)

// Assembler merges the two aggregators' partial outputs with the
// self-reported signals into one canonical FeatureVector.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds and validates the full vector. A validation failure means
// the aggregation code produced an out-of-contract value, so it is returned
// loudly rather than defaulted away.
func (a *Assembler) Assemble(
	cal CalendarFeatures,
	comm CommunicationFeatures,
	self domain.SelfReported,
) (domain.FeatureVector, error) {
	fv := domain.FeatureVector{
		WorkHours:        cal.WorkHours,
		OvertimeHours:    cal.OvertimeHours,
		WeekendWork:      cal.WeekendWork,
		EarlyMorningWork: cal.EarlyMorningWork,
		LateNightWork:    cal.LateNightWork,

		MeetingCount:       cal.MeetingCount,
		MeetingDuration:    cal.MeetingDuration,
		BackToBackMeetings: cal.BackToBackMeetings,
		VirtualMeetings:    cal.VirtualMeetings,

		EmailCount:       comm.EmailCount,
		AvgEmailLength:   comm.AvgEmailLength,
		StressEmailCount: comm.StressEmailCount,
		UrgentEmailCount: comm.UrgentEmailCount,
		ResponseTime:     comm.ResponseTime,

		TotalEvents:      cal.TotalEvents,
		AvgEventDuration: cal.AvgEventDuration,
		FocusTimeRatio:   cal.FocusTimeRatio,
		BreakTimeRatio:   cal.BreakTimeRatio,
		StressLevel:      cal.StressLevel,
		WorkloadLevel:    cal.WorkloadLevel,
		WorkLifeBalance:  cal.WorkLifeBalance,

		SocialInteraction: self.SocialInteraction,
		TeamCollaboration: self.TeamCollaboration,
		SleepQuality:      self.SleepQuality,
		ExerciseFrequency: self.ExerciseFrequency,
		NutritionQuality:  self.NutritionQuality,
	}

	if err := fv.Validate(); err != nil {
		return domain.FeatureVector{}, fmt.Errorf("assembling feature vector: %w", err)
	}
	return fv, nil
}
