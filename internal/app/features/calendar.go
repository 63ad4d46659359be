package features

import (
	"context"
	"time"

	"github.com/dmonzon/beacon/internal/domain"
	"github.com/dmonzon/beacon/internal/observability"
)

// Work-hours window and adjacency threshold used by the calendar pass.
const (
	workDayStartHour = 9
	workDayEndHour   = 18
	earlyMorningHour = 7
	lateNightHour    = 22

	backToBackGap = 15 * time.Minute
)

// CalendarFeatures is the partial vector produced from calendar events.
type CalendarFeatures struct {
	WorkHours        float64
	OvertimeHours    float64
	WeekendWork      float64
	EarlyMorningWork float64
	LateNightWork    float64

	MeetingCount       float64
	MeetingDuration    float64
	BackToBackMeetings float64
	VirtualMeetings    float64

	TotalEvents      float64
	AvgEventDuration float64
	FocusTimeRatio   float64
	BreakTimeRatio   float64
	StressLevel      float64
	WorkloadLevel    float64
	WorkLifeBalance  float64
}

// CalendarAggregator reduces a user's calendar events into time-based and
// meeting-based features in a single linear pass.
type CalendarAggregator struct{}

func NewCalendarAggregator() *CalendarAggregator {
	return &CalendarAggregator{}
}

// Aggregate expects events sorted ascending by StartTime (the event source's
// responsibility) and tolerates an empty slice, returning all-zero features.
// Events with EndTime <= StartTime are skipped, never fatal.
func (a *CalendarAggregator) Aggregate(
	ctx context.Context,
	events []domain.CalendarEvent,
	windowStart, windowEnd time.Time,
) CalendarFeatures {
	log := observability.LoggerFromContext(ctx).With(
		"window_start", windowStart,
		"window_end", windowEnd,
	)

	var out CalendarFeatures

	var (
		totalDuration float64
		focusTime     float64
		breakTime     float64

		stressSum   float64
		stressCount int
		workSum     float64
		workCount   int

		count   int
		prevEnd time.Time
		hasPrev bool
	)

	for _, ev := range events {
		if ev.Malformed() {
			log.Warn("skipping malformed calendar event",
				"start", ev.StartTime, "end", ev.EndTime)
			continue
		}

		dur := ev.Duration()
		totalDuration += dur
		count++

		startHour := ev.StartTime.Hour()
		endHour := ev.EndTime.Hour()

		// An event straddling the end of the work day counts fully as
		// overtime, it is not split.
		switch {
		case startHour >= workDayStartHour && startHour < workDayEndHour &&
			endHour >= workDayStartHour && endHour < workDayEndHour:
			out.WorkHours += dur
		case startHour >= workDayEndHour || endHour >= workDayEndHour:
			out.OvertimeHours += dur
		}

		// Weekend/early/late buckets overlap with the ones above on purpose.
		if wd := ev.StartTime.Weekday(); wd == time.Saturday || wd == time.Sunday {
			out.WeekendWork += dur
		}
		if startHour < earlyMorningHour {
			out.EarlyMorningWork += dur
		}
		if endHour > lateNightHour {
			out.LateNightWork += dur
		}

		if ev.Type == domain.EventMeeting {
			out.MeetingCount++
			out.MeetingDuration += dur
			if ev.IsVirtual {
				out.VirtualMeetings++
			}
			// Adjacency is against the previous event in the sequence,
			// whatever its type, not the previous meeting.
			if hasPrev && ev.StartTime.Sub(prevEnd) <= backToBackGap {
				out.BackToBackMeetings++
			}
		}

		switch ev.Type {
		case domain.EventFocusTime:
			focusTime += dur
		case domain.EventBreak:
			breakTime += dur
		}

		if ev.StressLevel != nil {
			stressSum += float64(*ev.StressLevel)
			stressCount++
		} else {
			log.Debug("event carries no stress level", "start", ev.StartTime)
		}
		if ev.Workload != nil {
			workSum += float64(*ev.Workload)
			workCount++
		}

		prevEnd = ev.EndTime
		hasPrev = true
	}

	out.TotalEvents = float64(count)
	if count > 0 {
		out.AvgEventDuration = totalDuration / float64(count)
	}
	if totalDuration > 0 {
		out.FocusTimeRatio = focusTime / totalDuration
		out.BreakTimeRatio = breakTime / totalDuration
	}
	if stressCount > 0 {
		out.StressLevel = stressSum / float64(stressCount)
	}
	if workCount > 0 {
		out.WorkloadLevel = workSum / float64(workCount)
	}

	// No measured work time means no detected imbalance.
	measured := out.WorkHours + out.OvertimeHours + out.WeekendWork
	if measured > 0 {
		out.WorkLifeBalance = out.WorkHours / measured
	} else {
		out.WorkLifeBalance = 1
	}

	return out
}
