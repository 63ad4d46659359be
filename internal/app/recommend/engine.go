package recommend

import (
	"github.com/dmonzon/beacon/internal/domain"
)

// Thresholds the rules fire on. Stress and workload levels are on the 1-5
// event scale; sleep, exercise and social interaction are on the 0-10
// self-reported scale.
const (
	workloadThreshold  = 3
	stressThreshold    = 3
	sleepThreshold     = 4
	exerciseThreshold  = 3
	balanceThreshold   = 0.5
	isolationThreshold = 3
)

// Engine derives ordered, actionable recommendations from a feature vector
// and the assessed risk level. Rules are evaluated in a fixed order and are
// independent of each other; the output order is the evaluation order, with
// no re-sorting by priority.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Recommend never returns an empty list: when no rule fires it emits a
// single "maintain current practices" entry.
func (e *Engine) Recommend(features domain.FeatureVector, riskLevel domain.RiskLevel) []domain.Recommendation {
	var out []domain.Recommendation

	if features.WorkloadLevel > workloadThreshold {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryWorkload,
			Title:       "Reduce your current workload",
			Description: "Your reported workload is consistently high. Shedding or deferring tasks now lowers the risk of sustained overload.",
			ActionItems: []string{
				"List your active tasks and delegate at least one this week",
				"Renegotiate the deadlines that are driving the overload",
				"Block two hours of uninterrupted focus time per day",
			},
		})
	}

	if features.StressLevel > stressThreshold {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryStress,
			Title:       "Schedule recovery breaks",
			Description: "Your stress signals are elevated. Short, regular recovery breaks are the most reliable way to bring them down.",
			ActionItems: []string{
				"Take a 10-minute break away from your screen every 90 minutes",
				"End the work day at a fixed time for the next two weeks",
				"Try a short breathing or stretching routine between meetings",
			},
		})
	}

	if features.SleepQuality < sleepThreshold || features.ExerciseFrequency < exerciseThreshold {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    domain.CategoryHealth,
			Title:       "Strengthen your sleep and exercise routine",
			Description: "Sleep and physical activity are below a sustainable baseline, which amplifies every other risk factor.",
			ActionItems: []string{
				"Set a consistent bedtime and avoid screens for the last hour",
				"Plan three 30-minute exercise sessions this week",
			},
		})
	}

	if features.WorkLifeBalance < balanceThreshold {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    domain.CategoryWorkload,
			Title:       "Restore work-hour boundaries",
			Description: "Most of your logged work time falls outside regular hours. Moving work back into the standard day protects recovery time.",
			ActionItems: []string{
				"Decline non-critical meetings outside 9:00-18:00",
				"Keep at least one weekend day completely work-free",
			},
		})
	}

	if features.SocialInteraction < isolationThreshold {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityLow,
			Category:    domain.CategorySocial,
			Title:       "Reconnect with your team",
			Description: "Low social interaction is an early isolation signal. Small, regular contact points counteract it.",
			ActionItems: []string{
				"Schedule one informal coffee chat with a colleague this week",
				"Join one team activity outside your direct project work",
			},
		})
	}

	if riskLevel == domain.RiskHigh || riskLevel == domain.RiskCritical {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryStress,
			Title:       "Talk to someone about your current load",
			Description: "Your overall risk level is elevated. This is the point where outside support makes the biggest difference.",
			ActionItems: []string{
				"Book a conversation with your manager about workload this week",
				"Consider a session with your employee assistance program",
			},
			Resources: []string{
				"https://www.who.int/news-room/questions-and-answers/item/mental-health-in-the-workplace",
			},
		})
	}

	if len(out) == 0 {
		out = append(out, domain.Recommendation{
			Priority:    domain.PriorityLow,
			Category:    domain.CategoryLifestyle,
			Title:       "Maintain current practices",
			Description: "No elevated risk factors were detected in this window. Keep the habits that are working.",
			ActionItems: []string{
				"Keep your current balance of focus time, breaks and meetings",
				"Re-assess after your next busy period",
			},
		})
	}

	return out
}
