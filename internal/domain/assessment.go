package domain

// ScoredBy identifies which strategy produced a RiskAssessment.
type ScoredBy string

const (
	ScoredByRemote    ScoredBy = "remote"
	ScoredByHeuristic ScoredBy = "heuristic"
)

// RiskAssessment is the scorer's output for one user and window.
type RiskAssessment struct {
	ID          AssessmentID
	UserID      UserID
	WindowStart Timestamp
	WindowEnd   Timestamp

	RiskLevel  RiskLevel
	RiskScore  float64 // [0,1]
	Confidence float64 // [0,1]
	// Probabilities maps each risk level to its probability; the four
	// values sum to ~1.
	Probabilities map[RiskLevel]float64

	// SourceFeatures is the vector the score was derived from.
	SourceFeatures FeatureVector
	ScoredBy       ScoredBy
	CreatedAt      Timestamp
}

// Recommendation is one actionable suggestion derived from the features and
// the assessed risk level.
type Recommendation struct {
	Priority    Priority
	Category    Category
	Title       string
	Description string
	ActionItems []string
	Resources   []string
}
