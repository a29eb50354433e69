package models

// DividendInsight is the AI-generated qualitative assessment of the whole
// portfolio. It is ephemeral: regenerated whenever the holdings set changes
// size or the language changes, cleared when the portfolio empties, and
// never persisted.
type DividendInsight struct {
	Summary         string `json:"summary"`
	SafetyScore     int    `json:"safety_score"` // 1-10, 10 = safest
	GrowthPotential string `json:"growth_potential"`
}

// ClampSafetyScore forces a score into the intended [1,10] range. The model
// is asked for that range but is not trusted to honor it.
func ClampSafetyScore(score float64) int {
	s := int(score + 0.5)
	if s < 1 {
		return 1
	}
	if s > 10 {
		return 10
	}
	return s
}
