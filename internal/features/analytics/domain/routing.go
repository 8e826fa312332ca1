package domain

import "sort"

// Objective is the ranking goal used by the routing recommender.
type Objective string

const (
	// ObjectiveOverall ranks by the weighted overall score.
	ObjectiveOverall Objective = "overall"
	// ObjectiveCOD ranks by reliability alone; cash on delivery cares most
	// about non-return and non-failure.
	ObjectiveCOD Objective = "cod"
	// ObjectivePrepaid ranks by speed alone.
	ObjectivePrepaid Objective = "prepaid"
)

const maxAlternates = 2

// Recommendation names the best carrier and up to two alternates for one
// routing objective.
type Recommendation struct {
	Objective   Objective `json:"objective"`
	BestCarrier string    `json:"best_carrier"`
	Alternates  []string  `json:"alternates"`
}

// RecommendRouting ranks the fleet for each objective. All sorts are
// deterministic and stable: ties fall back to carrier id, and carriers with
// an absent score for the objective's metric sort last, never first. An
// empty fleet yields an empty map.
func RecommendRouting(scores map[string]CarrierScore) map[Objective]Recommendation {
	if len(scores) == 0 {
		return map[Objective]Recommendation{}
	}

	ranked := make([]CarrierScore, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s)
	}

	out := make(map[Objective]Recommendation, 3)
	out[ObjectiveOverall] = recommend(ObjectiveOverall, rankBy(ranked, byOverall))
	out[ObjectiveCOD] = recommend(ObjectiveCOD, rankBy(ranked, byReliability))
	out[ObjectivePrepaid] = recommend(ObjectivePrepaid, rankBy(ranked, bySpeed))
	return out
}

func recommend(objective Objective, ranked []CarrierScore) Recommendation {
	rec := Recommendation{Objective: objective, BestCarrier: ranked[0].Carrier, Alternates: []string{}}
	for _, s := range ranked[1:] {
		if len(rec.Alternates) == maxAlternates {
			break
		}
		rec.Alternates = append(rec.Alternates, s.Carrier)
	}
	return rec
}

// rankBy returns a sorted copy; less reports whether a outranks b.
func rankBy(scores []CarrierScore, less func(a, b CarrierScore) bool) []CarrierScore {
	ranked := make([]CarrierScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	return ranked
}

func byOverall(a, b CarrierScore) bool {
	if a.OverallScore != b.OverallScore {
		return a.OverallScore > b.OverallScore
	}
	if a.ReliabilityScore != b.ReliabilityScore {
		return a.ReliabilityScore > b.ReliabilityScore
	}
	return a.Carrier < b.Carrier
}

func byReliability(a, b CarrierScore) bool {
	if a.ReliabilityScore != b.ReliabilityScore {
		return a.ReliabilityScore > b.ReliabilityScore
	}
	return a.Carrier < b.Carrier
}

func bySpeed(a, b CarrierScore) bool {
	switch {
	case a.SpeedScore == nil && b.SpeedScore == nil:
		return a.Carrier < b.Carrier
	case a.SpeedScore == nil:
		return false
	case b.SpeedScore == nil:
		return true
	case *a.SpeedScore != *b.SpeedScore:
		return *a.SpeedScore > *b.SpeedScore
	default:
		return a.Carrier < b.Carrier
	}
}
