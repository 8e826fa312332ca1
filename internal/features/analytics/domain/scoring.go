package domain

// Tier is a coarse qualitative bucket derived from the overall score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierPoor      Tier = "poor"
)

// MissingSubScorePolicy selects how the overall score handles an absent
// sub-score (a carrier with no delivery-time data yet has no speed score).
type MissingSubScorePolicy string

const (
	// ReweightProportionally spreads the missing weight across the present
	// sub-scores, preserving their relative importance.
	ReweightProportionally MissingSubScorePolicy = "reweight"
	// TreatMissingAsZero keeps the full weight vector and scores the
	// missing component as zero.
	TreatMissingAsZero MissingSubScorePolicy = "zero"
)

// ScoringConfig holds every constant of the scoring curve. It is passed by
// value and never mutated, so the scoring engine stays a pure function of
// its inputs.
type ScoringConfig struct {
	// SpeedTargetHours is the delivery duration that earns a speed score of 100.
	SpeedTargetHours float64
	// SpeedRangeHours is the span over which the speed score falls from 100 to 0.
	SpeedRangeHours float64
	// ReturnRatePenalty is the score cost of each return-rate percentage point.
	ReturnRatePenalty float64

	// SpeedWeight, ReliabilityWeight and ReturnRateWeight combine the
	// sub-scores into the overall score. They should sum to 1.
	SpeedWeight       float64
	ReliabilityWeight float64
	ReturnRateWeight  float64

	// MissingPolicy selects the overall-score behavior when a sub-score is absent.
	MissingPolicy MissingSubScorePolicy

	// ExcellentMin, GoodMin and AverageMin are the inclusive lower bounds of
	// the tiers; anything below AverageMin is poor.
	ExcellentMin float64
	GoodMin      float64
	AverageMin   float64
}

// DefaultScoringConfig returns the scoring constants used in production.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		SpeedTargetHours:  48,
		SpeedRangeHours:   96,
		ReturnRatePenalty: 5,
		SpeedWeight:       0.3,
		ReliabilityWeight: 0.5,
		ReturnRateWeight:  0.2,
		MissingPolicy:     ReweightProportionally,
		ExcellentMin:      85,
		GoodMin:           70,
		AverageMin:        50,
	}
}

// CarrierScore holds the normalized sub-scores and weighted overall score
// for one carrier. SpeedScore is nil when the carrier has no delivery-time
// data; such carriers are excluded from speed-based ranking rather than
// defaulted to either extreme.
type CarrierScore struct {
	Carrier          string   `json:"carrier"`
	SpeedScore       *float64 `json:"speed_score,omitempty"`
	ReliabilityScore float64  `json:"reliability_score"`
	ReturnRateScore  float64  `json:"return_rate_score"`
	OverallScore     float64  `json:"overall_score"`
	Tier             Tier     `json:"tier"`
}

// Score converts one carrier's metrics into a CarrierScore.
func (c ScoringConfig) Score(m CarrierMetrics) CarrierScore {
	score := CarrierScore{
		Carrier:          m.Carrier,
		ReliabilityScore: m.DeliverySuccessRate,
		ReturnRateScore:  clamp(100-m.ReturnRate*c.ReturnRatePenalty, 0, 100),
	}

	if m.AvgDeliveryTimeHours != nil {
		v := clamp(100-((*m.AvgDeliveryTimeHours-c.SpeedTargetHours)/c.SpeedRangeHours)*100, 0, 100)
		score.SpeedScore = &v
	}

	score.OverallScore = c.overall(score)
	score.Tier = c.tier(score.OverallScore)
	return score
}

// ScoreAll scores every carrier in the metrics set.
func (c ScoringConfig) ScoreAll(metrics map[string]CarrierMetrics) map[string]CarrierScore {
	out := make(map[string]CarrierScore, len(metrics))
	for carrier, m := range metrics {
		out[carrier] = c.Score(m)
	}
	return out
}

func (c ScoringConfig) overall(s CarrierScore) float64 {
	speed := 0.0
	speedWeight := c.SpeedWeight
	if s.SpeedScore != nil {
		speed = *s.SpeedScore
	} else if c.MissingPolicy == ReweightProportionally {
		speedWeight = 0
	}

	weighted := speedWeight*speed + c.ReliabilityWeight*s.ReliabilityScore + c.ReturnRateWeight*s.ReturnRateScore
	totalWeight := speedWeight + c.ReliabilityWeight + c.ReturnRateWeight
	if totalWeight == 0 {
		return 0
	}
	// With every sub-score present totalWeight is 1 and this is the plain
	// weighted sum; with an absent speed score under the reweight policy the
	// remaining weights are scaled back up to 1.
	if c.MissingPolicy == TreatMissingAsZero {
		return weighted
	}
	return weighted * (c.SpeedWeight + c.ReliabilityWeight + c.ReturnRateWeight) / totalWeight
}

func (c ScoringConfig) tier(score float64) Tier {
	switch {
	case score >= c.ExcellentMin:
		return TierExcellent
	case score >= c.GoodMin:
		return TierGood
	case score >= c.AverageMin:
		return TierAverage
	default:
		return TierPoor
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
