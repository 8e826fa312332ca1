package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPipeline_Idempotent verifies that running the full metrics -> scores ->
// routing pipeline twice on the same snapshot yields identical outputs.
func TestPipeline_Idempotent(t *testing.T) {
	shipments := []Shipment{
		deliveredShipment("s1", "aramex", 44),
		deliveredShipment("s2", "aramex", 52),
		returnedShipment("s3", "smsa"),
		deliveredShipment("s4", "smsa", 90),
		failedShipment("s5", "dhl", "address not found"),
		inProgressShipment("s6", "dhl"),
	}
	cfg := DefaultScoringConfig()

	run := func() (map[string]CarrierScore, map[Objective]Recommendation) {
		metrics := ComputeCarrierMetrics(shipments)
		scores := cfg.ScoreAll(metrics)
		return scores, RecommendRouting(scores)
	}

	scores1, recs1 := run()
	scores2, recs2 := run()

	assert.Equal(t, scores1, scores2)
	assert.Equal(t, recs1, recs2)
}
