package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carrierMetrics(carrier string, total int, deliveryRate, returnRate float64, avgDelivery *float64) CarrierMetrics {
	return CarrierMetrics{
		Carrier:              carrier,
		TotalShipments:       total,
		DeliverySuccessRate:  deliveryRate,
		ReturnRate:           returnRate,
		AvgDeliveryTimeHours: avgDelivery,
	}
}

// TestDetectInsights_DeliveryStrengthAndWeakness verifies the +-10 point
// margin against the fleet mean delivery rate.
func TestDetectInsights_DeliveryStrengthAndWeakness(t *testing.T) {
	// Fleet mean delivery rate: (95 + 60 + 70) / 3 = 75.
	metrics := map[string]CarrierMetrics{
		"aramex": carrierMetrics("aramex", 10, 95, 0, nil),
		"dhl":    carrierMetrics("dhl", 10, 60, 0, nil),
		"smsa":   carrierMetrics("smsa", 10, 70, 0, nil),
	}

	insights := DetectInsights(metrics)

	require.Len(t, insights, 2)
	assert.Equal(t, Insight{"aramex", InsightStrength, MetricDeliverySuccessRate, 95, 75}, insights[0])
	assert.Equal(t, Insight{"dhl", InsightWeakness, MetricDeliverySuccessRate, 60, 75}, insights[1])
}

// TestDetectInsights_ReturnWarning verifies the +5 point return-rate margin.
func TestDetectInsights_ReturnWarning(t *testing.T) {
	// Fleet mean return rate: (12 + 2 + 4) / 3 = 6.
	metrics := map[string]CarrierMetrics{
		"aramex": carrierMetrics("aramex", 10, 80, 12, nil),
		"dhl":    carrierMetrics("dhl", 10, 80, 2, nil),
		"smsa":   carrierMetrics("smsa", 10, 80, 4, nil),
	}

	insights := DetectInsights(metrics)

	require.Len(t, insights, 1)
	assert.Equal(t, Insight{"aramex", InsightWarning, MetricReturnRate, 12, 6}, insights[0])
}

// TestDetectInsights_SpeedMargins verifies the asymmetric -12h/+24h speed margins.
func TestDetectInsights_SpeedMargins(t *testing.T) {
	// Fleet mean delivery time: (40 + 60 + 110) / 3 = 70.
	metrics := map[string]CarrierMetrics{
		"aramex": carrierMetrics("aramex", 10, 80, 0, hoursPtr(40)),
		"smsa":   carrierMetrics("smsa", 10, 80, 0, hoursPtr(60)),
		"dhl":    carrierMetrics("dhl", 10, 80, 0, hoursPtr(110)),
	}

	insights := DetectInsights(metrics)

	require.Len(t, insights, 2)
	assert.Equal(t, Insight{"aramex", InsightStrength, MetricAvgDeliveryTimeHours, 40, 70}, insights[0])
	assert.Equal(t, Insight{"dhl", InsightWeakness, MetricAvgDeliveryTimeHours, 110, 70}, insights[1])
}

// TestDetectInsights_ZeroShipmentCarrierExcluded verifies an idle carrier
// neither skews the fleet mean nor emits insights.
func TestDetectInsights_ZeroShipmentCarrierExcluded(t *testing.T) {
	metrics := map[string]CarrierMetrics{
		"aramex": carrierMetrics("aramex", 10, 95, 0, nil),
		"dhl":    carrierMetrics("dhl", 10, 60, 0, nil),
		"newco":  carrierMetrics("newco", 0, 0, 0, nil),
	}

	insights := DetectInsights(metrics)

	// Fleet mean is (95+60)/2 = 77.5; aramex strength, dhl weakness, newco silent.
	require.Len(t, insights, 2)
	for _, in := range insights {
		assert.NotEqual(t, "newco", in.Carrier)
		assert.InDelta(t, 77.5, in.FleetAverage, 1e-9)
	}
}

// TestDetectInsights_CarrierWithoutSpeedData verifies a carrier lacking
// delivery-time data emits no speed insight but still gets rate insights.
func TestDetectInsights_CarrierWithoutSpeedData(t *testing.T) {
	metrics := map[string]CarrierMetrics{
		"aramex": carrierMetrics("aramex", 10, 95, 0, hoursPtr(40)),
		"dhl":    carrierMetrics("dhl", 10, 60, 0, nil),
	}

	insights := DetectInsights(metrics)

	for _, in := range insights {
		if in.Carrier == "dhl" {
			assert.NotEqual(t, MetricAvgDeliveryTimeHours, in.Metric)
		}
	}
}

// TestDetectInsights_EmptyFleet verifies no insights for an empty snapshot.
func TestDetectInsights_EmptyFleet(t *testing.T) {
	assert.Empty(t, DetectInsights(nil))
	assert.Empty(t, DetectInsights(map[string]CarrierMetrics{}))
}

// TestDetectInsights_DeterministicOrder verifies stable sorted output.
func TestDetectInsights_DeterministicOrder(t *testing.T) {
	metrics := map[string]CarrierMetrics{
		"smsa":   carrierMetrics("smsa", 10, 95, 12, nil),
		"aramex": carrierMetrics("aramex", 10, 40, 0, nil),
		"dhl":    carrierMetrics("dhl", 10, 80, 0, nil),
	}

	first := DetectInsights(metrics)
	second := DetectInsights(metrics)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].Carrier, first[i].Carrier)
	}
}
