package domain

import "sort"

// InsightKind classifies an insight.
type InsightKind string

const (
	InsightStrength InsightKind = "strength"
	InsightWeakness InsightKind = "weakness"
	InsightWarning  InsightKind = "warning"
)

// Metric names used in insights.
const (
	MetricDeliverySuccessRate  = "delivery_success_rate"
	MetricReturnRate           = "return_rate"
	MetricAvgDeliveryTimeHours = "avg_delivery_time_hours"
)

// Thresholds for flagging a carrier against the fleet mean. All are
// absolute differences.
const (
	deliveryRateMargin  = 10.0
	returnRateMargin    = 5.0
	speedStrengthMargin = 12.0
	speedWeaknessMargin = 24.0
)

// Insight flags one carrier metric as notably better or worse than the
// fleet average.
type Insight struct {
	Carrier      string      `json:"carrier"`
	Kind         InsightKind `json:"kind"`
	Metric       string      `json:"metric"`
	CarrierValue float64     `json:"carrier_value"`
	FleetAverage float64     `json:"fleet_average"`
}

// DetectInsights compares every carrier against the fleet average and
// returns the flagged metrics. Fleet means are computed over carriers with
// at least one shipment in the window; a carrier with no shipments emits no
// insights for metrics it lacks. Output order is deterministic: by carrier,
// then metric, then kind.
func DetectInsights(metrics map[string]CarrierMetrics) []Insight {
	var deliveryRates, returnRates, deliveryTimes []float64
	for _, m := range metrics {
		if m.TotalShipments == 0 {
			continue
		}
		deliveryRates = append(deliveryRates, m.DeliverySuccessRate)
		returnRates = append(returnRates, m.ReturnRate)
		if m.AvgDeliveryTimeHours != nil {
			deliveryTimes = append(deliveryTimes, *m.AvgDeliveryTimeHours)
		}
	}

	fleetDeliveryRate := mean(deliveryRates)
	fleetReturnRate := mean(returnRates)
	fleetDeliveryTime := mean(deliveryTimes)

	var insights []Insight
	for _, m := range metrics {
		if m.TotalShipments == 0 {
			continue
		}

		if fleetDeliveryRate != nil {
			switch {
			case m.DeliverySuccessRate > *fleetDeliveryRate+deliveryRateMargin:
				insights = append(insights, Insight{m.Carrier, InsightStrength, MetricDeliverySuccessRate, m.DeliverySuccessRate, *fleetDeliveryRate})
			case m.DeliverySuccessRate < *fleetDeliveryRate-deliveryRateMargin:
				insights = append(insights, Insight{m.Carrier, InsightWeakness, MetricDeliverySuccessRate, m.DeliverySuccessRate, *fleetDeliveryRate})
			}
		}

		if fleetReturnRate != nil && m.ReturnRate > *fleetReturnRate+returnRateMargin {
			insights = append(insights, Insight{m.Carrier, InsightWarning, MetricReturnRate, m.ReturnRate, *fleetReturnRate})
		}

		if fleetDeliveryTime != nil && m.AvgDeliveryTimeHours != nil {
			switch {
			case *m.AvgDeliveryTimeHours < *fleetDeliveryTime-speedStrengthMargin:
				insights = append(insights, Insight{m.Carrier, InsightStrength, MetricAvgDeliveryTimeHours, *m.AvgDeliveryTimeHours, *fleetDeliveryTime})
			case *m.AvgDeliveryTimeHours > *fleetDeliveryTime+speedWeaknessMargin:
				insights = append(insights, Insight{m.Carrier, InsightWeakness, MetricAvgDeliveryTimeHours, *m.AvgDeliveryTimeHours, *fleetDeliveryTime})
			}
		}
	}

	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Carrier != insights[j].Carrier {
			return insights[i].Carrier < insights[j].Carrier
		}
		if insights[i].Metric != insights[j].Metric {
			return insights[i].Metric < insights[j].Metric
		}
		return insights[i].Kind < insights[j].Kind
	})

	return insights
}
