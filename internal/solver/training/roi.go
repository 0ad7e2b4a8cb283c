package training

// ROIMetric represents the components of an ROI calculation
type ROIMetric struct {
	StrengthGain float64
	GoldCost     float64
}

// Calculate computes strength gained per gold
func (m ROIMetric) Calculate() float64 {
	if m.GoldCost <= 0 {
		return m.StrengthGain * 1000 // Very high ROI if free
	}
	return m.StrengthGain / m.GoldCost
}

// better reports whether candidate should be preferred over current.
// Ties fall back to the cheaper action, then the lower roster index, then
// training before transforming, so plans are deterministic.
func better(candidate, current Action) bool {
	cr, br := candidate.ROI(), current.ROI()
	if cr != br {
		return cr > br
	}
	if candidate.Cost != current.Cost {
		return candidate.Cost < current.Cost
	}
	if candidate.Index != current.Index {
		return candidate.Index < current.Index
	}
	return candidate.Kind == Train && current.Kind != Train
}
