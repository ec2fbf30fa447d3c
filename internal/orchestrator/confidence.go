package orchestrator

import "math"

// Per-tier confidence formulas. Every call site that reports confidence
// goes through one of these so the blending rules live in one place.
const (
	apiBaseConfidence    = 85
	apiMaxConfidence     = 95
	failureConfidence    = 25
	minReportedGenerated = 1
)

// apiConfidence starts from the fixed catalog baseline and adds up to ten
// points for a confident query mapping.
func apiConfidence(mappingConfidence float64) int {
	c := apiBaseConfidence + int(math.Round(mappingConfidence*10))
	if c > apiMaxConfidence {
		c = apiMaxConfidence
	}
	return c
}

// documentConfidence converts the top similarity into a percentage.
func documentConfidence(topSimilarity float64) int {
	c := int(math.Round(topSimilarity * 100))
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// generativeConfidence passes the adapter-reported value through, clamped.
func generativeConfidence(reported int) int {
	if reported < minReportedGenerated {
		return failureConfidence
	}
	if reported > 100 {
		return 100
	}
	return reported
}
