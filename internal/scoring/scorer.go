package scoring

import (
	"strings"

	"github.com/cardwise/card-assistant/internal/models"
)

const (
	exactMatchWeight   = 0.55
	tokenOverlapWeight = 0.45
	cardNameBoost      = 0.35
	bankNameBoost      = 0.25
	sectionBoost       = 0.10
	featureBoost       = 0.07

	// Fuzzy token comparison applies only to tokens of at least this
	// many characters; shorter tokens produce too many false matches.
	fuzzyMinTokenLen    = 3
	fuzzyTokenThreshold = 0.8

	shortContentLimit    = 50
	optimalContentMin    = 100
	optimalContentMax    = 2000
	shortContentPenalty  = 0.5
	optimalContentFactor = 1.1
	currencyFactor       = 1.05
)

// Scorer computes a bounded lexical relevance score between a free-text
// query and a stored chunk. Score is a pure function of its inputs.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

// Score returns a value in [0,1]. Signals are additive (exact phrase,
// token overlap, metadata mentions, paired feature patterns) followed by a
// multiplicative content-quality adjustment, then clamped.
func (s *Scorer) Score(query, content string, meta models.ChunkMetadata) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(content)
	if q == "" || c == "" {
		return 0
	}

	score := 0.0

	if strings.Contains(c, q) {
		score += exactMatchWeight
	}

	qTokens := Tokenize(q)
	if len(qTokens) > 0 {
		cTokens := Tokenize(c)
		matched := 0
		for _, qt := range qTokens {
			if tokenMatches(qt, cTokens) {
				matched++
			}
		}
		score += tokenOverlapWeight * float64(matched) / float64(len(qTokens))
	}

	if meta.CardName != "" && mentions(q, meta.CardName) {
		score += cardNameBoost
	}
	if meta.BankName != "" && mentions(q, meta.BankName) {
		score += bankNameBoost
	}
	if meta.Section != "" && sectionMatches(qTokens, meta.Section) {
		score += sectionBoost
	}

	for _, p := range featurePatterns {
		if p.query.MatchString(q) && p.content.MatchString(c) {
			score += featureBoost
		}
	}

	score *= qualityFactor(content)

	return clamp01(score)
}

// qualityFactor penalizes extraction noise and favors chunks in a readable
// length band or carrying concrete figures.
func qualityFactor(content string) float64 {
	factor := 1.0
	switch n := len(content); {
	case n < shortContentLimit:
		factor *= shortContentPenalty
	case n >= optimalContentMin && n <= optimalContentMax:
		factor *= optimalContentFactor
	}
	if currencyPattern.MatchString(content) {
		factor *= currencyFactor
	}
	return factor
}

// tokenMatches reports whether a query token hits any content token by
// containment in either direction or by normalized edit distance.
func tokenMatches(qt string, contentTokens []string) bool {
	for _, ct := range contentTokens {
		if strings.Contains(ct, qt) || strings.Contains(qt, ct) {
			return true
		}
		if len(qt) >= fuzzyMinTokenLen && len(ct) >= fuzzyMinTokenLen &&
			Similarity(qt, ct) >= fuzzyTokenThreshold {
			return true
		}
	}
	return false
}

// sectionMatches reports whether any word of a snake_case section label
// overlaps the query tokens. Connector words carry no signal.
func sectionMatches(queryTokens []string, section string) bool {
	for _, w := range strings.Split(strings.ToLower(section), "_") {
		if len(w) <= 2 || w == "and" {
			continue
		}
		if tokenMatches(w, queryTokens) {
			return true
		}
	}
	return false
}

// mentions checks containment in either direction between the query and a
// metadata label.
func mentions(query, label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return false
	}
	return strings.Contains(query, l) || strings.Contains(l, query)
}

// Tokenize lower-cases, strips punctuation and returns words longer than
// two characters.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:()[]{}\"'", r) {
			return -1
		}
		return r
	}, s)

	var tokens []string
	for _, word := range strings.Fields(s) {
		if len(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
