package mapper

import (
	"sort"
	"strings"

	"github.com/cardwise/card-assistant/internal/config"
	"github.com/cardwise/card-assistant/internal/models"
	"github.com/cardwise/card-assistant/internal/scoring"
)

const (
	directConfidenceCap  = 0.9
	directConfidenceBase = 0.1
	directKeywordWeight  = 0.8

	// Only reasonably close tokens count as fuzzy keyword matches.
	fuzzyKeywordThreshold = 0.75
)

// Mapper classifies a free-text query into one domain category using a
// fixed rule table: a direct substring pass, then a fuzzy token pass.
type Mapper struct {
	rules    []config.MappingRule
	fallback config.FallbackConfig
}

func New(cfg *config.MappingsConfig) *Mapper {
	return &Mapper{
		rules:    cfg.Rules,
		fallback: cfg.Fallback,
	}
}

type candidate struct {
	rule       config.MappingRule
	confidence float64
	matched    []string
}

// Map returns the winning category with its confidence, matched keywords
// and the rule's filter hints. Results are deterministic: priority first,
// then confidence, then category name.
func (m *Mapper) Map(query string) models.MappingResult {
	q := strings.ToLower(query)
	best := make(map[string]*candidate)

	// Direct pass: keyword phrases as substrings of the query.
	for _, r := range m.rules {
		var matched []string
		for _, kw := range r.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		conf := float64(len(matched))/float64(len(r.Keywords))*directKeywordWeight + directConfidenceBase
		if conf > directConfidenceCap {
			conf = directConfidenceCap
		}
		best[r.Category] = &candidate{rule: r, confidence: conf, matched: matched}
	}

	// Fuzzy pass: query tokens against rule keywords by edit-distance
	// similarity; a closer fuzzy hit replaces a weaker recorded result.
	// Keywords the direct pass already consumed are skipped so direct
	// confidence stays authoritative.
	tokens := scoring.Tokenize(q)
	for _, r := range m.rules {
		for _, kw := range r.Keywords {
			kwl := strings.ToLower(kw)
			if strings.Contains(q, kwl) {
				continue
			}
			for _, tok := range tokens {
				sim := scoring.Similarity(tok, kwl)
				if sim < fuzzyKeywordThreshold {
					continue
				}
				if cur, ok := best[r.Category]; !ok || sim > cur.confidence {
					best[r.Category] = &candidate{rule: r, confidence: sim, matched: []string{kw}}
				}
			}
		}
	}

	if len(best) == 0 {
		return models.MappingResult{
			Category:   m.fallback.Category,
			Confidence: m.fallback.Confidence,
		}
	}

	candidates := make([]*candidate, 0, len(best))
	for _, c := range best {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.rule.Priority != cb.rule.Priority {
			return ca.rule.Priority > cb.rule.Priority
		}
		if ca.confidence != cb.confidence {
			return ca.confidence > cb.confidence
		}
		return ca.rule.Category < cb.rule.Category
	})

	win := candidates[0]
	return models.MappingResult{
		Category:        win.rule.Category,
		Confidence:      win.confidence,
		MatchedKeywords: win.matched,
		SuggestedFilters: models.SuggestedFilters{
			Banks:     win.rule.BankNames,
			CardTypes: win.rule.CardTypes,
			Features:  win.rule.Features,
		},
	}
}

// SearchTerms builds the de-duplicated union of query tokens with the
// mapping's suggested banks, features and card types, used to form a more
// targeted catalog query.
func (m *Mapper) SearchTerms(query string, mapping models.MappingResult) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(t string) {
		t = strings.ToLower(strings.TrimSpace(t))
		if len(t) <= 2 {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	for _, tok := range scoring.Tokenize(query) {
		add(tok)
	}
	for _, b := range mapping.SuggestedFilters.Banks {
		add(b)
	}
	for _, f := range mapping.SuggestedFilters.Features {
		add(f)
	}
	for _, ct := range mapping.SuggestedFilters.CardTypes {
		add(ct)
	}
	return terms
}
