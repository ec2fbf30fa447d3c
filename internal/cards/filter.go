package cards

import (
	"sort"
	"strings"

	"github.com/cardwise/card-assistant/internal/models"
)

// Term-hit weights. Deliberately simpler than the document scorer: card
// records are short and structured, so plain field hits rank well enough.
const (
	nameHitWeight    = 3
	bankHitWeight    = 2
	detailHitWeight  = 1
	featureHitWeight = 1
)

// rankByTerms keeps cards hit by at least one term, ordered by hit score
// descending with the catalog's own order breaking ties, capped at max.
func rankByTerms(records []models.CardRecord, query string, terms []string, max int) []models.CardRecord {
	if len(terms) == 0 {
		terms = strings.Fields(strings.ToLower(query))
	}

	type scored struct {
		record models.CardRecord
		hits   int
	}
	kept := make([]scored, 0, len(records))
	for _, r := range records {
		hits := termHits(r, terms)
		if hits == 0 {
			continue
		}
		kept = append(kept, scored{record: r, hits: hits})
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].hits > kept[b].hits
	})

	if len(kept) > max {
		kept = kept[:max]
	}
	out := make([]models.CardRecord, len(kept))
	for i, s := range kept {
		out[i] = s.record
	}
	return out
}

func termHits(r models.CardRecord, terms []string) int {
	name := strings.ToLower(r.CardName)
	bank := strings.ToLower(r.BankName)
	details := strings.ToLower(r.RewardRate + " " + r.Eligibility + " " + r.Benefits)
	features := strings.ToLower(strings.Join(r.KeyFeatures, " "))

	hits := 0
	for _, t := range terms {
		if t == "" {
			continue
		}
		if strings.Contains(name, t) {
			hits += nameHitWeight
		}
		if strings.Contains(bank, t) {
			hits += bankHitWeight
		}
		if strings.Contains(details, t) {
			hits += detailHitWeight
		}
		if strings.Contains(features, t) {
			hits += featureHitWeight
		}
	}
	return hits
}
