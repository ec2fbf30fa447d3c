package index

import (
	"sort"
	"strings"
	"sync"

	"github.com/cardwise/card-assistant/internal/models"
	"github.com/cardwise/card-assistant/internal/scoring"
)

const (
	bankHintBoost     = 0.15
	featureHintBoost  = 0.10
	featureHintCap    = 0.20
	cardTypeHintBoost = 0.10
)

// Index is the in-memory chunk collection. It is the sole owner of chunk
// lifetime: chunks enter through Add and leave only through Clear.
// Reads are concurrent; mutation is infrequent and externally triggered.
type Index struct {
	mu     sync.RWMutex
	chunks []models.TextChunk
	scorer *scoring.Scorer
}

func New(scorer *scoring.Scorer) *Index {
	return &Index{scorer: scorer}
}

// Add appends chunks in arrival order. Chunks with empty content are
// dropped; duplicate ids across batches are tolerated, not deduplicated.
func (i *Index) Add(chunks []models.TextChunk) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, c := range chunks {
		if c.ID == "" || strings.TrimSpace(c.Content) == "" {
			continue
		}
		i.chunks = append(i.chunks, c)
	}
}

// Clear empties the collection. Idempotent.
func (i *Index) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.chunks = nil
}

func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.chunks)
}

// Search scores every chunk against the query, discards scores at or below
// floor, and returns the best topK. Ties keep insertion order.
func (i *Index) Search(query string, topK int, floor float64) []models.SearchResult {
	return i.rank(query, topK, floor, nil)
}

// SearchWithMapping layers the mapper's filter hints on top of the base
// lexical score as additive boosts, re-clamped to [0,1].
func (i *Index) SearchWithMapping(query string, mapping models.MappingResult, topK int, floor float64) []models.SearchResult {
	return i.rank(query, topK, floor, &mapping.SuggestedFilters)
}

func (i *Index) rank(query string, topK int, floor float64, hints *models.SuggestedFilters) []models.SearchResult {
	if topK <= 0 {
		topK = 3
	}

	i.mu.RLock()
	snapshot := make([]models.TextChunk, len(i.chunks))
	copy(snapshot, i.chunks)
	i.mu.RUnlock()

	results := make([]models.SearchResult, 0, len(snapshot))
	for _, chunk := range snapshot {
		score := i.scorer.Score(query, chunk.Content, chunk.Metadata)
		if hints != nil {
			score = clamp01(score + hintBoost(chunk, hints))
		}
		if score <= floor {
			continue
		}
		results = append(results, models.SearchResult{Chunk: chunk, Similarity: score})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Similarity > results[b].Similarity
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// hintBoost rewards chunks matching the mapper's suggested banks, features
// and card types. Feature boosts stack up to a cap; bank and card type
// count once each.
func hintBoost(chunk models.TextChunk, hints *models.SuggestedFilters) float64 {
	content := strings.ToLower(chunk.Content)
	bank := strings.ToLower(chunk.Metadata.BankName)

	boost := 0.0
	for _, b := range hints.Banks {
		lb := strings.ToLower(b)
		if lb == "" {
			continue
		}
		if strings.Contains(bank, lb) || strings.Contains(content, lb) {
			boost += bankHintBoost
			break
		}
	}

	featureTotal := 0.0
	for _, f := range hints.Features {
		lf := strings.ToLower(f)
		if lf != "" && strings.Contains(content, lf) {
			featureTotal += featureHintBoost
		}
	}
	if featureTotal > featureHintCap {
		featureTotal = featureHintCap
	}
	boost += featureTotal

	for _, ct := range hints.CardTypes {
		lct := strings.ToLower(ct)
		if lct != "" && strings.Contains(content, lct) {
			boost += cardTypeHintBoost
			break
		}
	}
	return boost
}

// Stats aggregates counts by source, bank and card. Absent metadata fields
// are simply excluded from the breakdowns.
func (i *Index) Stats() models.IndexStats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	stats := models.IndexStats{
		TotalDocuments: len(i.chunks),
		Sources:        map[string]int{},
		Banks:          map[string]int{},
		Cards:          map[string]int{},
	}
	for _, c := range i.chunks {
		stats.Sources[string(c.Source)]++
		if c.Metadata.BankName != "" {
			stats.Banks[c.Metadata.BankName]++
		}
		if c.Metadata.CardName != "" {
			stats.Cards[c.Metadata.CardName]++
		}
	}
	return stats
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
