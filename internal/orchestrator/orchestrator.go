package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cardwise/card-assistant/internal/generative"
	"github.com/cardwise/card-assistant/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=orchestrator.go -destination=mocks/mocks.go -package=mocks

// Tier names the four terminal outcomes of the fallback state machine.
type Tier string

const (
	TierAPI        Tier = "api"
	TierDocument   Tier = "document"
	TierGenerative Tier = "generative"
	TierFailure    Tier = "failure"
)

const (
	defaultDocFloor  = 0.2
	defaultDocTopK   = 3
	maxFormattedDocs = 3

	attributionPrefix = "Based on general knowledge (not your uploaded documents): "
	apologyText       = "I'm sorry, I couldn't look that up right now. Please try asking again in a moment."
)

// QueryMapper classifies a query and derives catalog search terms.
type QueryMapper interface {
	Map(query string) models.MappingResult
	SearchTerms(query string, mapping models.MappingResult) []string
}

// CardSearcher queries the external card catalog.
type CardSearcher interface {
	Search(ctx context.Context, query string, terms []string) ([]models.CardRecord, error)
}

// DocumentSearcher performs ranked retrieval over the document index.
type DocumentSearcher interface {
	SearchWithMapping(query string, mapping models.MappingResult, topK int, floor float64) []models.SearchResult
}

// Generator produces the last-resort generated answer.
type Generator interface {
	Generate(ctx context.Context, req generative.Request) (*generative.Response, error)
}

// Orchestrator sequences the three ranked sources. Tiers are tried
// strictly in order and never blended: exactly one answer per query, from
// exactly one source.
type Orchestrator struct {
	mapper    QueryMapper
	cards     CardSearcher
	documents DocumentSearcher
	generator Generator
	docFloor  float64
	docTopK   int
	logger    *zerolog.Logger
}

func New(
	mapper QueryMapper,
	cards CardSearcher,
	documents DocumentSearcher,
	generator Generator,
	docFloor float64,
	logger *zerolog.Logger,
) *Orchestrator {
	if docFloor <= 0 {
		docFloor = defaultDocFloor
	}
	return &Orchestrator{
		mapper:    mapper,
		cards:     cards,
		documents: documents,
		generator: generator,
		docFloor:  docFloor,
		docTopK:   defaultDocTopK,
		logger:    logger,
	}
}

// Answer runs the query through the tier state machine. It never returns
// an error and never panics past this frame: adapter failures terminate in
// the fixed apology answer.
func (o *Orchestrator) Answer(ctx context.Context, query string) (answer models.Answer) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().Interface("panic", r).Str("query", query).Msg("answer pipeline panicked")
			answer = o.failureAnswer()
		}
	}()

	mapping := o.mapper.Map(query)
	o.logger.Info().
		Str("query", query).
		Str("category", mapping.Category).
		Float64("mapping_confidence", mapping.Confidence).
		Msg("query mapped")

	answer, tier := o.tryAPI(ctx, query, mapping)
	if tier == TierDocument {
		answer, tier = o.tryDocuments(query, mapping)
	}
	if tier == TierGenerative {
		answer = o.tryGenerative(ctx, query, mapping)
	}

	o.logger.Info().
		Str("source", string(answer.Source)).
		Int("confidence", answer.Confidence).
		Msg("answer produced")
	return answer
}

// tryAPI is the first transition. A non-empty catalog result terminates;
// an empty result hands off to the document tier; an adapter error aborts
// the whole pipeline.
func (o *Orchestrator) tryAPI(ctx context.Context, query string, mapping models.MappingResult) (models.Answer, Tier) {
	terms := o.mapper.SearchTerms(query, mapping)
	records, err := o.cards.Search(ctx, query, terms)
	if err != nil {
		o.logger.Warn().Err(err).Msg("card catalog tier failed")
		return o.failureAnswer(), TierFailure
	}
	if len(records) == 0 {
		return models.Answer{}, TierDocument
	}

	return models.Answer{
		Text:       formatCards(records),
		Source:     models.SourceAPI,
		Confidence: apiConfidence(mapping.Confidence),
		Cards:      records,
	}, TierAPI
}

// tryDocuments terminates when the top similarity clears the floor,
// otherwise hands off to the generative tier. Document search cannot fail.
func (o *Orchestrator) tryDocuments(query string, mapping models.MappingResult) (models.Answer, Tier) {
	results := o.documents.SearchWithMapping(query, mapping, o.docTopK, 0)
	if len(results) == 0 || results[0].Similarity <= o.docFloor {
		return models.Answer{}, TierGenerative
	}

	return models.Answer{
		Text:            formatDocuments(results),
		Source:          models.SourceDocument,
		Confidence:      documentConfidence(results[0].Similarity),
		SourceDocuments: results,
	}, TierDocument
}

// tryGenerative is the last tier; it cannot find nothing, only fail.
func (o *Orchestrator) tryGenerative(ctx context.Context, query string, mapping models.MappingResult) models.Answer {
	resp, err := o.generator.Generate(ctx, generative.Request{
		Query:   query,
		Context: mappingContext(mapping),
	})
	if err != nil {
		o.logger.Warn().Err(err).Msg("generative tier failed")
		return o.failureAnswer()
	}

	return models.Answer{
		Text:       attributionPrefix + resp.Text,
		Source:     models.SourceGenerative,
		Confidence: generativeConfidence(resp.Confidence),
	}
}

func (o *Orchestrator) failureAnswer() models.Answer {
	return models.Answer{
		Text:       apologyText,
		Source:     models.SourceSystem,
		Confidence: failureConfidence,
	}
}

// mappingContext describes the classification for the generation service.
func mappingContext(mapping models.MappingResult) string {
	if mapping.Category == "" || mapping.Category == "general" {
		return ""
	}
	ctx := fmt.Sprintf("The question is about %s.", strings.ReplaceAll(mapping.Category, "_", " "))
	if len(mapping.MatchedKeywords) > 0 {
		ctx += fmt.Sprintf(" Relevant terms: %s.", strings.Join(mapping.MatchedKeywords, ", "))
	}
	return ctx
}

func formatCards(records []models.CardRecord) string {
	var b strings.Builder
	b.WriteString("Here are the cards that match your question:\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\n- %s (%s)", r.CardName, r.BankName)
		fmt.Fprintf(&b, ": annual fee %d, joining fee %d", r.AnnualFee, r.JoiningFee)
		if r.RewardRate != "" {
			fmt.Fprintf(&b, ", rewards %s", r.RewardRate)
		}
	}
	return b.String()
}

func formatDocuments(results []models.SearchResult) string {
	n := len(results)
	if n > maxFormattedDocs {
		n = maxFormattedDocs
	}
	var b strings.Builder
	b.WriteString("From your documents:\n")
	for _, r := range results[:n] {
		b.WriteString("\n")
		if r.Chunk.Metadata.CardName != "" {
			fmt.Fprintf(&b, "[%s] ", r.Chunk.Metadata.CardName)
		}
		b.WriteString(strings.TrimSpace(r.Chunk.Content))
	}
	return b.String()
}
