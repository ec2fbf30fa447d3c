package cards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cardwise/card-assistant/internal/models"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxResults = 12
)

// Client talks to the external card catalog service. The service accepts
// a broad filter payload and returns its full matching set; the real
// relevance filtering happens client-side afterwards.
type Client struct {
	baseURL    string
	http       *http.Client
	maxResults int
	logger     *zerolog.Logger
}

func NewClient(baseURL string, logger *zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("card catalog base URL is required")
	}
	return &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: defaultTimeout},
		maxResults: defaultMaxResults,
		logger:     logger,
	}, nil
}

// searchPayload mirrors the catalog's filter contract. Every field is sent
// empty on purpose: filtering is applied client-side after the fetch.
type searchPayload struct {
	BankIDs      []string       `json:"bank_ids"`
	CardNetworks []string       `json:"card_networks"`
	AnnualFees   string         `json:"annual_fees"`
	CreditScore  string         `json:"credit_score"`
	SortBy       string         `json:"sort_by"`
	FreeCards    string         `json:"free_cards"`
	Eligibility  map[string]any `json:"eligibility"`
	Extra        map[string]any `json:"payload"`
}

type searchResponse struct {
	Cards []models.CardRecord `json:"cards"`
}

// Search fetches the broad catalog set and re-scores it against the query
// terms. Returned cards are ordered by term-hit score, capped at the
// client's max. An empty result is a valid outcome, not an error.
func (c *Client) Search(ctx context.Context, query string, terms []string) ([]models.CardRecord, error) {
	payload := searchPayload{
		BankIDs:      []string{},
		CardNetworks: []string{},
		Eligibility:  map[string]any{},
		Extra:        map[string]any{},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cards/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("catalog request failed")
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("catalog returned error status")
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	filtered := rankByTerms(out.Cards, query, terms, c.maxResults)

	c.logger.Debug().
		Int("fetched", len(out.Cards)).
		Int("kept", len(filtered)).
		Dur("duration", time.Since(start)).
		Msg("catalog search complete")

	return filtered, nil
}
