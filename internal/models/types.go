package models

import (
	"time"
)

type Source string

const (
	SourceAPI        Source = "api"
	SourceDocument   Source = "document"
	SourceGenerative Source = "generative"
	SourceSystem     Source = "system"
)

// ChunkMetadata carries optional descriptive tags for an indexed chunk.
// Fields are free-form labels with no referential integrity guarantees.
type ChunkMetadata struct {
	CardName string `json:"card_name,omitempty"`
	BankName string `json:"bank_name,omitempty"`
	Section  string `json:"section,omitempty"`
}

// TextChunk is the atomic unit of lexical search. Chunks are immutable
// after creation and live until the owning index is cleared.
type TextChunk struct {
	ID       string        `json:"id"`
	Content  string        `json:"content"`
	Source   Source        `json:"source"`
	Metadata ChunkMetadata `json:"metadata"`
}

// SearchResult pairs a chunk with its similarity score for one query.
type SearchResult struct {
	Chunk      TextChunk `json:"chunk"`
	Similarity float64   `json:"similarity"`
}

// SuggestedFilters are hints surfaced by the query mapper, consumed by the
// card catalog adapter and the mapping-aware document search.
type SuggestedFilters struct {
	Banks     []string `json:"banks,omitempty"`
	CardTypes []string `json:"card_types,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// MappingResult is the per-query classification emitted by the mapper.
type MappingResult struct {
	Category         string           `json:"category"`
	Confidence       float64          `json:"confidence"`
	MatchedKeywords  []string         `json:"matched_keywords,omitempty"`
	SuggestedFilters SuggestedFilters `json:"suggested_filters"`
}

// CardRecord is one card returned by the external catalog service.
type CardRecord struct {
	CardName    string   `json:"card_name"`
	BankName    string   `json:"bank_name"`
	AnnualFee   int      `json:"annual_fee"`
	JoiningFee  int      `json:"joining_fee"`
	KeyFeatures []string `json:"key_features,omitempty"`
	RewardRate  string   `json:"reward_rate,omitempty"`
	Eligibility string   `json:"eligibility,omitempty"`
	Benefits    string   `json:"benefits,omitempty"`
}

// Answer is the unified response record, one per user query, immutable
// once returned. Confidence is a 0-100 heuristic, not a probability.
type Answer struct {
	Text            string         `json:"text"`
	Source          Source         `json:"source"`
	Confidence      int            `json:"confidence"`
	SourceDocuments []SearchResult `json:"source_documents,omitempty"`
	Cards           []CardRecord   `json:"cards,omitempty"`
}

// IndexStats is the observability snapshot of the document index.
// Breakdown labels come only from chunks that carry the metadata field.
type IndexStats struct {
	TotalDocuments int            `json:"total_documents"`
	Sources        map[string]int `json:"sources"`
	Banks          map[string]int `json:"banks"`
	Cards          map[string]int `json:"cards"`
}

// DocumentIngestEvent is the payload published on the document stream by
// the upload/extraction pipeline. Text is page-tagged raw text.
type DocumentIngestEvent struct {
	FileName   string    `json:"file_name"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at,omitempty"`
}
