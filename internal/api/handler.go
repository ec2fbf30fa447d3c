package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cardwise/card-assistant/internal/api/middleware"
	"github.com/cardwise/card-assistant/internal/ingest"
	"github.com/cardwise/card-assistant/internal/metrics"
	"github.com/cardwise/card-assistant/internal/models"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

// Answerer runs one query to a single unified answer.
type Answerer interface {
	Answer(ctx context.Context, query string) models.Answer
}

// DocumentStore is the slice of the index the API mutates and inspects.
type DocumentStore interface {
	Add(chunks []models.TextChunk)
	Clear()
	Stats() models.IndexStats
}

type Handler struct {
	answerer Answerer
	store    DocumentStore
	splitter *ingest.Splitter
	metrics  *metrics.Metrics
	logger   *zerolog.Logger
}

func NewHandler(answerer Answerer, store DocumentStore, splitter *ingest.Splitter, m *metrics.Metrics, logger *zerolog.Logger) *Handler {
	return &Handler{
		answerer: answerer,
		store:    store,
		splitter: splitter,
		metrics:  m,
		logger:   logger,
	}
}

// POST /api/v1/ask
func (h *Handler) Ask(req *restful.Request, resp *restful.Response) {
	var askReq AskRequest
	if err := req.ReadEntity(&askReq); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse ask request")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(askReq.Query) == "" {
		middleware.HandleError(resp, fmt.Errorf("query is required"), http.StatusBadRequest)
		return
	}

	start := time.Now()
	answer := h.answerer.Answer(req.Request.Context(), askReq.Query)
	if h.metrics != nil {
		h.metrics.RecordAnswer(string(answer.Source), time.Since(start))
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, answer)
}

// POST /api/v1/documents
func (h *Handler) IngestDocument(req *restful.Request, resp *restful.Response) {
	var ingestReq IngestRequest
	if err := req.ReadEntity(&ingestReq); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse ingest request")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	chunks, err := h.splitter.Chunks(ingestReq.FileName, ingestReq.Text)
	if err != nil {
		if h.metrics != nil {
			h.metrics.IngestFailures.Inc()
		}
		h.logger.Warn().Err(err).Str("file", ingestReq.FileName).Msg("document ingest rejected")
		middleware.HandleError(resp, err, http.StatusUnprocessableEntity)
		return
	}

	h.store.Add(chunks)
	if h.metrics != nil {
		h.metrics.IngestedChunks.Add(float64(len(chunks)))
	}

	h.logger.Info().
		Str("file", ingestReq.FileName).
		Int("chunks", len(chunks)).
		Msg("document ingested")

	out := IngestResponse{OK: true, Chunks: len(chunks)}
	if len(chunks) > 0 {
		out.CardName = chunks[0].Metadata.CardName
		out.BankName = chunks[0].Metadata.BankName
	}
	_ = resp.WriteHeaderAndEntity(http.StatusOK, out)
}

// DELETE /api/v1/documents
func (h *Handler) ClearDocuments(req *restful.Request, resp *restful.Response) {
	h.store.Clear()
	if h.metrics != nil {
		h.metrics.IndexClears.Inc()
	}
	h.logger.Info().Msg("document index cleared")
	_ = resp.WriteHeaderAndEntity(http.StatusOK, ClearResponse{OK: true})
}

// GET /api/v1/documents/stats
func (h *Handler) Stats(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, h.store.Stats())
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
