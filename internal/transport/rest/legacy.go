package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/corpus"
	"github.com/heartmarshall/mojam-curator/internal/snapshot"
)

type corpusStore interface {
	Resources(ctx context.Context) ([]domain.Collection, error)
	ReplaceResources(ctx context.Context, collections []domain.Collection) (int, error)
	UpdateRoot(ctx context.Context, input corpus.UpdateRootInput) (domain.Passage, error)
	Spectrum(ctx context.Context) ([]domain.Note, error)
	ReplaceSpectrum(ctx context.Context, notes []domain.Note) (int, error)
	Stats(ctx context.Context) (corpus.Stats, error)
}

type datasetStore interface {
	Dataset(ctx context.Context) (domain.Dataset, error)
	ReplaceDataset(ctx context.Context, d domain.Dataset) (int, error)
	CuratedTotal(ctx context.Context) (int, error)
}

type sessionCounter interface {
	Count() int
}

// LegacyHandler serves the whole-document endpoints the original editor
// front end talks to: each call moves a full resources, dataset or spectrum
// document.
type LegacyHandler struct {
	corpus   corpusStore
	dataset  datasetStore
	sessions sessionCounter
	log      *slog.Logger
	now      func() time.Time
}

// NewLegacyHandler creates a LegacyHandler. sessions may be nil.
func NewLegacyHandler(corpus corpusStore, dataset datasetStore, sessions sessionCounter, logger *slog.Logger) *LegacyHandler {
	return &LegacyHandler{
		corpus:   corpus,
		dataset:  dataset,
		sessions: sessions,
		log:      logger.With("handler", "legacy"),
		now:      time.Now,
	}
}

// GetDataset handles GET /api/get-dataset.
func (h *LegacyHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	d, err := h.dataset.Dataset(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeDocument(w, r, func(out io.Writer) error { return snapshot.EncodeDataset(out, d) })
}

// SaveDataset handles POST /api/save-dataset.
func (h *LegacyHandler) SaveDataset(w http.ResponseWriter, r *http.Request) {
	d, err := snapshot.DecodeDataset(r.Body)
	if err != nil {
		respondError(w, r, h.log, bodyError(err))
		return
	}

	n, err := h.dataset.ReplaceDataset(r.Context(), d)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, "Dataset saved successfully with %d roots", n)
}

// GetResources handles GET /api/get-resources. Mojams and roots keep their
// stored order.
func (h *LegacyHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	collections, err := h.corpus.Resources(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeDocument(w, r, func(out io.Writer) error { return snapshot.EncodeResources(out, collections) })
}

// SaveResources handles POST /api/save-resources.
func (h *LegacyHandler) SaveResources(w http.ResponseWriter, r *http.Request) {
	collections, err := snapshot.DecodeResources(r.Body)
	if err != nil {
		respondError(w, r, h.log, bodyError(err))
		return
	}

	if _, err := h.corpus.ReplaceResources(r.Context(), collections); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, "Resources saved successfully")
}

type updateRootRequest struct {
	Mojam string  `json:"mojam"`
	Root  string  `json:"root"`
	Text  *string `json:"text"`
}

// UpdateRoot handles POST /api/update-root. All three fields are required;
// text may be empty.
func (h *LegacyHandler) UpdateRoot(w http.ResponseWriter, r *http.Request) {
	var req updateRootRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	_, err := h.corpus.UpdateRoot(r.Context(), corpus.UpdateRootInput{
		Mojam: req.Mojam,
		Root:  req.Root,
		Text:  req.Text,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, "Root '%s' in '%s' updated successfully", req.Root, req.Mojam)
}

// GetSpectrum handles GET /api/get-spectrum.
func (h *LegacyHandler) GetSpectrum(w http.ResponseWriter, r *http.Request) {
	notes, err := h.corpus.Spectrum(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeDocument(w, r, func(out io.Writer) error { return snapshot.EncodeSpectrum(out, notes) })
}

// SaveSpectrum handles POST /api/save-spectrum.
func (h *LegacyHandler) SaveSpectrum(w http.ResponseWriter, r *http.Request) {
	notes, err := snapshot.DecodeSpectrum(r.Body)
	if err != nil {
		respondError(w, r, h.log, bodyError(err))
		return
	}

	if _, err := h.corpus.ReplaceSpectrum(r.Context(), notes); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, "Spectrum data saved successfully")
}

type statusCounts struct {
	Mojams  int `json:"mojams"`
	Roots   int `json:"roots"`
	Curated int `json:"curated"`
	Notes   int `json:"notes"`
}

type statusResponse struct {
	Status    string       `json:"status"`
	Mode      string       `json:"mode"`
	Counts    statusCounts `json:"counts"`
	Sessions  int          `json:"sessions"`
	Timestamp time.Time    `json:"timestamp"`
}

// Status handles GET /api/status.
func (h *LegacyHandler) Status(w http.ResponseWriter, r *http.Request) {
	stats, err := h.corpus.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	curated, err := h.dataset.CuratedTotal(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := statusResponse{
		Status: "ok",
		Mode:   "postgres",
		Counts: statusCounts{
			Mojams:  stats.Mojams,
			Roots:   stats.Roots,
			Curated: curated,
			Notes:   stats.Notes,
		},
		Timestamp: h.now().UTC(),
	}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Count()
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeDocument buffers an encoded document so an encoding failure can still
// be reported as a 500.
func (h *LegacyHandler) writeDocument(w http.ResponseWriter, r *http.Request, encode func(io.Writer) error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}
