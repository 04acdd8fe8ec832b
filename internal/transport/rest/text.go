package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mojam-curator/internal/arabic"
)

// TextHandler exposes the text engine statelessly.
type TextHandler struct {
	tables *arabic.Tables
	log    *slog.Logger
}

// NewTextHandler creates a TextHandler. A nil tables argument selects the
// defaults.
func NewTextHandler(tables *arabic.Tables, logger *slog.Logger) *TextHandler {
	if tables == nil {
		tables = arabic.DefaultTables()
	}
	return &TextHandler{tables: tables, log: logger.With("handler", "text")}
}

type segmentRequest struct {
	Text string `json:"text"`
}

type extractRequest struct {
	Passage string `json:"passage"`
	Root    string `json:"root"`
}

type highlightRequest struct {
	Text  string   `json:"text"`
	Words []string `json:"words"`
}

// Segment handles POST /api/text/segment.
func (h *TextHandler) Segment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"segments": arabic.Segment(req.Text)})
}

// Extract handles POST /api/text/extract.
func (h *TextHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"words": h.tables.Extract(req.Passage, req.Root)})
}

// Highlight handles POST /api/text/highlight.
func (h *TextHandler) Highlight(w http.ResponseWriter, r *http.Request) {
	var req highlightRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"html": h.tables.Highlight(req.Text, req.Words)})
}
