package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/corpus"
	"github.com/heartmarshall/mojam-curator/internal/service/dataset"
)

type rootReader interface {
	ListMojams(ctx context.Context) ([]domain.MojamSummary, error)
	ListRoots(ctx context.Context, input corpus.ListRootsInput) ([]domain.RootSummary, error)
	GetRoot(ctx context.Context, mojam, root string) (corpus.RootDetail, error)
	UpdateNote(ctx context.Context, input corpus.UpdateNoteInput) (domain.Note, error)
}

type wordStore interface {
	Words(ctx context.Context, mojam, root string) (words []string, found bool, err error)
	SaveWords(ctx context.Context, input dataset.SaveWordsInput) (domain.WordList, error)
	DeleteWords(ctx context.Context, mojam, root string) error
	Progress(ctx context.Context, mojam string) (domain.Progress, error)
}

// ResourceHandler serves per-root reads and word list writes.
type ResourceHandler struct {
	roots  rootReader
	words  wordStore
	engine *curation.Engine
	log    *slog.Logger
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(roots rootReader, words wordStore, engine *curation.Engine, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		roots:  roots,
		words:  words,
		engine: engine,
		log:    logger.With("handler", "resources"),
	}
}

type mojamResponse struct {
	Mojam string `json:"mojam"`
	Roots int    `json:"roots"`
}

type rootSummaryResponse struct {
	Root      string `json:"root"`
	Position  int    `json:"position"`
	WordCount int    `json:"wordCount"`
}

type rootDetailResponse struct {
	Mojam    string   `json:"mojam"`
	Root     string   `json:"root"`
	Text     string   `json:"text"`
	Note     string   `json:"note"`
	Words    []string `json:"words"`
	HasList  bool     `json:"hasList"`
	Rendered string   `json:"rendered"`
}

type progressResponse struct {
	Mojam      string `json:"mojam"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

type noteRequest struct {
	Text *string `json:"text"`
}

type noteResponse struct {
	Root string `json:"root"`
	Text string `json:"text"`
}

type wordsRequest struct {
	Words []string `json:"words"`
}

type wordsResponse struct {
	Mojam string   `json:"mojam"`
	Root  string   `json:"root"`
	Words []string `json:"words"`
}

// Mojams handles GET /api/mojams.
func (h *ResourceHandler) Mojams(w http.ResponseWriter, r *http.Request) {
	mojams, err := h.roots.ListMojams(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]mojamResponse, len(mojams))
	for i, m := range mojams {
		out[i] = mojamResponse{Mojam: m.Mojam, Roots: m.Roots}
	}
	writeJSON(w, http.StatusOK, out)
}

// Roots handles GET /api/mojams/{mojam}/roots?sort=&prefix=&limit=.
func (h *ResourceHandler) Roots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, r, h.log, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	summaries, err := h.roots.ListRoots(r.Context(), corpus.ListRootsInput{
		Mojam:  r.PathValue("mojam"),
		Sort:   domain.SortMode(q.Get("sort")),
		Prefix: q.Get("prefix"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	out := make([]rootSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = rootSummaryResponse{Root: s.Root, Position: s.Position, WordCount: s.WordCount}
	}
	writeJSON(w, http.StatusOK, out)
}

// Root handles GET /api/mojams/{mojam}/roots/{root}. The passage is
// returned both raw and rendered with the stored words highlighted.
func (h *ResourceHandler) Root(w http.ResponseWriter, r *http.Request) {
	mojam, root := r.PathValue("mojam"), r.PathValue("root")

	detail, err := h.roots.GetRoot(r.Context(), mojam, root)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	words, found, err := h.words.Words(r.Context(), mojam, root)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rootDetailResponse{
		Mojam:    mojam,
		Root:     root,
		Text:     detail.Passage.Text,
		Note:     detail.Note,
		Words:    words,
		HasList:  found,
		Rendered: h.engine.Render(curation.State{Passage: detail.Passage.Text, Words: words}),
	})
}

// Progress handles GET /api/mojams/{mojam}/progress.
func (h *ResourceHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.words.Progress(r.Context(), r.PathValue("mojam"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		Mojam:      p.Mojam,
		Total:      p.Total,
		Completed:  p.Completed,
		Percentage: p.Percentage,
	})
}

// PutWords handles PUT /api/mojams/{mojam}/roots/{root}/words.
func (h *ResourceHandler) PutWords(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	wl, err := h.words.SaveWords(r.Context(), dataset.SaveWordsInput{
		Mojam: r.PathValue("mojam"),
		Root:  r.PathValue("root"),
		Words: req.Words,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordsResponse{Mojam: wl.Mojam, Root: wl.Root, Words: wl.Words})
}

// DeleteWords handles DELETE /api/mojams/{mojam}/roots/{root}/words.
func (h *ResourceHandler) DeleteWords(w http.ResponseWriter, r *http.Request) {
	if err := h.words.DeleteWords(r.Context(), r.PathValue("mojam"), r.PathValue("root")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PutNote handles PUT /api/notes/{root}. The text may be empty but must be
// present.
func (h *ResourceHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.Text == nil {
		respondError(w, r, h.log, domain.NewValidationError("text", "required"))
		return
	}

	n, err := h.roots.UpdateNote(r.Context(), corpus.UpdateNoteInput{Root: r.PathValue("root"), Text: *req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noteResponse{Root: n.Root, Text: n.Text})
}
