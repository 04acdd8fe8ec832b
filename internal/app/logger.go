package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/config"
	"github.com/heartmarshall/mojam-curator/pkg/ctxutil"
)

// NewLogger builds the process logger on stderr and makes it the slog
// default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLoggerTo builds a logger on w without touching the default. Format
// "json" is for production; anything else gives text lines with file:line.
// Records logged with a context carry the editor who made the request.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		opts.AddSource = true
		opts.ReplaceAttr = shortSource
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(editorHandler{h}).With(slog.String("app", AppName))
}

func parseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	if src, ok := a.Value.Any().(*slog.Source); ok {
		a.Value = slog.StringValue(filepath.Base(src.File) + ":" + strconv.Itoa(src.Line))
	}
	return a
}

type editorHandler struct {
	slog.Handler
}

func (h editorHandler) Handle(ctx context.Context, r slog.Record) error {
	if name, ok := ctxutil.EditorFromCtx(ctx); ok {
		r.AddAttrs(slog.String("editor", name))
	}
	return h.Handler.Handle(ctx, r)
}

func (h editorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return editorHandler{h.Handler.WithAttrs(attrs)}
}

func (h editorHandler) WithGroup(name string) slog.Handler {
	return editorHandler{h.Handler.WithGroup(name)}
}
