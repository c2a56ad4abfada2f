package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/genofig/genofig/pkg/errors"
	"github.com/genofig/genofig/pkg/figure"
	"github.com/genofig/genofig/pkg/figure/sink"
	"github.com/genofig/genofig/pkg/pipeline"
	"github.com/genofig/genofig/pkg/store"
)

// createRequest is the POST /v1/figures body: pipeline options plus a
// display name for the stored record.
type createRequest struct {
	Name string `json:"name"`
	pipeline.Options
}

type createResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Features int             `json:"features"`
	Traces   int             `json:"traces"`
	Cached   map[string]bool `json:"cached"`
}

type listEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	// The server only accepts inline annotation data; reading paths off
	// the server filesystem is not exposed.
	if req.Options.Input != "" {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput,
			"input paths are not accepted, send annotation data in source"))
		return
	}
	req.Options.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := &store.Record{
		Name:   req.Name,
		Source: req.Options.InputKind,
		Doc:    result.Artifacts[pipeline.FormatJSON],
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "save figure"))
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		ID:       rec.ID,
		Name:     rec.Name,
		Features: result.Stats.FeatureCount,
		Traces:   result.Stats.TraceCount,
		Cached: map[string]bool{
			"parse":  result.CacheInfo.ParseHit,
			"render": result.CacheInfo.RenderHit,
		},
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "list figures"))
		return
	}

	entries := make([]listEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, listEntry{
			ID:        rec.ID,
			Name:      rec.Name,
			Source:    rec.Source,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.fetch(w, r)
	if rec == nil || err != nil {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleGetHTML(w http.ResponseWriter, r *http.Request) {
	rec, err := s.fetch(w, r)
	if rec == nil || err != nil {
		return
	}

	var doc figure.Doc
	if err := json.Unmarshal(rec.Doc, &doc); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "decode stored figure"))
		return
	}

	title := rec.Name
	if title == "" {
		title = "Figure"
	}
	page, err := sink.RenderHTML(storedDoc{doc}, sink.WithHTMLTitle(title))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeFigureNotFound, "figure %s not found", id))
		return
	}
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "delete figure"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fetch resolves the {id} URL parameter to a record, writing the error
// response itself on failure.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request) (*store.Record, error) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeFigureNotFound, "figure %s not found", id))
		return nil, err
	}
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "load figure"))
		return nil, err
	}
	return rec, nil
}

// storedDoc adapts an already-assembled document to the sink interface.
type storedDoc struct {
	doc figure.Doc
}

func (d storedDoc) Doc() figure.Doc { return d.doc }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidRange, apperrors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeFigureNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()))
	}

	writeJSON(w, status, map[string]string{
		"error": apperrors.UserMessage(err),
		"code":  string(apperrors.GetCode(err)),
	})
}
