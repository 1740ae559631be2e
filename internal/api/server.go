// ABOUTME: Local HTTP JSON API over the note repository and registry.
// ABOUTME: chi router with request logging; mirrors the CLI operations.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/harper/noted/internal/logging"
	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/prefs"
	"github.com/harper/noted/internal/query"
	"github.com/harper/noted/internal/repo"
)

// Server wires the note core to HTTP handlers.
type Server struct {
	repo     *repo.Repository
	registry *repo.Registry
	prefsDB  prefs.Backend
	log      logging.Logger
}

func NewServer(r *repo.Repository, g *repo.Registry, p prefs.Backend, log logging.Logger) *Server {
	return &Server{repo: r, registry: g, prefsDB: p, log: log}
}

// Router builds the /api route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/notes", s.listNotes)
		r.Post("/notes", s.createNote)
		r.Post("/notes/reverse", s.reverseNotes)
		r.Route("/notes/{id}", func(r chi.Router) {
			r.Get("/", s.getNote)
			r.Put("/", s.updateNote)
			r.Delete("/", s.deleteNote)
			r.Post("/pin", s.togglePin)
		})

		r.Get("/categories", s.listCategories)
		r.Post("/categories", s.addCategory)
		r.Delete("/categories/{label}", s.removeCategory)

		r.Get("/prefs", s.getPrefs)
		r.Put("/prefs", s.putPrefs)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String())
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repo.ErrNoteNotFound), errors.Is(err, repo.ErrLabelNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repo.ErrEmptyLabel),
		errors.Is(err, repo.ErrDuplicateLabel),
		errors.Is(err, repo.ErrDefaultLabel),
		errors.Is(err, repo.ErrReservedCategory),
		errors.Is(err, repo.ErrUnknownCategory):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err.Error())
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid note id"})
		return uuid.Nil, false
	}
	return id, true
}

// checkCategory rejects labels absent from the registry. Empty means
// "use the default" and is always fine.
func (s *Server) checkCategory(label string) error {
	if label == "" || s.registry.Contains(label) {
		return nil
	}
	return fmt.Errorf("%w: %q", repo.ErrUnknownCategory, label)
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sortMode, err := query.ParseSort(q.Get("sort"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	f := query.Filter{
		Search:     q.Get("q"),
		Category:   q.Get("category"),
		Sort:       sortMode,
		PinnedOnly: q.Get("pinned") == "true",
	}
	writeJSON(w, http.StatusOK, query.Apply(s.repo.Notes(), f))
}

type noteRequest struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Image    string       `json:"image"`
	Color    models.Color `json:"color"`
	Category string       `json:"category"`
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	if err := s.checkCategory(req.Category); err != nil {
		s.writeError(w, r, err)
		return
	}

	note, err := s.repo.Create(req.Title, req.Content, req.Image, req.Color, req.Category)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}
	note, err := s.repo.Get(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

type notePatch struct {
	Title    *string       `json:"title"`
	Content  *string       `json:"content"`
	Image    *string       `json:"image"`
	Color    *models.Color `json:"color"`
	Category *string       `json:"category"`
	Pinned   *bool         `json:"pinned"`
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var req notePatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	if req.Category != nil {
		if err := s.checkCategory(*req.Category); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	note, err := s.repo.Update(id, models.Patch{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		Color:    req.Color,
		Category: req.Category,
		Pinned:   req.Pinned,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}
	if err := s.repo.Delete(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) togglePin(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}
	note, err := s.repo.TogglePinned(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) reverseNotes(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Reverse(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.repo.Notes())
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

type categoryRequest struct {
	Label string `json:"label"`
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	if err := s.registry.Add(req.Label); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.registry.List())
}

func (s *Server) removeCategory(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if err := s.registry.Remove(label); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type prefsBody struct {
	Font     string `json:"font"`
	DarkMode bool   `json:"dark_mode"`
	Language string `json:"language"`
	Layout   string `json:"layout"`
	Theme    string `json:"theme"`
}

func (s *Server) getPrefs(w http.ResponseWriter, r *http.Request) {
	p, err := prefs.Load(s.prefsDB)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prefsBody{
		Font:     p.Font,
		DarkMode: p.DarkMode,
		Language: p.Language,
		Layout:   p.Layout,
		Theme:    p.Theme,
	})
}

func (s *Server) putPrefs(w http.ResponseWriter, r *http.Request) {
	var req prefsBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	p := prefs.Prefs{
		Font:     req.Font,
		DarkMode: req.DarkMode,
		Language: req.Language,
		Layout:   req.Layout,
		Theme:    req.Theme,
	}
	if err := p.Save(s.prefsDB); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
