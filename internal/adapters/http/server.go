package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	clim "github.com/hu-zza/Clim"
	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/internal/presentation/graph"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/session"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Server exposes menu sessions over HTTP.
type Server struct {
	structure *structure.Structure
	sessions  *session.Manager
	metrics   http.Handler
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsHandler serves h on GET /metrics, e.g. promhttp.Handler().
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler. Every session menu must navigate st.
func NewHandler(st *structure.Structure, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		structure: st,
		sessions:  sessions,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Get("/structure", s.getStructure)
	r.Get("/graph", s.getGraph)
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.listSessions)
		r.Post("/", s.createSession)
		r.Get("/{id}", s.getSession)
		r.Delete("/{id}", s.deleteSession)
		r.Post("/{id}/input", s.postInput)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

type structureEntry struct {
	Name    string   `json:"name"`
	Links   []string `json:"links,omitempty"`
	Forward []string `json:"forward,omitempty"`
}

type structureResponse struct {
	Initial string           `json:"initial"`
	Nodes   []structureEntry `json:"nodes"`
	Leaves  []structureEntry `json:"leaves"`
}

type sessionResponse struct {
	ID       string      `json:"id"`
	Created  time.Time   `json:"created"`
	LastUsed time.Time   `json:"last_used"`
	View     domain.View `json:"view"`
}

type inputRequest struct {
	Input string `json:"input"`
}

type inputResponse struct {
	Outcome    clim.OutcomeKind   `json:"outcome"`
	Error      string             `json:"error,omitempty"`
	Reason     string             `json:"reason,omitempty"`
	Transition *domain.Transition `json:"transition,omitempty"`
	Diff       *domain.StateDiff  `json:"diff,omitempty"`
	View       domain.View        `json:"view"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "clim-http",
		"version": strings.TrimSpace(clim.Version),
	})
}

func (s *Server) getStructure(w http.ResponseWriter, r *http.Request) {
	resp := structureResponse{
		Initial: s.structure.Initial().Name,
		Nodes:   []structureEntry{},
		Leaves:  []structureEntry{},
	}
	for _, pos := range s.structure.Positions() {
		entry, err := s.structure.Entry(pos.ID)
		if err != nil {
			continue
		}
		switch e := entry.(type) {
		case *domain.Leaf:
			resp.Leaves = append(resp.Leaves, structureEntry{Name: pos.Name, Forward: domain.Names(e.Forward())})
		default:
			resp.Nodes = append(resp.Nodes, structureEntry{Name: pos.Name, Links: domain.Names(e.Links())})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	if id := r.URL.Query().Get("session"); id != "" {
		err := s.sessions.WithSession(r.Context(), id, func(_ context.Context, m *clim.Menu) error {
			overlay = graph.OverlayFromState(m.State())
			return nil
		})
		if err != nil {
			s.writeError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.structure, overlay)))
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.sessions.List()})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	info, err := s.sessions.Create(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp, err := s.describe(r.Context(), info.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session created", "session_id", info.ID)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	resp, err := s.describe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postInput(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body inputRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("input: invalid request body", "err", err)
		return
	}
	input, err := clim.SanitizeInput(body.Input)
	if err != nil {
		http.Error(w, "Invalid input: "+err.Error(), http.StatusBadRequest)
		s.logger.Warn("input rejected by sanitizer", "err", err, "size", len(body.Input))
		return
	}

	var resp inputResponse
	err = s.sessions.WithSession(r.Context(), id, func(ctx context.Context, m *clim.Menu) error {
		before := m.State()
		out := m.ChooseOption(ctx, input)

		resp.Outcome = out.Kind
		resp.Transition = out.Transition
		resp.Diff = domain.Diff(before, m.State())
		resp.View = m.View()
		if out.Err != nil {
			resp.Error = out.Err.Error()
			resp.Reason = domain.RejectReason(out.Err)
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := http.StatusOK
	if resp.Outcome == clim.OutcomeRejected {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (s *Server) describe(ctx context.Context, id string) (sessionResponse, error) {
	var resp sessionResponse
	err := s.sessions.WithSession(ctx, id, func(_ context.Context, m *clim.Menu) error {
		resp.View = m.View()
		return nil
	})
	if err != nil {
		return resp, err
	}
	info, err := s.sessions.Info(id)
	if err != nil {
		return resp, err
	}
	resp.ID, resp.Created, resp.LastUsed = info.ID, info.Created, info.LastUsed
	return resp, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrTooManySessions):
		status = http.StatusTooManyRequests
	case errors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
