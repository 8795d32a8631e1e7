package server

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type createRequest struct {
	Seed int64 `json:"seed"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type sessionResponse struct {
	ID    string      `json:"id"`
	State t2048.State `json:"state"`
}

type moveResponse struct {
	ID     string           `json:"id"`
	Result t2048.MoveResult `json:"result"`
	State  t2048.State      `json:"state"`
}

type listResponse struct {
	Sessions []string `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.manager.Len(),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.manager.Create(req.Seed)
	if err != nil {
		if errors.Is(err, ErrTooManySessions) {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("session created", "session", sess.ID, "seed", sess.Seed)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID, State: sess.State()})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Sessions: s.manager.List()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: sess.ID, State: sess.State()})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.manager.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.hub.Publish(id, EventClosed, nil)
	s.logger.Info("session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dir, err := t2048.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, state, err := sess.Move(dir)
	if errors.Is(err, ErrCooldown) {
		secs := int(math.Ceil(sess.RetryAfter().Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
		writeError(w, http.StatusTooManyRequests, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if res.Moved {
		s.hub.Publish(sess.ID, EventStateUpdate, &state)
	}
	if res.GameOver {
		s.finish(sess, state)
	}

	writeJSON(w, http.StatusOK, moveResponse{ID: sess.ID, Result: res, State: state})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	state := sess.Reset()
	s.hub.Publish(sess.ID, EventStateUpdate, &state)
	writeJSON(w, http.StatusOK, sessionResponse{ID: sess.ID, State: state})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.hub.ServeWS(w, r, sess.ID)
}

// finish records a finished game once and notifies watchers.
func (s *Server) finish(sess *Session, state t2048.State) {
	if !sess.MarkRecorded() {
		return
	}

	s.hub.Publish(sess.ID, EventGameOver, &state)
	s.logger.Info("game over", "session", sess.ID, "score", state.Score, "max_tile", state.MaxTile, "moves", state.Moves)

	if s.store == nil {
		return
	}
	_, err := s.store.SaveResult(storage.Result{
		GameID:  t2048.GameID,
		Player:  sess.ID,
		Score:   state.Score,
		MaxTile: state.MaxTile,
		Moves:   state.Moves,
	})
	if err != nil {
		s.logger.Warn("could not save result", "session", sess.ID, "error", err)
	}
}

// session resolves the {id} URL parameter, writing 404 when unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return sess, true
}

// decodeJSON reads an optional JSON body. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
