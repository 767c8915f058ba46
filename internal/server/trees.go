package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lwoodhull/cladogram/pkg/newick"
	"github.com/lwoodhull/cladogram/pkg/store"
)

// handleTreePut validates and stores a named tree. The tree is persisted in
// canonical form, so retrieval is stable regardless of input formatting.
func (s *Server) handleTreePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	root, _, err := readValidated(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t := &store.Tree{Name: name, Newick: newick.Write(root), UpdatedAt: time.Now().UTC()}
	if err := s.store.Put(r.Context(), t); err != nil {
		writeError(w, http.StatusInternalServerError, "store tree: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// handleTreeGet renders a stored tree with the same query parameters the
// render endpoint takes.
func (s *Server) handleTreeGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	params, err := parseRenderParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := s.store.Get(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no tree named "+name)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load tree: "+err.Error())
		return
	}

	root, err := newick.ParseString(t.Newick)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stored tree is corrupt: "+err.Error())
		return
	}

	s.respondRendered(w, r, root, params)
}

func (s *Server) handleTreeDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := s.store.Delete(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no tree named "+name)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "delete tree: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTreeList(w http.ResponseWriter, r *http.Request) {
	trees, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list trees: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, trees)
}
