package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/lwoodhull/cladogram/pkg/cache"
	"github.com/lwoodhull/cladogram/pkg/newick"
	"github.com/lwoodhull/cladogram/pkg/render/box"
	"github.com/lwoodhull/cladogram/pkg/render/dot"
	"github.com/lwoodhull/cladogram/pkg/tree"
)

// maxTreeBytes bounds the accepted Newick payload.
const maxTreeBytes = 1 << 20

// renderParams are the rendering knobs shared by POST /render and
// GET /trees/{name}.
type renderParams struct {
	collapse bool
	style    string // "unicode" or "ascii"
	format   string // "text", "dot", "svg" or "png"
}

func parseRenderParams(r *http.Request) (renderParams, error) {
	p := renderParams{collapse: true, style: "unicode", format: "text"}
	q := r.URL.Query()

	if v := q.Get("collapse"); v != "" {
		collapse, err := strconv.ParseBool(v)
		if err != nil {
			return p, fmt.Errorf("invalid collapse value %q", v)
		}
		p.collapse = collapse
	}
	if v := q.Get("style"); v != "" {
		if v != "unicode" && v != "ascii" {
			return p, fmt.Errorf("invalid style %q, want unicode or ascii", v)
		}
		p.style = v
	}
	if v := q.Get("format"); v != "" {
		switch v {
		case "text", "dot", "svg", "png":
			p.format = v
		default:
			return p, fmt.Errorf("invalid format %q, want text, dot, svg or png", v)
		}
	}
	return p, nil
}

func (p renderParams) contentType() string {
	switch p.format {
	case "dot":
		return "text/vnd.graphviz"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}

// handleRender renders the Newick tree in the request body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	params, err := parseRenderParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTreeBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	root, err := newick.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondRendered(w, r, root, params)
}

// respondRendered renders root under params and writes the artifact,
// consulting the cache first. The cache key hashes the canonical Newick so
// equivalent inputs with different whitespace or comments share entries.
func (s *Server) respondRendered(w http.ResponseWriter, r *http.Request, root *tree.Node, params renderParams) {
	ctx := r.Context()
	key := cache.Key("render", newick.Write(root), params.collapse, params.style, params.format)

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		w.Header().Set("Content-Type", params.contentType())
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	} else if err != nil {
		s.logger.Warn("cache get failed", "error", err, "request_id", requestIDFromContext(ctx))
	}

	if params.collapse {
		root = tree.Collapse(root)
	}

	var data []byte
	switch params.format {
	case "text":
		glyphs := box.Unicode
		if params.style == "ascii" {
			glyphs = box.ASCII
		}
		data = []byte(box.Render(root, box.WithGlyphs(glyphs)))
	case "dot":
		data = []byte(dot.ToDOT(root))
	case "svg":
		var err error
		data, err = dot.RenderSVG(ctx, dot.ToDOT(root))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "render svg: "+err.Error())
			return
		}
	case "png":
		var err error
		data, err = dot.RenderPNG(ctx, dot.ToDOT(root))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "render png: "+err.Error())
			return
		}
	}

	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed", "error", err, "request_id", requestIDFromContext(ctx))
	}

	w.Header().Set("Content-Type", params.contentType())
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(data)
}

// readValidated reads a request body and checks it parses as Newick,
// returning the parsed tree alongside the raw text.
func readValidated(r *http.Request) (*tree.Node, []byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTreeBytes))
	if err != nil {
		return nil, nil, errors.New("read body: " + err.Error())
	}
	root, err := newick.Parse(body)
	if err != nil {
		return nil, nil, err
	}
	return root, body, nil
}
