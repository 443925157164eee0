// Package server is the HTTP front end: it compiles the pattern from
// the query string and answers with DOT text or a rendered image.
package server

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"net/http"

	"regexviz/internal/regexlib"
	"regexviz/internal/render"
)

type Server struct {
	renderer *render.Renderer
}

func New(r *render.Renderer) *Server {
	if r == nil {
		r = &render.Renderer{}
	}
	return &Server{renderer: r}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	return mux
}

// handleRender serves GET /render?regex=<re>&mode=<tree|dfa>&format=<text|image>.
// mode defaults to tree, format to image. DFAs above MaxRenderStates
// fall back to text regardless of the requested format.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	pattern := q.Get("regex")
	mode := q.Get("mode")
	if mode == "" {
		mode = "tree"
	}
	format := q.Get("format")
	if format == "" {
		format = "image"
	}
	if format != "text" && format != "image" {
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
		return
	}

	re, err := regexlib.Compile(pattern)
	if err != nil {
		log.Printf("compile %q: %v", pattern, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	tooBig := false
	switch mode {
	case "tree":
		regexlib.ExportDOT(&buf, re.Tree())
	case "dfa":
		d := re.DFA()
		regexlib.ExportDOT(&buf, d)
		tooBig = d.Size() > render.MaxRenderStates
	default:
		http.Error(w, fmt.Sprintf("unknown mode %q", mode), http.StatusBadRequest)
		return
	}

	if format == "text" || tooBig {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<!DOCTYPE html>")
		if tooBig {
			fmt.Fprint(w, "That graph is way too big D: draw it yourself!<br>")
		}
		fmt.Fprintf(w, "<pre>%s</pre>", html.EscapeString(buf.String()))
		return
	}

	png, err := s.renderer.PNG(r.Context(), buf.String())
	if err != nil {
		log.Printf("render %q: %v", pattern, err)
		http.Error(w, "layout tool failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
