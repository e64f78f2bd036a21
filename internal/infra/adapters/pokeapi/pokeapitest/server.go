// Package pokeapitest serves canned PokeAPI responses for tests.
package pokeapitest

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

//go:embed testdata
var fixtures embed.FS

const apiPrefix = "/api/v2"

// Fixture paths served by default, relative to the API prefix.
var defaultRoutes = map[string]string{
	"/pokemon/pikachu/":   "testdata/pokemon_pikachu.json",
	"/pokemon/charizard/": "testdata/pokemon_charizard.json",
	"/type/13/":           "testdata/type_13.json",
	"/type/10/":           "testdata/type_10.json",
	"/type/3/":            "testdata/type_3.json",
}

type override struct {
	status int
	body   string
}

// Server is a fake PokeAPI. Unknown paths answer 404 "Not Found" like the real service.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []string
	overrides map[string]override
}

func NewServer() *Server {
	s := &Server{overrides: map[string]override{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// BaseURL is the value to configure as pokeapi.base_url.
func (s *Server) BaseURL() string { return s.URL + apiPrefix }

// Requests returns request paths (without the API prefix) in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Respond makes path answer with a fixed status and body.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = override{status: status, body: body}
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.EscapedPath(), apiPrefix)

	s.mu.Lock()
	s.requests = append(s.requests, path)
	ov, hasOverride := s.overrides[path]
	s.mu.Unlock()

	if hasOverride {
		w.WriteHeader(ov.status)
		_, _ = w.Write([]byte(ov.body))
		return
	}

	file, ok := defaultRoutes[path]
	if !ok || r.Method != http.MethodGet {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	body, err := fixtures.ReadFile(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}
