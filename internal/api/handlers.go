package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/eduwiki/eduwiki/internal/encyclopedia"
	"github.com/eduwiki/eduwiki/internal/search"
)

const (
	defaultFeatured = 6
	maxFeatured     = 50
)

type categoryView struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

type summaryView struct {
	Available bool `json:"available"`
	*encyclopedia.Summary
}

type stringsView struct {
	Language string            `json:"language"`
	Name     string            `json:"name"`
	Strings  map[string]string `json:"strings"`
}

const healthTimeout = 2 * time.Second

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	body := map[string]any{
		"time":     time.Now().UTC().Format(time.RFC3339),
		"sessions": s.sessions.Len(),
	}

	if s.svc.Cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := s.svc.Cache.HealthCheck(ctx); err != nil {
			s.logger.WarnContext(r.Context(), "cache health check failed", "error", err)
			status, code = "degraded", http.StatusServiceUnavailable
			body["cache"] = "unavailable"
		} else {
			body["cache"] = "ok"
		}
	}

	body["status"] = status
	respondJSON(w, code, body)
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("category"); name != "" {
		topics := s.svc.Catalog.Topics(name)
		if topics == nil {
			respondError(w, http.StatusNotFound, "category_not_found", "unknown category: "+name)
			return
		}
		respondJSON(w, http.StatusOK, []categoryView{{Name: name, Topics: topics}})
		return
	}

	cats := s.svc.Catalog.Categories()
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryView{Name: c.Name, Topics: c.Topics})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleFeaturedTopics(w http.ResponseWriter, r *http.Request) {
	n := defaultFeatured
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > maxFeatured {
			respondError(w, http.StatusBadRequest, "validation_error", "n must be between 1 and 50")
			return
		}
		n = parsed
	}
	respondJSON(w, http.StatusOK, s.svc.Catalog.Featured(s.svc.Rand, n))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"results": search.Search(q, s.svc.Catalog),
	})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.svc.Content.Generate(pathParam(r, "topic")))
}

// handleSummary never fails: a topic with no reference summary is reported
// as unavailable.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, ok := s.svc.Lookup.Lookup(r.Context(), pathParam(r, "topic"))
	if !ok {
		respondJSON(w, http.StatusOK, summaryView{Available: false})
		return
	}
	respondJSON(w, http.StatusOK, summaryView{Available: true, Summary: &sum})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.svc.Strings.Languages())
}

func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	code, ok := s.svc.Strings.Normalize(pathParam(r, "lang"))
	if !ok {
		respondError(w, http.StatusNotFound, "unsupported_language", "language is not supported")
		return
	}
	respondJSON(w, http.StatusOK, stringsView{
		Language: code,
		Name:     s.svc.Strings.Name(code),
		Strings:  s.svc.Strings.Strings(code),
	})
}

