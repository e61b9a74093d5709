package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/stats"
	"github.com/jonathan/portfolio-explorer/internal/terminal"
)

const maxBodyBytes = 16 << 10

var validate = validator.New()

// QueryRequest is the request body for /query and /terminal
type QueryRequest struct {
	Query string `json:"query" validate:"max=4096"`
}

// StatsResponse is the response for /stats
type StatsResponse struct {
	stats.Snapshot
	AchievementList      []stats.Achievement `json:"achievementList"`
	UnlockedAchievements int                 `json:"unlockedAchievements"`
}

// FieldsResponse is the response for /fields
type FieldsResponse struct {
	Fields       []string                  `json:"availableFields"`
	ByCategory   []terminal.CategoryFields `json:"fieldsByCategory"`
	QuickActions []terminal.QuickAction    `json:"quickActions"`
	Commands     []terminal.CommandInfo    `json:"commands"`
}

// CategoriesResponse is the response for /categories
type CategoriesResponse struct {
	Categories []terminal.CategoryInfo `json:"categories"`
	Freestyle  terminal.FreestyleInfo  `json:"freestyle"`
}

// decodeQuery reads and validates a QueryRequest body.
func decodeQuery(w http.ResponseWriter, r *http.Request) (QueryRequest, error) {
	var req QueryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, &ErrBadRequest{Message: err.Error()}
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return req, &ErrValidation{Field: "query", Message: fmt.Sprintf("must be at most %s characters", verrs[0].Param())}
		}
		return req, &ErrValidation{Field: "query", Message: err.Error()}
	}
	return req, nil
}

// handleQuery executes a query in the braced syntax. Parse failures are returned as an
// __error payload with status 200.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	req, err := decodeQuery(w, r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res := s.engine.Execute(req.Query)
	if strings.TrimSpace(req.Query) != "" {
		s.tracker.Record(req.Query, res.Metadata)
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleTerminal executes a terminal line. Commands are not recorded in the session.
func (s *Server) handleTerminal(w http.ResponseWriter, r *http.Request) {
	req, err := decodeQuery(w, r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res := s.engine.ExecuteTerminal(req.Query)
	if res.Command == nil && strings.TrimSpace(req.Query) != "" {
		s.tracker.Record(req.Query, res.Metadata)
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleStats returns the session statistics
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	snap := s.tracker.Snapshot()
	s.jsonResponse(w, http.StatusOK, StatsResponse{
		Snapshot:             snap,
		AchievementList:      snap.Achievements.List(),
		UnlockedAchievements: snap.Achievements.Unlocked(),
	})
}

// handleStatsReset clears the session statistics
func (s *Server) handleStatsReset(w http.ResponseWriter, _ *http.Request) {
	s.tracker.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":     "reset",
		"session_id": s.tracker.Snapshot().SessionID,
	})
}

// handleFields lists the public fields and the terminal discovery views
func (s *Server) handleFields(w http.ResponseWriter, _ *http.Request) {
	c := s.engine.Catalog()
	s.jsonResponse(w, http.StatusOK, FieldsResponse{
		Fields:       terminal.AvailableFields(c),
		ByCategory:   terminal.FieldsByCategory(c),
		QuickActions: terminal.QuickActions(),
		Commands:     terminal.CommandList(c),
	})
}

// handleSuggest returns public fields matching ?q=, at most ?limit= of them
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		s.errorResponse(w, &ErrValidation{Field: "q", Message: "is required"})
		return
	}

	limit := catalog.DefaultSuggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			s.errorResponse(w, &ErrValidation{Field: "limit", Message: "must be a number between 1 and 50"})
			return
		}
		limit = n
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query":       term,
		"suggestions": s.engine.Catalog().Suggest(term, limit),
	})
}

// handleCategories describes every category and freestyle mode
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	c := s.engine.Catalog()
	resp := CategoriesResponse{
		Categories: make([]terminal.CategoryInfo, 0, len(catalog.RealCategories)),
		Freestyle:  terminal.DescribeFreestyle(c),
	}
	for _, category := range catalog.RealCategories {
		resp.Categories = append(resp.Categories, terminal.DescribeCategory(c, category))
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCategory describes one category, or freestyle mode
func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category, err := pathCategory(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	c := s.engine.Catalog()
	if category == catalog.Freestyle {
		s.jsonResponse(w, http.StatusOK, terminal.DescribeFreestyle(c))
		return
	}
	s.jsonResponse(w, http.StatusOK, terminal.DescribeCategory(c, category))
}

// handleCategoryField looks up one field. Unknown fields are reported as data with
// type "invalid", not as an HTTP error.
func (s *Server) handleCategoryField(w http.ResponseWriter, r *http.Request) {
	category, err := pathCategory(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Field(category, r.PathValue("field")))
}

func pathCategory(r *http.Request) (catalog.Category, error) {
	name := r.PathValue("category")
	if strings.EqualFold(name, string(catalog.Freestyle)) {
		return catalog.Freestyle, nil
	}
	category, err := catalog.ParseCategory(name)
	if err != nil {
		return "", &ErrNotFound{Resource: "category", Name: name}
	}
	return category, nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		if err := s.healthCheck(r.Context()); err != nil {
			s.errorResponse(w, &ErrUnavailable{Cause: err})
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
