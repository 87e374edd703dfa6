package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"comment-lens/internal/insights"
	"comment-lens/internal/models"
	"comment-lens/internal/youtube"
)

// Error categories surfaced in structured error responses.
const (
	categoryConfiguration  = "configuration"
	categoryInvalidRequest = "invalid_request"
	categoryNotFound       = "not_found"
	categoryInternal       = "internal"
)

const noCommentsMessage = "No comments found for this video."

type errorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, category, message string) {
	respondWithJSON(w, status, errorResponse{Error: message, Category: category})
}

// requestError marks a request validation failure. It surfaces as a 400 with
// the invalid_request category and its message verbatim.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

// respondWithUpstreamError maps a pipeline error onto the error taxonomy.
// Unknown errors are logged in full and surfaced generically.
func respondWithUpstreamError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		respondWithError(w, http.StatusBadRequest, categoryInvalidRequest, reqErr.Error())
	case errors.Is(err, youtube.ErrUnrecognizedVideoURL):
		respondWithError(w, http.StatusBadRequest, categoryInvalidRequest, err.Error())
	case errors.Is(err, youtube.ErrNotAuthorized):
		respondWithError(w, http.StatusServiceUnavailable, categoryConfiguration,
			"YouTube API access is not configured correctly")
	case errors.Is(err, youtube.ErrVideoNotFound):
		respondWithError(w, http.StatusNotFound, categoryNotFound, "Video not found")
	case errors.Is(err, youtube.ErrCommentsDisabled):
		respondWithError(w, http.StatusNotFound, categoryNotFound,
			"Comments are disabled for this video")
	default:
		log.Printf("ERROR: request failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, categoryInternal,
			"An internal error occurred")
	}
}

// videoIDFromRequest resolves the url query param (full URL or bare ID).
func videoIDFromRequest(r *http.Request) (string, error) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		return "", &requestError{msg: "missing required query parameter: url"}
	}
	return youtube.ExtractVideoID(raw)
}

func (s *Server) maxCommentsFromRequest(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("max_comments")
	if raw == "" {
		return s.config.Analysis.MaxComments, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &requestError{msg: "max_comments must be a non-negative number"}
	}
	return n, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"service": "comment-lens",
		"endpoints": map[string]string{
			"GET /api/health":          "service health and last analysis outcome",
			"GET /api/video-info":      "video statistics (url)",
			"GET /api/comments":        "raw comments (url, max_comments)",
			"GET /api/analyze":         "full analysis (url, max_comments)",
			"POST /api/analyze":        "full analysis over supplied comment JSON",
			"GET /api/sentiment":       "sentiment breakdown (url, max_comments)",
			"GET /api/topics":          "topics, keywords and content ideas (url, max_comments)",
			"GET /api/comments/search": "comment search (url, q, sentiment)",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if !s.monitor.IsHealthy() {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	respondWithJSON(w, code, map[string]interface{}{
		"status":             status,
		"last_run":           s.monitor.StatusSummary(),
		"sentiment_strategy": s.analyzer.StrategyName(),
	})
}

func (s *Server) handleVideoInfo(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDFromRequest(r)
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}

	stats, err := s.stats.VideoStats(r.Context(), videoID)
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	comments, ok := s.fetchComments(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
		"count":    len(comments),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	videoID, err := videoIDFromRequest(r)
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}
	maxComments, err := s.maxCommentsFromRequest(r)
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}

	comments, err := s.comments.FetchAll(r.Context(), videoID, maxComments)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(start))
		respondWithUpstreamError(w, err)
		return
	}

	result, message := s.runAnalysis(r, comments)

	response := map[string]interface{}{"analysis": result}
	if message != "" {
		response["message"] = message
	}
	if stats, err := s.stats.VideoStats(r.Context(), videoID); err == nil {
		response["video"] = stats
	} else {
		s.monitor.RecordPartialFailure(err, time.Since(start))
	}

	s.monitor.RecordSuccess(analysisSummary(result), time.Since(start))
	respondWithJSON(w, http.StatusOK, response)
}

// handleAnalyzeBatch runs the pipeline over a caller-supplied comment set
// instead of fetching from the upstream API.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, categoryInvalidRequest,
			"request body must be JSON with a comments array")
		return
	}

	result, message := s.runAnalysis(r, body.Comments)

	response := map[string]interface{}{"analysis": result}
	if message != "" {
		response["message"] = message
	}

	s.monitor.RecordSuccess(analysisSummary(result), time.Since(start))
	respondWithJSON(w, http.StatusOK, response)
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	comments, ok := s.fetchComments(w, r)
	if !ok {
		return
	}
	result, message := s.runAnalysis(r, comments)

	response := map[string]interface{}{"sentiment": result.SentimentData}
	if message != "" {
		response["message"] = message
	}
	respondWithJSON(w, http.StatusOK, response)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	comments, ok := s.fetchComments(w, r)
	if !ok {
		return
	}
	result, message := s.runAnalysis(r, comments)

	response := map[string]interface{}{
		"topics":        result.TopicData,
		"keywords":      result.Keywords,
		"content_ideas": result.ContentIdeas,
	}
	if message != "" {
		response["message"] = message
	}
	respondWithJSON(w, http.StatusOK, response)
}

// handleSearch filters a video's analyzed comments by text substring and,
// optionally, sentiment label.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, categoryInvalidRequest,
			"missing required query parameter: q")
		return
	}
	sentimentFilter := strings.ToLower(r.URL.Query().Get("sentiment"))

	comments, ok := s.fetchComments(w, r)
	if !ok {
		return
	}
	analyzed := s.analyzer.AnalyzeComments(r.Context(), comments)

	queryLower := strings.ToLower(query)
	matches := []models.Comment{}
	for _, c := range analyzed {
		if !strings.Contains(strings.ToLower(c.Text), queryLower) {
			continue
		}
		if sentimentFilter != "" && c.Sentiment != sentimentFilter {
			continue
		}
		matches = append(matches, c)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"comments": matches,
		"count":    len(matches),
	})
}

// fetchComments resolves the video and pulls its comments, writing the error
// response itself on failure.
func (s *Server) fetchComments(w http.ResponseWriter, r *http.Request) ([]models.Comment, bool) {
	videoID, err := videoIDFromRequest(r)
	if err != nil {
		respondWithUpstreamError(w, err)
		return nil, false
	}
	maxComments, err := s.maxCommentsFromRequest(r)
	if err != nil {
		respondWithUpstreamError(w, err)
		return nil, false
	}

	comments, err := s.comments.FetchAll(r.Context(), videoID, maxComments)
	if err != nil {
		respondWithUpstreamError(w, err)
		return nil, false
	}
	return comments, true
}

// runAnalysis tags sentiment and aggregates. A zero-comment set is a success
// carrying an explanatory message, not an error.
func (s *Server) runAnalysis(r *http.Request, comments []models.Comment) (*models.AnalysisResult, string) {
	analyzed := s.analyzer.AnalyzeComments(r.Context(), comments)
	result := insights.BuildAnalysis(analyzed, s.analysisOptions())

	message := ""
	if len(analyzed) == 0 {
		message = noCommentsMessage
	}
	return result, message
}

func analysisSummary(result *models.AnalysisResult) string {
	return strconv.Itoa(result.BasicStats.TotalComments) + " comments analyzed"
}
