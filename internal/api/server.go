// Package api exposes the comment analysis pipeline over a REST surface.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"comment-lens/internal/insights"
	"comment-lens/internal/models"
	"comment-lens/shared/config"
	"comment-lens/shared/monitoring"
)

// CommentService pulls a video's comment corpus from the upstream API.
type CommentService interface {
	FetchAll(ctx context.Context, videoID string, maxResults int) ([]models.Comment, error)
}

// StatsService fetches a video's public statistics snapshot.
type StatsService interface {
	VideoStats(ctx context.Context, videoID string) (*models.VideoStatistics, error)
}

// SentimentAnalyzer tags comments with sentiment labels and sub-scores.
type SentimentAnalyzer interface {
	AnalyzeComments(ctx context.Context, comments []models.Comment) []models.Comment
	StrategyName() string
}

// Server hosts the REST API.
type Server struct {
	config     *config.Config
	router     *mux.Router
	httpServer *http.Server

	comments CommentService
	stats    StatsService
	analyzer SentimentAnalyzer
	monitor  *monitoring.Monitor
}

// NewServer wires the handler dependencies into a ready-to-start server.
func NewServer(cfg *config.Config, comments CommentService, stats StatsService, analyzer SentimentAnalyzer, monitor *monitoring.Monitor) *Server {
	s := &Server{
		config:   cfg,
		router:   mux.NewRouter(),
		comments: comments,
		stats:    stats,
		analyzer: analyzer,
		monitor:  monitor,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.loggingMiddleware)
	s.router.Use(jsonContentTypeMiddleware)

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/video-info", s.handleVideoInfo).Methods("GET")
	api.HandleFunc("/comments", s.handleComments).Methods("GET")
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("GET")
	api.HandleFunc("/analyze", s.handleAnalyzeBatch).Methods("POST")
	api.HandleFunc("/sentiment", s.handleSentiment).Methods("GET")
	api.HandleFunc("/topics", s.handleTopics).Methods("GET")
	api.HandleFunc("/comments/search", s.handleSearch).Methods("GET")
}

// Router exposes the route table for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving and blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting API server on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	log.Println("Shutting down API server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) analysisOptions() insights.Options {
	return insights.Options{
		TopKeywords: s.config.Analysis.TopKeywords,
		MaxIdeas:    s.config.Analysis.MaxIdeas,
	}
}
