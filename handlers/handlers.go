package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nijaru/yt-comments/comments"
	"github.com/nijaru/yt-comments/config"
	"github.com/nijaru/yt-comments/errors"
	"github.com/nijaru/yt-comments/middleware"
	"github.com/nijaru/yt-comments/models"
	"github.com/nijaru/yt-comments/store"
	"github.com/nijaru/yt-comments/summarize"
	"github.com/nijaru/yt-comments/utils"
	"github.com/nijaru/yt-comments/validation"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const sessionCookieName = "yt_comments_session"

var (
	cfg         *config.Config
	rateLimiter *rate.Limiter
	fetcher     *comments.Service
	summarizer  *summarize.Service
	reportStore *store.Store
)

func InitHandlers(config *config.Config, commentService *comments.Service, summaryService *summarize.Service) {
	cfg = config
	rateLimiter = rate.NewLimiter(rate.Every(cfg.RateLimitInterval), cfg.RateLimit)
	fetcher = commentService
	summarizer = summaryService
	reportStore = store.New()
}

// AnalyzeHandler runs the resolve -> fetch -> summarize pipeline for one
// user action and stores the result as the session's current report.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.AnalyzeHandler"
	logger := middleware.GetLogger(r.Context())
	start := time.Now()

	if r.Method != http.MethodPost {
		utils.RespondWithError(w, r, errors.E(op, nil, "Method not allowed", http.StatusMethodNotAllowed))
		return
	}

	url := r.FormValue("url")
	if err := validateAndRateLimit(r, url); err != nil {
		logger.WithFields(logrus.Fields{
			"url":   url,
			"error": err,
		}).Warn("Validation or rate limit check failed")
		utils.RespondWithError(w, r, err)
		return
	}

	videoID, ok := validation.ExtractVideoID(url)
	if !ok {
		logger.WithField("url", url).Warn("Could not extract video ID")
		utils.RespondWithError(w, r, errors.InvalidInput(op, nil,
			"Invalid YouTube URL. Make sure it's in the format: youtube.com/watch?v=... or youtu.be/..."))
		return
	}

	apiKey := r.FormValue("api_key")
	if apiKey == "" {
		utils.RespondWithError(w, r, errors.Unauthorized(op, nil, "Groq API key is required"))
		return
	}

	model := r.FormValue("model")
	if model == "" {
		model = cfg.DefaultModel
	}

	maxComments, err := parseMaxComments(r.FormValue("max_comments"))
	if err != nil {
		utils.RespondWithError(w, r, err)
		return
	}

	sort := comments.ParseSortMode(r.FormValue("sort_by"))
	instructions := r.FormValue("instructions")

	logger.WithFields(logrus.Fields{
		"video_id":     videoID,
		"sort":         sort.String(),
		"max_comments": maxComments,
		"model":        model,
	}).Info("Starting comment analysis")

	ctx, cancel := context.WithTimeout(r.Context(), cfg.AnalyzeTimeout)
	defer cancel()

	batch, err := fetcher.Fetch(ctx, videoID, maxComments, sort)
	if err != nil {
		logger.WithError(err).WithField("video_id", videoID).Error("Comment fetch failed")
		utils.RespondWithError(w, r, err)
		return
	}

	summary, err := summarizer.Summarize(ctx, apiKey, model, batch, instructions)
	if err != nil {
		logger.WithError(err).WithField("video_id", videoID).Error("Summarization failed")
		utils.RespondWithError(w, r, err)
		return
	}

	report := &models.Report{
		VideoID:      videoID,
		URL:          url,
		SortMode:     sort.String(),
		Model:        model,
		Instructions: instructions,
		Comments:     batch,
		Summary:      summary,
		CreatedAt:    time.Now().UTC(),
	}
	reportStore.Put(sessionID(w, r), report)

	logger.WithFields(logrus.Fields{
		"video_id":      videoID,
		"comment_count": report.CommentCount(),
		"duration":      time.Since(start),
	}).Info("Analysis completed successfully")

	sendJSONResponse(w, models.NewReportResponse(report))
}

// ReportHandler returns the session's current report.
func ReportHandler(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ReportHandler"

	if r.Method != http.MethodGet {
		utils.RespondWithError(w, r, errors.E(op, nil, "Method not allowed", http.StatusMethodNotAllowed))
		return
	}

	report, err := sessionReport(r, op)
	if err != nil {
		utils.RespondWithError(w, r, err)
		return
	}

	sendJSONResponse(w, models.NewReportResponse(report))
}

// ExportHandler serves the session's report as a plain-text download.
func ExportHandler(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ExportHandler"
	logger := middleware.GetLogger(r.Context())

	if r.Method != http.MethodGet {
		utils.RespondWithError(w, r, errors.E(op, nil, "Method not allowed", http.StatusMethodNotAllowed))
		return
	}

	report, err := sessionReport(r, op)
	if err != nil {
		utils.RespondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFilename()))

	if _, err := w.Write([]byte(report.ExportText())); err != nil {
		logger.WithError(err).Error("Failed to write export")
	}
}

// ResetHandler clears the session's report so a new video can be
// analyzed from a clean slate.
func ResetHandler(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ResetHandler"

	if r.Method != http.MethodPost {
		utils.RespondWithError(w, r, errors.E(op, nil, "Method not allowed", http.StatusMethodNotAllowed))
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		reportStore.Delete(cookie.Value)
	}

	sendJSONResponse(w, map[string]string{"status": "reset"})
}

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.HealthCheckHandler"

	if r.Method != http.MethodGet {
		utils.RespondWithError(w, r, errors.E(op, nil, "Method not allowed", http.StatusMethodNotAllowed))
		return
	}

	sendJSONResponse(w, map[string]string{"status": "ok"})
}

func validateAndRateLimit(r *http.Request, url string) error {
	const op = "handlers.validateAndRateLimit"

	if err := validation.ValidateURL(url); err != nil {
		return err
	}

	if !rateLimiter.Allow() {
		return errors.RateLimitExceeded(op)
	}

	return nil
}

func parseMaxComments(raw string) (int, error) {
	const op = "handlers.parseMaxComments"

	if raw == "" {
		return cfg.MaxComments, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.InvalidInput(op, err, "max_comments must be a positive integer")
	}
	if n > cfg.MaxCommentsCap {
		n = cfg.MaxCommentsCap
	}
	return n, nil
}

func sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func sessionReport(r *http.Request, op string) (*models.Report, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, errors.NotFound(op, nil, "No analysis report for this session")
	}

	report, ok := reportStore.Get(cookie.Value)
	if !ok {
		return nil, errors.NotFound(op, nil, "No analysis report for this session")
	}

	return report, nil
}

func sendJSONResponse(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}
