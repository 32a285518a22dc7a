package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/nijaru/yt-comments/utils"
)

// Report holds the outcome of one analyze run for a session. Each run
// replaces the session's report wholesale; reports are never merged.
type Report struct {
	VideoID      string    `json:"video_id"`
	URL          string    `json:"url"`
	SortMode     string    `json:"sort_mode"`
	Model        string    `json:"model"`
	Instructions string    `json:"instructions,omitempty"`
	Comments     []string  `json:"comments"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *Report) CommentCount() int {
	return len(r.Comments)
}

// EstimatedTokens reports the approximate prompt size of the fetched
// comments, using the 4-chars-per-token heuristic.
func (r *Report) EstimatedTokens() int {
	return utils.EstimateTokens(strings.Join(r.Comments, " "))
}

// ExportText renders the downloadable plain-text report: the summary
// followed by the enumerated raw comments.
func (r *Report) ExportText() string {
	var b strings.Builder
	b.WriteString("# YouTube Comment Analysis\n\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n---\n\n## Raw Comments\n\n")
	for i, comment := range r.Comments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, comment)
	}
	return b.String()
}

// ExportFilename is the suggested download name for the report.
func (r *Report) ExportFilename() string {
	return fmt.Sprintf("youtube_analysis_%s.txt", r.VideoID)
}

// ReportResponse is the API view of a report.
type ReportResponse struct {
	VideoID         string    `json:"video_id"`
	URL             string    `json:"url"`
	SortMode        string    `json:"sort_mode"`
	Model           string    `json:"model"`
	Summary         string    `json:"summary"`
	Comments        []string  `json:"comments"`
	CommentCount    int       `json:"comment_count"`
	EstimatedTokens int       `json:"estimated_tokens"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewReportResponse(r *Report) *ReportResponse {
	return &ReportResponse{
		VideoID:         r.VideoID,
		URL:             r.URL,
		SortMode:        r.SortMode,
		Model:           r.Model,
		Summary:         r.Summary,
		Comments:        r.Comments,
		CommentCount:    r.CommentCount(),
		EstimatedTokens: r.EstimatedTokens(),
		CreatedAt:       r.CreatedAt,
	}
}
