// Package comments fetches a bounded batch of YouTube comments from a
// lazily-paged external source.
package comments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/nijaru/yt-comments/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
)

// SortMode selects the order in which the source yields comments.
type SortMode int

const (
	SortPopular SortMode = iota
	SortNewest
)

func (m SortMode) String() string {
	if m == SortNewest {
		return "newest"
	}
	return "popular"
}

// ParseSortMode maps a user-supplied sort selector to a SortMode,
// defaulting to popular-first.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest", "new", "time", "1":
		return SortNewest
	default:
		return SortPopular
	}
}

// Comment is a single comment record from the source. Text is the only
// field consumed downstream.
type Comment struct {
	Text      string
	Author    string
	LikeCount int64
}

// ErrStreamEnd is returned by Stream.Next when the source is exhausted.
var ErrStreamEnd = errors.New("comments: no more comments")

// Stream is a pull-based comment sequence. The consumer stops a stream
// by simply not calling Next again; implementations must not fetch
// ahead of demand beyond one page.
type Stream interface {
	Next(ctx context.Context) (*Comment, error)
}

// Source opens comment streams for videos.
type Source interface {
	Open(ctx context.Context, videoID string, sort SortMode) (Stream, error)
}

type Service struct {
	source Source
	logger *logrus.Logger
}

func NewService(source Source) *Service {
	return &Service{
		source: source,
		logger: logrus.StandardLogger(),
	}
}

// Fetch collects up to maxComments comment texts for the video, in
// source order. It consumes the stream one record at a time and stops
// requesting as soon as the cap is reached, so unbounded comment
// sections are never drained. A fetch that collects nothing is a
// failure, not an empty success.
func (s *Service) Fetch(ctx context.Context, videoID string, maxComments int, sort SortMode) ([]string, error) {
	const op = "CommentService.Fetch"
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"video_id":     videoID,
		"sort":         sort.String(),
		"max_comments": maxComments,
	})

	if videoID == "" {
		return nil, apperrors.InvalidInput(op, nil, "Video ID is required")
	}
	if maxComments <= 0 {
		return nil, apperrors.InvalidInput(op, nil, "Max comments must be greater than 0")
	}

	stream, err := s.source.Open(ctx, videoID, sort)
	if err != nil {
		logger.WithError(err).Error("Failed to open comment stream")
		return nil, classifyFetchError(op, err)
	}

	texts := make([]string, 0, maxComments)
	for len(texts) < maxComments {
		comment, err := stream.Next(ctx)
		if errors.Is(err, ErrStreamEnd) {
			break
		}
		if err != nil {
			logger.WithError(err).Error("Comment stream failed")
			return nil, classifyFetchError(op, err)
		}
		texts = append(texts, comment.Text)
	}

	if len(texts) == 0 {
		logger.Info("No comments collected")
		return nil, apperrors.NotFound(op, nil, "No comments found. The video might have comments disabled or be private.")
	}

	logger.WithField("count", len(texts)).Info("Fetched comments")
	return texts, nil
}

// classifyFetchError converts a source fault into one of the closed set
// of user-facing fetch failures. Structured API errors are preferred;
// message sniffing is kept as a fallback for sources that only report
// text.
func classifyFetchError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusNotFound:
			return apperrors.NotFound(op, err, "Video not found or is private/unavailable.")
		case apiErr.Code == http.StatusForbidden && hasReason(apiErr, "commentsDisabled"):
			return apperrors.Forbidden(op, err, "Comments are disabled for this video.")
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "Video unavailable") || strings.Contains(lower, "videonotfound"):
		return apperrors.NotFound(op, err, "Video not found or is private/unavailable.")
	case strings.Contains(lower, "comments are disabled") || strings.Contains(lower, "commentsdisabled"):
		return apperrors.Forbidden(op, err, "Comments are disabled for this video.")
	default:
		return apperrors.BadGateway(op, err, fmt.Sprintf("Error fetching comments: %s", msg))
	}
}

func hasReason(err *googleapi.Error, reason string) bool {
	for _, item := range err.Errors {
		if item.Reason == reason {
			return true
		}
	}
	return false
}
