package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nijaru/yt-comments/errors"
)

var videoIDPattern = regexp.MustCompile(`v=([^&]+)`)

// ExtractVideoID pulls the video ID out of a YouTube URL. It recognizes
// youtu.be short links (final path segment, query stripped) and watch
// links (the v parameter). Purely syntactic; the ID is not checked
// against YouTube.
func ExtractVideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	if strings.Contains(rawURL, "youtu.be") {
		segments := strings.Split(rawURL, "/")
		id := segments[len(segments)-1]
		if i := strings.Index(id, "?"); i >= 0 {
			id = id[:i]
		}
		if id == "" {
			return "", false
		}
		return id, true
	}

	if match := videoIDPattern.FindStringSubmatch(rawURL); match != nil {
		return match[1], true
	}

	return "", false
}

// ValidateURL performs syntactic URL validation.
func ValidateURL(rawURL string) error {
	const op = "validation.ValidateURL"

	if rawURL == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	rawURL = strings.TrimSpace(rawURL)

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must start with http or https")
	}

	if parsedURL.Host == "" {
		return errors.InvalidInput(op, nil, "URL must have a host")
	}

	return nil
}
