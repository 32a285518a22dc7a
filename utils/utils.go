package utils

import (
	"encoding/json"
	"net/http"

	"github.com/nijaru/yt-comments/errors"
	"github.com/sirupsen/logrus"
)

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RespondWithError writes the categorized message and status carried by
// err; plain errors are masked as a generic 500.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeOf(err)
	message := errors.MessageOf(err)

	logrus.WithFields(logrus.Fields{
		"error":  err,
		"status": code,
		"path":   r.URL.Path,
		"method": r.Method,
	}).Error("Request error")

	HandleError(w, message, code)
}

// EstimateTokens gives a rough token count for text (4 chars per token).
func EstimateTokens(text string) int {
	return len(text) / 4
}
