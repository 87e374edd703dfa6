package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotAuthorized signals a rejected or misconfigured credential
	// (invalid key, exhausted quota, revoked token). Never retried.
	ErrNotAuthorized = errors.New("youtube api credential rejected")

	// ErrVideoNotFound signals that the video does not exist or is not
	// visible to the API.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentsDisabled signals that the video exists but has comments
	// turned off. Callers treat this as a valid empty result.
	ErrCommentsDisabled = errors.New("comments are disabled for this video")
)

// classifyAPIError folds a Data API failure into the error taxonomy.
// Anything not recognized stays a wrapped transient error.
func classifyAPIError(err error) error {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return fmt.Errorf("youtube api request failed: %w", err)
	}

	reason := ""
	if len(gErr.Errors) > 0 {
		reason = gErr.Errors[0].Reason
	}

	switch {
	case reason == "commentsDisabled":
		return ErrCommentsDisabled
	case gErr.Code == http.StatusNotFound || reason == "videoNotFound":
		return ErrVideoNotFound
	case gErr.Code == http.StatusUnauthorized || gErr.Code == http.StatusForbidden,
		gErr.Code == http.StatusBadRequest && reason == "keyInvalid":
		return fmt.Errorf("%w: %v", ErrNotAuthorized, gErr.Message)
	default:
		return fmt.Errorf("youtube api request failed: %w", err)
	}
}
