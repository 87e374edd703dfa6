package youtube

import (
	"errors"
	"regexp"
)

// ErrUnrecognizedVideoURL signals input that is neither a known YouTube URL
// shape nor a bare 11-character video ID.
var ErrUnrecognizedVideoURL = errors.New("not a recognized YouTube URL or video ID")

var videoIDPatterns = []*regexp.Regexp{
	// watch, short-link, embed and plain /v/ paths
	regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of any of the known
// YouTube URL shapes, or accepts a bare ID. Every entry point resolves its
// input through this one function.
func ExtractVideoID(input string) (string, error) {
	if input == "" {
		return "", ErrUnrecognizedVideoURL
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}

	if bareVideoID.MatchString(input) {
		return input, nil
	}

	return "", ErrUnrecognizedVideoURL
}
