package spacex

import (
	"fmt"
	"strings"
)

// maxResponseTextDisplay caps how much of an upstream response body is
// reproduced in error messages.
const maxResponseTextDisplay = 200

// APIError is the uniform error for upstream API failures: non-2xx status,
// timeout, network failure or an undecodable body.
type APIError struct {
	Message      string
	StatusCode   int
	URL          string
	ResponseText string
	Err          error
}

func (e *APIError) Error() string {
	details := []string{fmt.Sprintf("message: %s", e.Message)}
	if e.StatusCode != 0 {
		details = append(details, fmt.Sprintf("status code: %d", e.StatusCode))
	}
	if e.URL != "" {
		details = append(details, fmt.Sprintf("url: %s", e.URL))
	}
	if e.ResponseText != "" {
		text := e.ResponseText
		// Truncate by characters, not bytes, so a multi-byte rune is
		// never split mid-sequence.
		if runes := []rune(text); len(runes) > maxResponseTextDisplay {
			text = string(runes[:maxResponseTextDisplay]) + "..."
		}
		details = append(details, fmt.Sprintf("response text: %s", text))
	}
	if e.Err != nil {
		details = append(details, fmt.Sprintf("cause: %v", e.Err))
	}
	return "external API error: " + strings.Join(details, "; ")
}

func (e *APIError) Unwrap() error {
	return e.Err
}
