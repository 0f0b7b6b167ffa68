package apperr

import (
	"errors"
	"strings"
)

// ValidationError reports missing or malformed request input. Label carries
// the user-facing summary, Detail the field-level reason.
type ValidationError struct {
	Label  string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NotLinkedError means the Facebook Page has no Instagram Business Account
// attached, which ends the setup flow.
type NotLinkedError struct {
	Detail string
}

func (e *NotLinkedError) Error() string {
	return e.Detail
}

// UpstreamError carries the Graph API error envelope. Code is 0 when the
// failure happened before a response was received.
type UpstreamError struct {
	Message string
	Code    int
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// InvalidImageError means the Graph API rejected the supplied image.
type InvalidImageError struct {
	Detail string
}

func (e *InvalidImageError) Error() string {
	return e.Detail
}

// NotFoundError means no credentials are stored for the requested user.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

// StoreError wraps a persistence failure.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// The Graph API reports image rejections as free text inside a generic error
// envelope, so classification is by substring. Only one marker is known.
var invalidImageMarkers = []string{
	"Image validation failed",
}

// ClassifyUpstream promotes an UpstreamError whose message matches a known
// image-rejection marker to InvalidImageError. Other errors pass through
// unchanged.
func ClassifyUpstream(err error) error {
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		return err
	}
	for _, marker := range invalidImageMarkers {
		if strings.Contains(upstream.Message, marker) {
			return &InvalidImageError{Detail: upstream.Message}
		}
	}
	return err
}
