// Package compare holds the side-by-side comparison rules: input
// validation, bar normalization and winner selection.
package compare

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/fairfound/internal/domain/types"
)

// User-facing validation messages.
const (
	MsgMissingURL = "Please enter both profile URLs"
	MsgInvalidURL = "Please enter valid URLs"
)

// ValidationError reports input the user has to correct before a
// comparison can be requested.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is matches the sentinel for the validation reason.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMissingURL:
		return e.Reason == reasonMissing
	case ErrInvalidURL:
		return e.Reason == reasonInvalid
	}
	return false
}

const (
	reasonMissing = "missing_url"
	reasonInvalid = "invalid_url"
)

// schemes that require a host, mirroring WHATWG "special" schemes.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// maxPort is the largest valid TCP port.
const maxPort = 65535

// IsValidURL reports whether raw is a well-formed absolute URL: it parses
// with a scheme, special schemes carry a host, and any port is in range.
// Percent escapes must be valid and special schemes need the "//" form, so
// a few inputs a browser would repair are rejected.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Hostname() == "" {
		return false
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n > maxPort {
			return false
		}
	}
	return true
}

// Validate trims both inputs and checks them. It returns the trimmed URLs
// or a *ValidationError.
func Validate(url1, url2 string) (string, string, error) {
	url1 = strings.TrimSpace(url1)
	url2 = strings.TrimSpace(url2)
	if url1 == "" || url2 == "" {
		return "", "", &ValidationError{Reason: reasonMissing, Message: MsgMissingURL}
	}
	if !IsValidURL(url1) || !IsValidURL(url2) {
		return "", "", &ValidationError{Reason: reasonInvalid, Message: MsgInvalidURL}
	}
	return url1, url2, nil
}

// AsValidation extracts a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Bars returns each side's bar width as a percentage of the larger value.
// The larger side is always 100; two zero values yield zero widths.
func Bars(m types.Metric) (float64, float64) {
	maxVal := max(m.Value1, m.Value2)
	if maxVal <= 0 {
		return 0, 0
	}
	return m.Value1 / maxVal * 100, m.Value2 / maxVal * 100
}

// Winner returns the name of the side with the equal-or-greater score.
func Winner(name1, name2 string, score1, score2 float64) string {
	if score1 >= score2 {
		return name1
	}
	return name2
}

// CheckPayload verifies that a comparison received from the backend can
// be rendered.
func CheckPayload(c types.Comparison) error {
	switch {
	case strings.TrimSpace(c.Freelancer1.Name) == "":
		return fmt.Errorf("%w: missing freelancer1 name", ErrMalformed)
	case strings.TrimSpace(c.Freelancer2.Name) == "":
		return fmt.Errorf("%w: missing freelancer2 name", ErrMalformed)
	case len(c.Metrics) == 0:
		return fmt.Errorf("%w: no metrics", ErrMalformed)
	}
	for _, m := range c.Metrics {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("%w: metric without label", ErrMalformed)
		}
	}
	return nil
}
