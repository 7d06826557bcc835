package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps client-visible HTTP statuses to their sentinel errors.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	if isVersionMismatch(status) {
		return fmt.Errorf("%w: http %d: %s", ErrVersionUnsupported, status, body)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	return fmt.Errorf("http %d: %s", status, body)
}

// isVersionMismatch reports whether the status marks a server without the
// typed REST API: older deployments answer 404 for routes they do not serve,
// newer ones use 426 or 501 to demand the legacy transport.
func isVersionMismatch(status int) bool {
	switch status {
	case http.StatusNotFound, http.StatusUpgradeRequired, http.StatusNotImplemented:
		return true
	}
	return false
}
