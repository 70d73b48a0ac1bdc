package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/internal/availability"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

// ParseQueryInt parses an optional numeric query parameter within bounds.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("query parameter %s must be numeric", key))
	}
	if value < min || value > max {
		return 0, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("query parameter %s must be between %d and %d", key, min, max))
	}
	return value, nil
}

// ParseQueryDate parses an optional date query parameter.
func ParseQueryDate(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := availability.ParseDate(raw)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("query parameter %s must be a date (YYYY-MM-DD)", key))
	}
	return &parsed, nil
}

// ParseQueryUUID parses an optional uuid query parameter.
func ParseQueryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("query parameter %s must be a valid uuid", key))
	}
	return &id, nil
}

// ParseQueryWindow parses the optional startDate/endDate pair. Both must be
// present together; a lone endpoint is a validation failure.
func ParseQueryWindow(r *http.Request) (*availability.Interval, error) {
	start, err := ParseQueryDate(r, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := ParseQueryDate(r, "endDate")
	if err != nil {
		return nil, err
	}
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, apperrors.New(apperrors.CodeValidation, "startDate and endDate must be provided together")
	}
	window, err := availability.NewInterval(*start, *end)
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// ParsePagination reads the page/limit query parameters.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", 1, 1, 1_000_000)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}
