package utils

import (
	"strconv"
	"strings"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/repository"
)

// ParsePagination reads page/limit query values. Empty values take the
// defaults; anything else must be a positive integer.
func ParsePagination(pageRaw, limitRaw string) (repository.Page, error) {
	page, err := positiveInt(pageRaw, repository.DefaultPage, "page")
	if err != nil {
		return repository.Page{}, err
	}
	limit, err := positiveInt(limitRaw, repository.DefaultLimit, "limit")
	if err != nil {
		return repository.Page{}, err
	}
	if limit > repository.MaxLimit {
		return repository.Page{}, apperr.Validation("limit must not exceed " + strconv.Itoa(repository.MaxLimit))
	}
	return repository.Page{Number: page, Limit: limit}, nil
}

func positiveInt(raw string, fallback int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.Validation(name + " must be a positive integer")
	}
	return n, nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation("invalid date: " + strconv.Quote(raw))
}

// EndOfDayIfDateOnly widens a YYYY-MM-DD bound to the end of that day so an
// inclusive upper bound covers the whole day.
func EndOfDayIfDateOnly(raw string, t time.Time) time.Time {
	if len(strings.TrimSpace(raw)) == len("2006-01-02") {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
