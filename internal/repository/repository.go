package repository

import (
	"errors"

	"healthmate/internal/apperr"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

func (p Page) normalized() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	n := p.normalized()
	return db.Offset((n.Number - 1) * n.Limit).Limit(n.Limit)
}

// TotalPages rounds up; zero records means zero pages.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func translate(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFoundMsg)
	default:
		return err
	}
}
