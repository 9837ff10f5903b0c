package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("Chat not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, NotFound("Chat not found")))
	assert.False(t, errors.Is(err, NotFound("Report not found")))
}

func TestFromClassifiesUnknown(t *testing.T) {
	cause := errors.New("connection reset")
	ae := From(cause)

	assert.Equal(t, KindInternal, ae.Kind)
	assert.Equal(t, http.StatusInternalServerError, ae.Status())
	assert.ErrorIs(t, ae, cause)
}

func TestStatusFor(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindUpstream:     http.StatusBadGateway,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusFor(kind), string(kind))
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Invalid chat ID", Validation("Invalid chat ID").Error())
	assert.Equal(t, "save failed: disk full", Internal("save failed", errors.New("disk full")).Error())
}
