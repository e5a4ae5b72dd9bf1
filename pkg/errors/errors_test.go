package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrPageNotFound, "no page for command")
	assert.Equal(t, ErrPageNotFound, err.Code)
	assert.Equal(t, "[PAGE_NOT_FOUND] no page for command", err.Error())
}

func TestWrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(inner, ErrNetwork, "fetching page archive")

	assert.Equal(t, ErrNetwork, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrNetwork, "should stay nil"))
	assert.Nil(t, Wrapf(nil, ErrNetwork, "should stay %s", "nil"))
}

func TestIs(t *testing.T) {
	err := Newf(ErrCacheAccess, "cannot stat %s", "index.json")

	assert.True(t, errors.Is(err, New(ErrCacheAccess, "any message")))
	assert.False(t, errors.Is(err, New(ErrNetwork, "any message")))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	err := New(ErrPageNotFound, "missing")
	wrapped := fmt.Errorf("resolving: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrPageNotFound))
	assert.False(t, IsErrorCode(wrapped, ErrNetwork))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrPageNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrExtraction, GetErrorCode(New(ErrExtraction, "bad zip")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPageNotFound, "missing").
		WithDetail("command", "tar").
		WithDetail("platform", "linux")

	assert.Equal(t, "tar", err.Details["command"])
	assert.Equal(t, "linux", err.Details["platform"])
}
