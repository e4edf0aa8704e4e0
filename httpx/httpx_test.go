package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomq.dev/merrors"
	"gomq.dev/merrors/apis"
	"gomq.dev/merrors/kind"
	"gomq.dev/merrors/mapper"
	"gomq.dev/merrors/scope"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	return Writer{Mapper: m}
}

func TestWriter_Write(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	e := merrors.E(kind.AddressAlreadyInUse, "tcp://*:5555 already bound",
		merrors.WithScopeOption(scope.MustParse("socket.bind")),
	)
	w.Write(rec, e, Meta{Correlation: "req-7"})

	assert.Equal(t, 409, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-7", rec.Header().Get("X-Correlation-Id"))

	var view apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "address_in_use", view.Kind)
	assert.Equal(t, "socket.bind", view.Scope)
	assert.Equal(t, "tcp://*:5555 already bound", view.Message)
}

func TestWriter_RetryAfter(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, merrors.New(kind.TryAgain), Meta{RetryAfterSeconds: 3})

	assert.Equal(t, 503, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
}

func TestWriter_CauseNeverLeaks(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	e := merrors.Wrap(assertableCause{}, "send failed")
	w.Write(rec, e, Meta{})

	assert.NotContains(t, rec.Body.String(), "fd=12")
}

func TestWriter_NilError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, nil, Meta{})
	assert.Equal(t, 200, rec.Code) // nothing written
	assert.Zero(t, rec.Body.Len())
}

type assertableCause struct{}

func (assertableCause) Error() string { return "epoll_wait fd=12: interrupted" }
