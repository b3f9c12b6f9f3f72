package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/shared/apperr"
)

func TestParseError_SimpleMessage(t *testing.T) {
	e := parseError(http.StatusConflict, []byte(`{"error":"already in cart"}`))
	assert.Equal(t, apperr.Conflict, e.Kind)
	assert.Equal(t, "already in cart", e.Msg)
	assert.True(t, IsConflict(e))
}

func TestParseError_DetailKey(t *testing.T) {
	e := parseError(http.StatusUnauthorized, []byte(`{"detail":"token expired"}`))
	assert.Equal(t, "token expired", e.Msg)
	assert.True(t, IsUnauthorized(e))
}

func TestParseError_FieldMap(t *testing.T) {
	body := []byte(`{"email":["user with this email already exists."],"username":["too short"]}`)
	e := parseError(http.StatusBadRequest, body)

	assert.Equal(t, apperr.Invalid, e.Kind)
	assert.Equal(t, "user with this email already exists.", e.Fields["email"])
	assert.Equal(t, "too short", e.Fields["username"])

	// username outranks email in the well-known ordering
	field, msg, ok := FirstFieldError(e)
	require.True(t, ok)
	assert.Equal(t, "username", field)
	assert.Equal(t, "too short", msg)
}

func TestParseError_NonJSONBody(t *testing.T) {
	e := parseError(http.StatusBadGateway, []byte(`<html>bad gateway</html>`))
	assert.Equal(t, apperr.Internal, e.Kind)
	assert.Empty(t, e.Msg)
}

func TestAddToCart_DuplicateBadRequestIsConflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Item already in cart"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client(), nil)
	err := c.AddToCart(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestFirstFieldError_NotAnAPIError(t *testing.T) {
	_, _, ok := FirstFieldError(assert.AnError)
	assert.False(t, ok)
}
