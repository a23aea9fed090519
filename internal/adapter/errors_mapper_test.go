// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respondWith performs a real round trip to a server answering status/body.
func respondWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestDetailFromBody(t *testing.T) {
	assert.Equal(t, "Employee not found", detailFromBody([]byte(`{"detail":"Employee not found"}`)))
	assert.Equal(t, "plain text", detailFromBody([]byte(" plain text\n")))
	assert.Equal(t, "", detailFromBody(nil))
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusBadRequest, `{"detail":"Employee ID already exists"}`, ErrConflict},
		{http.StatusBadRequest, `{"detail":"invalid JSON was passed"}`, ErrBadRequest},
		{http.StatusUnauthorized, `{"detail":"Not authenticated"}`, ErrUnauthorized},
		{http.StatusNotFound, `{"detail":"Employee not found"}`, ErrNotFound},
		{http.StatusUnprocessableEntity, `{"detail":"skill: field required"}`, ErrValidation},
		{http.StatusInternalServerError, `{"detail":"Internal Server Error"}`, ErrInternalServerError},
		{http.StatusServiceUnavailable, `{"detail":"storage is unavailable"}`, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srvResp := respondWith(t, tt.status, tt.body)
			assert.ErrorIs(t, mapHTTPError(srvResp), tt.want)
		})
	}
}

func TestMapHTTPError_SuccessAndUnknown(t *testing.T) {
	assert.NoError(t, mapHTTPError(respondWith(t, http.StatusOK, `{}`)))

	err := mapHTTPError(respondWith(t, http.StatusTeapot, ``))
	assert.EqualError(t, err, "http 418: I'm a teapot")
}
