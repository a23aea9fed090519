// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func echoBody(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		_, _ = w.Write(body)
	})
}

func TestWithGzipRequest_DecompressesBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(gzipBytes(t, `{"name":"Alice"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGzipRequest(echoBody(t)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"name":"Alice"}`, rr.Body.String())
}

func TestWithGzipRequest_PlainBodyUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("plain"))
	rr := httptest.NewRecorder()

	withGzipRequest(echoBody(t)).ServeHTTP(rr, req)

	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGzipRequest_InvalidGzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	withGzipRequest(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid gzip data", detailOf(t, rr))
}

func TestWrappedReadCloser_CloseOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}
