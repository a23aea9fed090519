// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/utils"
)

func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:           &logger.Logger{Logger: zerolog.New(buf)},
		traceIDGenerator: utils.NewUUIDGenerator(),
	}
}

func executeWithTraceID(h *Handler, traceIDHeader string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceIDHeader != "" {
		req.Header.Set("X-Trace-ID", traceIDHeader)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rr, captured := executeWithTraceID(newTraceHandler(&buf), tt.requestTraceID)

			require.NotNil(t, captured, "next must be called")
			assert.Equal(t, http.StatusOK, rr.Code)

			traceID := rr.Header().Get(traceIDHeader)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, traceID)
			} else {
				parsed, err := uuid.Parse(traceID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	rr1, _ := executeWithTraceID(h, "")
	rr2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}
