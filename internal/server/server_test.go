// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-service/internal/config"
	myHTTP "github.com/MKhiriev/go-employee-service/internal/handler/http"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/service"
)

func newTestHandler() *myHTTP.Handler {
	return myHTTP.NewHandler(&service.Services{}, config.Server{}, logger.Nop())
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NilHandler(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandler(), config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// unknown route answers 404 once the listener is up
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	s, err := NewServer(newTestHandler(), config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop())
	require.NoError(t, err)

	err = s.Run(context.Background())

	assert.Error(t, err)
}
