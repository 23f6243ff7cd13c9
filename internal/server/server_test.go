// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/handler"
	httpHandler "github.com/MKhiriev/plant-pal/internal/handler/http"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/internal/workers"
)

type ctxWorker struct {
	started chan context.Context
}

func (w *ctxWorker) Run(ctx context.Context) {
	w.started <- ctx
}

func testHandlers(cfg config.StructuredConfig) *handler.Handlers {
	return &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := config.StructuredConfig{}
	_, err := NewServer(testHandlers(cfg), nil, cfg.Server, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:8080",
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 3 * time.Second,
	}

	s := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:8080", s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, s.server.ReadTimeout)
	assert.Equal(t, 15*time.Second, s.server.WriteTimeout)
	assert.Equal(t, 3*time.Second, s.shutdownTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}}
	worker := &ctxWorker{started: make(chan context.Context, 1)}

	srv, err := NewServer(testHandlers(cfg), workers.NewWorkers(worker), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	var workerCtx context.Context
	select {
	case workerCtx = <-worker.started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker was not started")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.ErrorIs(t, workerCtx.Err(), context.Canceled)
}

func TestHTTPServer_UpstreamTimeoutStillAnswersJSON(t *testing.T) {
	// scaled down: the model gives up after 100ms and the handler then
	// writes its error body.
	cfg := config.StructuredConfig{Adapter: config.Adapter{
		Gemini:   config.Gemini{Timeout: 100 * time.Millisecond},
		Perenual: config.Perenual{Timeout: 10 * time.Millisecond, RetryDelay: 10 * time.Millisecond},
	}}
	cfg.Server.RequestTimeout = cfg.UpstreamBudget() + 200*time.Millisecond

	slowModel := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(cfg.Adapter.Gemini.Timeout)
		utils.WriteJSONError(w, "advisor is unavailable", http.StatusBadGateway)
	})

	s := newHTTPServer(slowModel, cfg.Server, logger.Nop())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go s.server.Serve(ln)
	defer s.server.Close()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/ai/chat")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"advisor is unavailable"}`, string(body))
}
