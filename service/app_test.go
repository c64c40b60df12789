package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"inkpress/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs Serve on a free port and returns its base URL and a
// function that stops it and returns Serve's result.
func startServer(t *testing.T, cfg *config.Config) (string, func() error) {
	t.Helper()
	cfg.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, cfg, func(addr string) { addrCh <- addr })
	}()

	select {
	case addr := <-addrCh:
		return "http://" + addr, func() error {
			cancel()
			select {
			case err := <-errCh:
				return err
			case <-time.After(10 * time.Second):
				t.Fatal("server did not shut down")
				return nil
			}
		}
	case err := <-errCh:
		cancel()
		t.Fatalf("server failed to start: %v", err)
	case <-time.After(10 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}
	return "", nil
}

func TestServeSeedsAndServesPosts(t *testing.T) {
	_, cfg := setupTestConfig(t, config.BackendFile)
	cfg.Storage.Seed = true

	baseURL, stop := startServer(t, cfg)

	resp, err := http.Get(baseURL + "/api/posts")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
		Total   int               `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 3)
	assert.Equal(t, 3, body.Total)

	feed, err := http.Get(baseURL + "/feed")
	require.NoError(t, err)
	feed.Body.Close()
	assert.Equal(t, http.StatusOK, feed.StatusCode)

	assert.NoError(t, stop())
}

func TestServeWithoutSeed(t *testing.T) {
	_, cfg := setupTestConfig(t, config.BackendSQLite)
	cfg.Server.APIPrefix = "/v1"

	baseURL, stop := startServer(t, cfg)

	resp, err := http.Get(baseURL + "/v1/posts")
	require.NoError(t, err)
	var body struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.Total)

	resp, err = http.Get(baseURL + "/api/posts")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.NoError(t, stop())
}

func TestServeGracefulShutdown(t *testing.T) {
	_, cfg := setupTestConfig(t, config.BackendBadger)
	baseURL, stop := startServer(t, cfg)

	require.NoError(t, stop())

	client := &http.Client{Timeout: time.Second}
	_, err := client.Get(baseURL + "/api/posts")
	assert.Error(t, err, "server should not accept connections after shutdown")
}

func TestServeListenError(t *testing.T) {
	_, cfg := setupTestConfig(t, config.BackendFile)
	cfg.Server.Addr = "256.0.0.1:bad"

	err := Serve(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen on")
}
