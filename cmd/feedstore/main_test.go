package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_StoreFailure(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mongo-config.yml")
	conf := "store:\n  type: mongo\n  mongo:\n    uri: mongodb://127.0.0.1:1\n    timeout: 200ms\n"
	require.NoError(t, os.WriteFile(configPath, []byte(conf), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open store")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("FEEDSTORE_TEST_DIR", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// pick a free port and override the one from config
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: "testdata/test_config.yml", Listen: addr})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	// create a feed, add items and read them back through the api
	resp, err := http.Post(fmt.Sprintf("http://%s/api/v1/feeds", addr), "application/json",
		strings.NewReader(`{"title":"Blog","rss_url":"https://blog.example.com/rss","link":"https://blog.example.com"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, err = http.Get(fmt.Sprintf("http://%s/api/v1/feed-id?url=https://blog.example.com/rss", addr))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(fmt.Sprintf("http://%s/api/v1/status", addr))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// shutdown
	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode", func(t *testing.T) {
		assert.NotPanics(t, func() { SetupLog(true, false) })
	})
	t.Run("no color", func(t *testing.T) {
		assert.NotPanics(t, func() { SetupLog(false, true) })
	})
	t.Run("default", func(t *testing.T) {
		assert.NotPanics(t, func() { SetupLog(false, false) })
	})
}
