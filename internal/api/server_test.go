package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/testutil"
)

func TestServerServesAndShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "up")
	})
	server := NewServer(handler, DefaultServerConfig(), testutil.NopLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "up", string(body))

	require.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestDefaultServerConfigAllowsSlowModels(t *testing.T) {
	cfg := DefaultServerConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Greater(t, cfg.WriteTimeout.Seconds(), 180.0)
	assert.Equal(t, ":8080", NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger()).Addr())
}
