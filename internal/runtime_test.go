package internal_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard/internal"
)

func TestApp_Run(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.String(http.StatusOK, "up")
		})
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	var hookCalls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownTimeout(time.Second),
			internal.ShutdownHook(func(context.Context) error {
				hookCalls.Add(1)
				return nil
			}),
			internal.ShutdownHook(func(context.Context) error {
				hookCalls.Add(1)
				return errors.New("close failed")
			}),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "up", string(body))

	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "close failed")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, int32(2), hookCalls.Load())
}

func TestApp_Run_ListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = internal.New().Run(ln.Addr().String())
	require.Error(t, err)
}
