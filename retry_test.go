package netkit

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryExhaustsBudget(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := newTestNetwork()
	cfg := RetryConfig{
		RequestConfig: RequestConfig{URL: server.URL},
		MaxRetries:    3,
		RetryDelay:    50 * time.Millisecond,
	}

	start := time.Now()
	res := ExecuteWithRetry(n, cfg, NewStringSink())
	elapsed := time.Since(start)

	assert.Equal(t, int32(3), attempts.Load(), "MaxRetries is the total attempt budget")
	assert.Equal(t, 500, res.StatusCode, "final attempt's result is returned verbatim")
	assert.False(t, res.IsSuccess())
	assert.GreaterOrEqual(t, elapsed, 2*50*time.Millisecond, "fixed delay between attempts")
}

func TestRetryStopsOnFirstSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unavailable"))
			return
		}
		w.Write([]byte("finally"))
	}))
	defer server.Close()

	n := newTestNetwork()
	cfg := RetryConfig{
		RequestConfig: RequestConfig{URL: server.URL},
		MaxRetries:    5,
		RetryDelay:    10 * time.Millisecond,
	}

	res := ExecuteWithRetry(n, cfg, NewStringSink())

	assert.Equal(t, int32(2), attempts.Load())
	require.True(t, res.IsSuccess())
	assert.Equal(t, "finally", res.Content.String(), "sink is reset between attempts")
}

func TestRetryCustomSuccessCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	n := newTestNetwork()
	cfg := RetryConfig{
		RequestConfig: RequestConfig{URL: server.URL},
		MaxRetries:    1,
		RetryDelay:    10 * time.Millisecond,
		SuccessCodes:  []int{200, 201, 204},
	}

	res := ExecuteWithRetry(n, cfg, NewStringSink())
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 201, res.StatusCode)
}

func TestRetryInvalidURLFailsEveryAttempt(t *testing.T) {
	n := newTestNetwork()
	cfg := RetryConfig{
		RequestConfig: RequestConfig{URL: ""},
		MaxRetries:    2,
		RetryDelay:    10 * time.Millisecond,
	}

	res := ExecuteWithRetry(n, cfg, NewBufferSink())
	assert.True(t, res.HasError)
	assert.Equal(t, 0, res.StatusCode)
}
