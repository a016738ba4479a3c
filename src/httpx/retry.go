// Package httpx provides the retrying HTTP transport shared by the remote
// engine and the search backends.
package httpx

import (
	"context"
	"io"
	"net/http"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var RetryBaseDelay = 4 * time.Second

const (
	defaultMaxAttempts = 3
	maxBackoff         = 10 * time.Second
)

// DoWithRetry executes an HTTP request and retries on HTTP 429 and 5xx
// responses with exponential backoff: the delay starts at RetryBaseDelay
// (4 s), doubles each attempt, and is capped at 10 s. When maxAttempts is 0
// the default (3) is used.
//
// Requests with a body must carry GetBody (http.NewRequest sets it for the
// common reader types) so the body can be replayed. On each retryable
// response the body is drained and closed before sleeping. If the context is
// cancelled during a backoff wait the function returns ctx.Err(). After
// exhausting attempts the last response is returned as-is so the caller can
// inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxAttempts int) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(ctx)
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			attemptReq.Body = body
		}

		resp, err := client.Do(attemptReq)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		// Last attempt: return the response as-is.
		if attempt >= maxAttempts-1 {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := RetryBaseDelay << attempt
		if backoff > maxBackoff {
			backoff = maxBackoff
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
