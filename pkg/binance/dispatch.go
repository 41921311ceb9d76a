package binance

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"

	"spotdata/internal/transport"
	"spotdata/pkg/core"
)

// Call represents one in-flight API request. It completes exactly once,
// with either a value or an error, never both. Completion happens on the
// dispatch goroutine, never synchronously with the issuing caller.
type Call[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newCall[T any]() *Call[T] {
	return &Call[T]{done: make(chan struct{})}
}

// complete records the outcome. Repeated calls are no-ops, which makes the
// at-most-one completion contract structural rather than conventional.
func (c *Call[T]) complete(value T, err error) {
	c.once.Do(func() {
		c.value = value
		c.err = err
		close(c.done)
	})
}

// Done returns a channel that is closed when the call completes.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Result blocks until the call completes or the context is cancelled, then
// returns the outcome. A context error does not complete the call; the
// in-flight request keeps its own deadline from the transport.
func (c *Call[T]) Result(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.value, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// failedCall returns an already-completed Call carrying the given error.
// Used for failures detected before dispatch, such as a malformed URL.
func failedCall[T any](err error) *Call[T] {
	call := newCall[T]()
	var zero T
	call.complete(zero, err)
	return call
}

// apiError is the wire shape of a Binance error body.
type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// dispatch sends the request on its own goroutine and decodes the body
// with the given decode function. Outcome routing:
//
//	transport failure      -> Network error wrapping the cause
//	status >= 400          -> UnexpectedStatus, enriched with the exchange
//	                          error body when one parses
//	empty body             -> NoResponse (the reference implementation
//	                          dropped these silently; reported here instead)
//	decode failure         -> whatever decode returns, normally Decode
//	otherwise              -> the decoded value
//
// No state is shared between concurrent dispatches.
func dispatch[T any](ctx context.Context, c *Client, req *core.Request, decode func([]byte) (T, error)) *Call[T] {
	call := newCall[T]()
	var zero T

	go func() {
		resp, err := c.transport.Get(ctx, req.URL, transportOptions(req)...)
		if err != nil {
			call.complete(zero, &core.APIError{
				Type:    core.ErrorTypeNetwork,
				Message: "http get",
				Cause:   err,
			})
			return
		}
		if resp == nil {
			call.complete(zero, &core.APIError{
				Type:    core.ErrorTypeNoResponse,
				Message: "no response received",
			})
			return
		}

		body := resp.Bytes()

		if resp.StatusCode() >= http.StatusBadRequest {
			call.complete(zero, statusError(resp.StatusCode(), body))
			return
		}

		if len(body) == 0 {
			call.complete(zero, &core.APIError{
				Type:       core.ErrorTypeNoResponse,
				StatusCode: resp.StatusCode(),
				Message:    "empty response body",
			})
			return
		}

		value, err := decode(body)
		call.complete(value, err)
	}()

	return call
}

// dispatchStatus sends the request and resolves on status code alone.
// Status 200 completes with success; any other status completes with an
// UnexpectedStatus error carrying that exact code.
func dispatchStatus(ctx context.Context, c *Client, req *core.Request) *Call[struct{}] {
	call := newCall[struct{}]()
	none := struct{}{}

	go func() {
		resp, err := c.transport.Get(ctx, req.URL, transportOptions(req)...)
		if err != nil {
			call.complete(none, &core.APIError{
				Type:    core.ErrorTypeNetwork,
				Message: "http get",
				Cause:   err,
			})
			return
		}
		if resp == nil {
			call.complete(none, &core.APIError{
				Type:    core.ErrorTypeNoResponse,
				Message: "no response received",
			})
			return
		}

		if resp.StatusCode() != http.StatusOK {
			call.complete(none, core.NewStatusError(resp.StatusCode()))
			return
		}

		call.complete(none, nil)
	}()

	return call
}

// decodeJSON returns a decode function unmarshaling the body into T with
// sonic. A structural mismatch yields a Decode error, never a panic.
func decodeJSON[T any]() func([]byte) (T, error) {
	return func(body []byte) (T, error) {
		var value T
		if err := sonic.Unmarshal(body, &value); err != nil {
			var zero T
			return zero, core.NewDecodeError(err)
		}
		return value, nil
	}
}

// decodeRaw unmarshals the body into the wire type R and normalizes it to
// the canonical type T. Decode failures surface as Decode errors; the
// normalize function reports structural problems as it sees fit.
func decodeRaw[R any, T any](body []byte, normalize func(*R) (T, error)) (T, error) {
	var raw R
	if err := sonic.Unmarshal(body, &raw); err != nil {
		var zero T
		return zero, core.NewDecodeError(err)
	}
	return normalize(&raw)
}

// decodeServerTime decodes the /time body as a string-to-integer mapping
// and extracts the serverTime key. A missing key is an InvalidBody error
// with the raw bytes preserved.
func decodeServerTime(body []byte) (int64, error) {
	var fields map[string]int64
	if err := sonic.Unmarshal(body, &fields); err != nil {
		return 0, core.NewDecodeError(err)
	}

	ts, ok := fields["serverTime"]
	if !ok {
		return 0, core.NewBodyError("missing serverTime key", body)
	}
	return ts, nil
}

// statusError builds the error for a >= 400 response, preferring the
// exchange's structured {code,msg} body when it parses.
func statusError(statusCode int, body []byte) *core.APIError {
	var exErr apiError
	if err := sonic.Unmarshal(body, &exErr); err == nil && exErr.Code != 0 {
		return &core.APIError{
			Type:       core.ErrorTypeUnexpectedStatus,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("%s (code %d)", exErr.Msg, exErr.Code),
			Raw:        body,
		}
	}
	return core.NewStatusError(statusCode)
}

func transportOptions(req *core.Request) []transport.RequestOption {
	var opts []transport.RequestOption
	for k, v := range req.Headers {
		opts = append(opts, transport.WithHeader(k, v))
	}
	return opts
}
