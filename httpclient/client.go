// Package httpclient shows how thin a wrapper over net/http can stay: a
// base URL, a client, JSON in and out. The chat and weather services are
// pass-throughs over this wrapper; neither retries, pools beyond the default
// transport, nor owns any protocol of its own.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client wraps an *http.Client with a base URL and JSON helpers.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a Client over http.DefaultClient.
func New(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// GetJSON issues a GET for path and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// PostJSON encodes in as the request body, issues a POST for path, and, when
// out is non-nil, decodes the response into it.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Result carries the outcome of an asynchronous call.
type Result[T any] struct {
	Value T
	Err   error
}

// GetAsync starts a GET in a goroutine and returns a channel that will carry
// exactly one Result. This is the whole async story the samples need: one
// call, one completion, awaited with a plain receive (optionally raced
// against ctx.Done by the caller).
func GetAsync[T any](ctx context.Context, c *Client, path string) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		var v T
		err := c.GetJSON(ctx, path, &v)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
