// Package client is the in-process transport adapter: it carries requests
// to the mock router and wraps plain results in the response envelope an
// HTTP client library would produce.
package client

import (
	"context"
)

// Dispatcher is the routing surface the adapter forwards to.
type Dispatcher interface {
	Handle(method, path string, body any) (any, error)
}

// RequestConfig describes one request. Headers may be pre-populated by the
// caller; the adapter adds Authorization when a token resolves.
type RequestConfig struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Body    any               `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Response is the envelope handed back for every successful dispatch:
// always status 200 with the router's result as payload and an echo of the
// request config.
type Response struct {
	Data       any               `json:"data"`
	Status     int               `json:"status"`
	StatusText string            `json:"statusText"`
	Headers    map[string]string `json:"headers"`
	Config     RequestConfig     `json:"config"`
}

type Client struct {
	dispatcher Dispatcher
}

func New(dispatcher Dispatcher) *Client {
	return &Client{dispatcher: dispatcher}
}

// Do resolves a bearer token, dispatches the request and wraps the result.
// The only error that escapes is the one the routing surface raises
// (sending to an unknown conversation); everything else answers 200.
func (c *Client) Do(ctx context.Context, config RequestConfig) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if token := ResolveToken(); token != "" {
		if config.Headers == nil {
			config.Headers = map[string]string{}
		}
		config.Headers["Authorization"] = "Bearer " + token
	}

	data, err := c.dispatcher.Handle(config.Method, config.URL, config.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Data:       data,
		Status:     200,
		StatusText: "OK",
		Headers:    map[string]string{},
		Config:     config,
	}, nil
}

// Get is shorthand for a bodyless GET dispatch.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, RequestConfig{Method: "get", URL: url})
}

// Post dispatches a POST with the given body.
func (c *Client) Post(ctx context.Context, url string, body any) (*Response, error) {
	return c.Do(ctx, RequestConfig{Method: "post", URL: url, Body: body})
}
