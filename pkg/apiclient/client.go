// Package apiclient is a typed Go client for the tripdesk REST surface.
// It owns the transport concerns the service's web clients share: base
// URL, cookie-carried session credentials, a uniform request timeout and
// a uniform error surface.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
)

// RequestTimeout is enforced uniformly on every call.
const RequestTimeout = 5 * time.Second

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a client for the given base URL. The cookie jar makes the
// session cookie set by Login travel with every later call.
func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: RequestTimeout, Jar: jar},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// APIError is any non-2xx response. Message carries the server-supplied
// message when the error body had one, otherwise a static fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tripdesk: %d %s", e.Status, e.Message)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "request failed"
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return decodeErr
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ---- Typed operations ----

func (c *Client) Login(ctx context.Context, email, password string) error {
	req := request_models.LoginRequest{Email: email, Password: password}
	return c.Post(ctx, "/login", req, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/login/logout", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (response_models.ProfileResponse, error) {
	var out response_models.ProfileResponse
	err := c.Get(ctx, "/login/profile", &out)
	return out, err
}

func (c *Client) DestinationOptions(ctx context.Context) ([]response_models.DestinationOption, error) {
	var out []response_models.DestinationOption
	err := c.Get(ctx, "/destinations/options", &out)
	return out, err
}

func (c *Client) SubmitRequest(ctx context.Context, req request_models.SubmitTravelRequestRequest) (response_models.TravelRequestResponse, error) {
	var out response_models.TravelRequestResponse
	err := c.Post(ctx, "/requests", req, &out)
	return out, err
}

func (c *Client) UpdateRequest(ctx context.Context, id string, req request_models.SubmitTravelRequestRequest) (response_models.TravelRequestResponse, error) {
	var out response_models.TravelRequestResponse
	err := c.Put(ctx, "/requests/"+id, req, &out)
	return out, err
}

func (c *Client) GetRequest(ctx context.Context, id string) (response_models.TravelRequestResponse, error) {
	var out response_models.TravelRequestResponse
	err := c.Get(ctx, "/requests/"+id, &out)
	return out, err
}

func (c *Client) UserRequests(ctx context.Context, page, pageSize int) (response_models.RequestPage, error) {
	return c.page(ctx, "/requests/user", page, pageSize)
}

func (c *Client) RequestsToApprove(ctx context.Context, page, pageSize int) (response_models.RequestPage, error) {
	return c.page(ctx, "/requests/to-approve", page, pageSize)
}

func (c *Client) RequestsToApproveAccounting(ctx context.Context, page, pageSize int) (response_models.RequestPage, error) {
	return c.page(ctx, "/requests/to-approve-SOI", page, pageSize)
}

func (c *Client) RequestsToReserve(ctx context.Context, page, pageSize int) (response_models.RequestPage, error) {
	return c.page(ctx, "/requests/to-reserve", page, pageSize)
}

func (c *Client) AllRequests(ctx context.Context, page, pageSize int) (response_models.RequestPage, error) {
	return c.page(ctx, "/requests/all", page, pageSize)
}

func (c *Client) page(ctx context.Context, path string, page, pageSize int) (response_models.RequestPage, error) {
	var out response_models.RequestPage
	err := c.Get(ctx, fmt.Sprintf("%s?page=%d&pageSize=%d", path, page, pageSize), &out)
	return out, err
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id, status string) error {
	req := request_models.UpdateStatusRequest{Status: status}
	return c.Patch(ctx, "/requests/"+id+"/status", req, nil)
}

func (c *Client) VisitPage(ctx context.Context, path string) (response_models.VisitedPagesResponse, error) {
	var out response_models.VisitedPagesResponse
	err := c.Post(ctx, "/tutorial/visited", request_models.VisitPageRequest{Path: path}, &out)
	return out, err
}
