package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// TokenSource returns the current bearer credential, or "" when no session
// exists. It is consulted exactly once per outbound request.
type TokenSource func() string

// Client is the single interception point for backend traffic: every gateway
// call goes through it, picking up the bearer credential and normalized
// error handling.
type Client struct {
	rc *resty.Client
}

type Option func(*Client)

// WithTokenSource attaches the credential provider. Requests go out without
// an Authorization header when the source returns "".
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) {
		c.rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := src(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(d)
	}
}

// New builds a client rooted at the backend API base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		rc: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(defaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) doJSON(ctx context.Context, method, path string, query map[string]string, payload, out any) error {
	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	resp, err := req.Execute(method, path)
	if err := wrapError(resp, err); err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// doMultipart sends form fields plus an attached file. The content type is
// left to the transport so the multipart boundary is set correctly.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileParam, filename string, file io.Reader, out any) error {
	req := c.rc.R().SetContext(ctx).SetMultipartFormData(fields)
	if file != nil {
		req.SetFileReader(fileParam, filename, file)
	}
	resp, err := req.Execute(method, path)
	if err := wrapError(resp, err); err != nil {
		return err
	}
	return decodeBody(resp, out)
}

func decodeBody(resp *resty.Response, out any) error {
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode(), Message: "malformed response from backend", Err: err}
	}
	return nil
}

func wrapError(resp *resty.Response, err error) error {
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "backend unreachable", Err: err}
	}
	if !resp.IsError() {
		return nil
	}
	status := resp.StatusCode()
	var body struct {
		Message  string `json:"message"`
		ErrorMsg string `json:"error"`
		Code     string `json:"code"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Message
	if msg == "" {
		msg = body.ErrorMsg
	}
	if msg == "" {
		msg = resp.Status()
	}
	return &Error{Kind: kindForStatus(status), Status: status, Code: body.Code, Message: msg}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindPermission
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}
