// Package api is the client of the remote wedding-planning REST API: the
// fetch layer, envelope normalization, error mapping and the global 401
// policy, plus one repository per resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"
	"planner/internal/infra/metrics"

	"go.uber.org/fx"
)

const (
	maxResponseBytes = 16 << 20
	contentTypeJSON  = "application/json"
)

// TokenSource yields the bearer token for outgoing calls.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// UnauthorizedHandler is told about every 401 so it can drop the session.
type UnauthorizedHandler interface {
	Invalidate(ctx context.Context) error
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	Tokens       TokenSource
	Unauthorized UnauthorizedHandler
	HTTPClient   *http.Client `optional:"true"`
}

// Client performs JSON calls against the API base URL.
type Client struct {
	baseURL      string
	signInRoute  string
	http         *http.Client
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tokens       TokenSource
	unauthorized UnauthorizedHandler
}

// NewClient is the constructor for Client.
func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.API.Timeout}
	}

	return &Client{
		baseURL:      strings.TrimRight(params.Config.API.BaseURL, "/"),
		signInRoute:  params.Config.Session.SignInRoute,
		http:         httpClient,
		logger:       params.Logger,
		metrics:      params.Metrics,
		tokens:       params.Tokens,
		unauthorized: params.Unauthorized,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Do sends body as JSON to ep and decodes the unwrapped response data into out.
// body and out may be nil. The returned meta is nil unless the envelope carried one.
// Every error is, or wraps, a *domainerrors.APIError.
func (c *Client) Do(ctx context.Context, method string, ep Endpoint, body, out any) (*entity.PageMeta, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domainerrors.NewValidationError(domainerrors.FieldError{Message: "request body cannot be encoded: " + err.Error()})
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ep.URL(), reader)
	if err != nil {
		return nil, domainerrors.NewNetworkError(err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	return c.send(ctx, req, ep.Route, out)
}

// Upload submits images as one multipart form, each file under field.
func (c *Client) Upload(ctx context.Context, ep Endpoint, field string, images []entity.Image, out any) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for _, img := range images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", multipartDisposition(field, img.Filename))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := form.CreatePart(header)
		if err != nil {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: err.Error()})
		}
		if _, err := part.Write(img.Data); err != nil {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: err.Error()})
		}
	}
	if err := form.Close(); err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: err.Error()})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ep.URL(), &buf)
	if err != nil {
		return domainerrors.NewNetworkError(err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", form.FormDataContentType())

	_, err = c.send(ctx, req, ep.Route, out)

	return err
}

func (c *Client) send(ctx context.Context, req *http.Request, route string, out any) (*entity.PageMeta, error) {
	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveAPICall(req.Method, route, 0, start)
		c.log(ctx).Warn("API call failed",
			slog.String("method", req.Method),
			slog.String("route", route),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.metrics.ObserveAPICall(req.Method, route, resp.StatusCode, start)
	c.log(ctx).Debug("API call",
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)
	if err != nil {
		return nil, domainerrors.NewNetworkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if invErr := c.unauthorized.Invalidate(ctx); invErr != nil {
			c.log(ctx).Error("Failed to clear session after 401", slog.Any("error", invErr))
		}
		message, _ := parseErrorBody(raw)

		return nil, domainerrors.NewUnauthorizedError(message, c.signInRoute)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message, fields := parseErrorBody(raw)

		return nil, domainerrors.NewHTTPError(resp.StatusCode, message, fields)
	}

	env, err := Unwrap(raw)
	if err != nil {
		return nil, domainerrors.NewDecodeError(resp.StatusCode, err)
	}
	if env.Failed {
		return nil, domainerrors.NewHTTPError(resp.StatusCode, env.Message, env.Errors)
	}
	if out != nil && !isEmptyJSON(env.Data) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, domainerrors.NewDecodeError(resp.StatusCode, errors.Wrap(err, "decode data"))
		}
	}

	return env.Meta, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartDisposition(field, filename string) string {
	return `form-data; name="` + quoteEscaper.Replace(field) + `"; filename="` + quoteEscaper.Replace(filename) + `"`
}
