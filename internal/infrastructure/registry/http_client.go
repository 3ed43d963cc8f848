package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"purchase_sale/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// InternalServiceKeyHeader authenticates service-to-service calls.
const InternalServiceKeyHeader = "X-Internal-Service-Key"

type authorizationKey struct{}

// WithAuthorization stores the caller's Authorization header in ctx so that
// registry calls made on its behalf carry the same credentials.
func WithAuthorization(ctx context.Context, header string) context.Context {
	header = strings.TrimSpace(header)
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authorizationKey{}, header)
}

func authorizationFrom(ctx context.Context) string {
	v, _ := ctx.Value(authorizationKey{}).(string)
	return v
}

type Options struct {
	BaseURL            string
	InternalServiceKey string
	Timeout            time.Duration
}

// httpClient performs JSON calls against one registry and translates
// failures into the registry port errors.
type httpClient struct {
	service string
	rest    *resty.Client
}

func newHTTPClient(service string, opts Options) *httpClient {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		rest.SetTimeout(opts.Timeout)
	}
	if opts.InternalServiceKey != "" {
		rest.SetHeader(InternalServiceKeyHeader, opts.InternalServiceKey)
	}
	return &httpClient{service: service, rest: rest}
}

func (c *httpClient) get(ctx context.Context, operation, path string, out any) error {
	return c.do(ctx, http.MethodGet, operation, path, nil, out)
}

func (c *httpClient) post(ctx context.Context, operation, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, operation, path, body, out)
}

func (c *httpClient) do(ctx context.Context, method, operation, path string, body, out any) error {
	req := c.rest.R().SetContext(ctx)
	if auth := authorizationFrom(ctx); auth != "" {
		req.SetHeader("Authorization", auth)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.WithError(err).Errorf("[registry][%s] %s failed", c.service, operation)
		return &interfaces.UpstreamError{Service: c.service, Operation: operation, Err: err}
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", c.service, operation, interfaces.ErrRegistryNotFound)
	case resp.IsError():
		log.WithFields(log.Fields{"status": status, "path": path}).
			Warnf("[registry][%s] %s rejected", c.service, operation)
		return &interfaces.UpstreamError{
			Service:    c.service,
			Operation:  operation,
			StatusCode: status,
			Body:       resp.String(),
		}
	}

	raw := resp.Body()
	if status == http.StatusNoContent || len(strings.TrimSpace(string(raw))) == 0 || string(raw) == "null" {
		if method == http.MethodGet {
			// an empty answer to a lookup means the record does not exist
			return fmt.Errorf("%s %s: empty response: %w", c.service, operation, interfaces.ErrRegistryNotFound)
		}
		log.WithFields(log.Fields{"status": status, "path": path}).
			Warnf("[registry][%s] %s answered without a body", c.service, operation)
		return &interfaces.UpstreamError{
			Service:    c.service,
			Operation:  operation,
			StatusCode: status,
			Err:        errors.New("empty response body"),
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &interfaces.UpstreamError{
			Service:    c.service,
			Operation:  operation,
			StatusCode: status,
			Body:       string(raw),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}
