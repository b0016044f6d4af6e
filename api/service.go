package api

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination ./mock/mock_api.go -package mock -source=./service.go

const (
	pingPath  = "/ping"
	queryPath = "/query"
)

// InfluxService issues requests against the InfluxDB HTTP API. Implementations
// must be safe for concurrent use.
type InfluxService interface {
	// Ping probes the liveness endpoint.
	Ping(ctx context.Context) (*RawResponse, error)
	// Query submits q for execution and returns the raw response body.
	Query(ctx context.Context, q string) (*RawResponse, error)
}

// ResponseConverter decodes a raw transport response into the ApiResponse model.
type ResponseConverter interface {
	Convert(raw *RawResponse) (ApiResponse, error)
}

var _ InfluxService = (*HTTPService)(nil)

// HTTPServiceOpts configures HTTPService
type HTTPServiceOpts struct {
	// Addr is the InfluxDB host URL, e.g. http://localhost:8086
	Addr string
	// HTTPClient overrides the default client. Connect/read timeouts belong here.
	HTTPClient *http.Client
	// Timeout is applied to the default client when HTTPClient is nil
	Timeout time.Duration
}

// HTTPService is the concrete InfluxService over the InfluxDB 1.x HTTP API.
// Requests carry no auth; credentials, TLS and timeouts are the injected
// http.Client's business.
type HTTPService struct {
	base   *url.URL
	client *http.Client
}

func NewHTTPService(opts HTTPServiceOpts) (*HTTPService, error) {
	base, err := url.Parse(strings.TrimSuffix(opts.Addr, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "fail to parse host url %s", opts.Addr)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
		}
	}
	service := HTTPService{
		base:   base,
		client: httpClient,
	}
	return &service, nil
}

// Ping implements InfluxService. A reachable server answers 204 with no body.
func (receiver *HTTPService) Ping(ctx context.Context) (*RawResponse, error) {
	return receiver.get(ctx, pingPath, nil)
}

// Query implements InfluxService
func (receiver *HTTPService) Query(ctx context.Context, q string) (*RawResponse, error) {
	params := url.Values{}
	params.Set("q", q)
	return receiver.get(ctx, queryPath, params)
}

// Close releases idle connections held by the underlying client. It is
// idempotent and safe to call on a client that never connected.
func (receiver *HTTPService) Close() error {
	receiver.client.CloseIdleConnections()
	return nil
}

func (receiver *HTTPService) get(ctx context.Context, path string, params url.Values) (*RawResponse, error) {
	u := *receiver.base
	u.Path = u.Path + path
	if params != nil {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "fail to build request")
	}
	resp, err := receiver.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to call %s", u.String())
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "fail to read response body")
	}
	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("influxdb api returned status %d: %s", resp.StatusCode, string(body))
	}
	raw := RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	return &raw, nil
}
