package jflux

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wubin1989/jflux/api"
	"github.com/wubin1989/jflux/config"
	"github.com/wubin1989/jflux/domain"
	"github.com/wubin1989/jflux/influxql"
)

// Client makes calls to the InfluxDB HTTP API. It holds no mutable state after
// construction, so its methods are safe for concurrent use as long as the
// injected service is.
//
// See Builder.
type Client struct {
	_         [0]int
	service   api.InfluxService
	converter api.ResponseConverter
	cfg       config.Config
}

// NewClient binds a Client to the given service and converter. Most callers
// want Builder instead; NewClient is the seam for substituting either
// collaborator in tests.
func NewClient(service api.InfluxService, converter api.ResponseConverter, cfg config.Config) *Client {
	client := Client{
		service:   service,
		converter: converter,
		cfg:       cfg,
	}
	return &client
}

// Ping probes the server and returns the response metadata, e.g. the server
// version. It costs one round trip and fails only when the call itself cannot
// complete; a reachable server with an empty body is a successful ping.
func (receiver *Client) Ping(ctx context.Context) (api.ResponseMetadata, error) {
	raw, err := receiver.service.Ping(ctx)
	if err != nil {
		return api.ResponseMetadata{}, errors.Wrap(err, "error from influxdb api")
	}
	resp, err := receiver.converter.Convert(raw)
	if err != nil {
		return api.ResponseMetadata{}, errors.Wrap(err, "fail to convert response from influxdb api")
	}
	return resp.Metadata, nil
}

// IsConnected reports whether the server is reachable. Unlike Ping it never
// returns an error: any failure to complete the probe collapses to false.
func (receiver *Client) IsConnected(ctx context.Context) bool {
	_, err := receiver.service.Ping(ctx)
	return err == nil
}

// Query executes a single statement, single measurement query and returns its
// only series, or nil when the query matched no data.
//
// Queries such as
//
//	SELECT * FROM measurement_1
//
// can be executed with this method, while the following return an
// *influxql.InvalidQueryError:
//
//	SELECT * FROM measurement_1, measurement_2
//	SELECT * FROM measurement_1; SELECT * FROM measurement_2
//
// For multi-measurement or multi-statement queries see QueryMultipleSeries and
// BatchQuery respectively.
func (receiver *Client) Query(ctx context.Context, q string) (*domain.Series, error) {
	runner := queryCommandRunnerFactory.Build(receiver.service, receiver.converter, receiver.cfg)
	defer runner.Recycle()
	resp, err := runner.Run(ctx, q, influxql.SERIES_LEVEL)
	if err != nil {
		return nil, err
	}
	result, err := unwrapStatement(resp)
	if err != nil {
		return nil, err
	}
	return unwrapSeries(result), nil
}

// QueryMultipleSeries executes a single statement query spanning one or more
// measurements and returns the full statement result. Single measurement
// queries work here too, the caller just unwraps the series list themselves;
// Query is the more convenient way for those.
func (receiver *Client) QueryMultipleSeries(ctx context.Context, q string) (api.QueryResult, error) {
	runner := queryCommandRunnerFactory.Build(receiver.service, receiver.converter, receiver.cfg)
	defer runner.Recycle()
	resp, err := runner.Run(ctx, q, influxql.STATEMENT_LEVEL)
	if err != nil {
		return api.QueryResult{}, err
	}
	return unwrapStatement(resp)
}

// BatchQuery executes one or more statements at once, e.g.
//
//	SELECT * FROM measurement_1; SELECT * FROM measurement_2, measurement_3
//
// and returns the full response envelope, one result per statement. Only
// SELECT INTO is rejected at this level.
func (receiver *Client) BatchQuery(ctx context.Context, q string) (api.ApiResponse, error) {
	runner := queryCommandRunnerFactory.Build(receiver.service, receiver.converter, receiver.cfg)
	defer runner.Recycle()
	return runner.Run(ctx, q, influxql.BATCH_LEVEL)
}

// Close releases resources held by the underlying service. It is idempotent
// and a no-op for services that hold no persistent connections.
func (receiver *Client) Close() error {
	if closer, ok := receiver.service.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Builder constructs Client instances bound to an InfluxDB host URL.
type Builder struct {
	host       string
	httpClient *http.Client
	service    api.InfluxService
	converter  api.ResponseConverter
	cfg        *config.Config
}

// NewClientBuilder seeds a Builder with the InfluxDB host URL,
// e.g. http://localhost:8086
func NewClientBuilder(host string) *Builder {
	return &Builder{
		host: host,
	}
}

// WithHTTPClient overrides the HTTP client used by the default service,
// which is where connect/read timeouts and TLS settings belong.
func (receiver *Builder) WithHTTPClient(httpClient *http.Client) *Builder {
	receiver.httpClient = httpClient
	return receiver
}

// WithService replaces the transport entirely. The host URL is ignored then.
func (receiver *Builder) WithService(service api.InfluxService) *Builder {
	receiver.service = service
	return receiver
}

// WithConverter replaces the response converter.
func (receiver *Builder) WithConverter(converter api.ResponseConverter) *Builder {
	receiver.converter = converter
	return receiver
}

// WithConfig replaces the default configuration.
func (receiver *Builder) WithConfig(cfg config.Config) *Builder {
	receiver.cfg = &cfg
	return receiver
}

// Build constructs a new Client instance from this builder's configuration.
func (receiver *Builder) Build() (*Client, error) {
	cfg := config.NewConfig()
	if receiver.cfg != nil {
		cfg = *receiver.cfg
	}
	service := receiver.service
	if service == nil {
		var err error
		service, err = api.NewHTTPService(api.HTTPServiceOpts{
			Addr:       receiver.host,
			HTTPClient: receiver.httpClient,
			Timeout:    cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
	}
	converter := receiver.converter
	if converter == nil {
		converter = api.JSONConverter{}
	}
	return NewClient(service, converter, cfg), nil
}
