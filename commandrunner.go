package jflux

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/unionj-cloud/go-doudou/v2/toolkit/stringutils"
	"github.com/unionj-cloud/go-doudou/v2/toolkit/zlogger"
	"github.com/wubin1989/jflux/api"
	"github.com/wubin1989/jflux/config"
	"github.com/wubin1989/jflux/domain"
	"github.com/wubin1989/jflux/influxql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var queryCommandRunnerFactory *QueryCommandRunnerFactory

// init registers QueryCommandRunnerFactory as the package-wide runner source.
func init() {
	queryCommandRunnerFactory = &QueryCommandRunnerFactory{
		pool: sync.Pool{
			New: func() interface{} {
				return &QueryCommandRunner{}
			},
		},
	}
}

// QueryCommandRunnerFactory hands out QueryCommandRunner instances and takes
// them back once a query round trip is done.
type QueryCommandRunnerFactory struct {
	pool sync.Pool
}

// Build returns a QueryCommandRunner bound to the given collaborators
func (receiver *QueryCommandRunnerFactory) Build(service api.InfluxService, converter api.ResponseConverter, cfg config.Config) *QueryCommandRunner {
	runner := receiver.pool.Get().(*QueryCommandRunner)
	runner.ApplyOpts(QueryCommandRunnerOpts{
		Cfg:       cfg,
		Service:   service,
		Converter: converter,
		Factory:   receiver,
	})
	return runner
}

// Recycle puts *QueryCommandRunner back to object pool
func (receiver *QueryCommandRunnerFactory) Recycle(runner *QueryCommandRunner) {
	receiver.pool.Put(runner)
}

type QueryCommandRunnerOpts struct {
	Cfg       config.Config
	Service   api.InfluxService
	Converter api.ResponseConverter
	Factory   *QueryCommandRunnerFactory
}

// QueryCommandRunner is the shared classify -> submit -> convert -> unwrap
// pipeline behind every public query operation. It holds no state across runs
// beyond its collaborators, so a recycled runner is safe to rebind.
type QueryCommandRunner struct {
	Cfg       config.Config
	Service   api.InfluxService
	Converter api.ResponseConverter
	Factory   *QueryCommandRunnerFactory
}

func (receiver *QueryCommandRunner) ApplyOpts(opts QueryCommandRunnerOpts) {
	receiver.Cfg = opts.Cfg
	receiver.Service = opts.Service
	receiver.Converter = opts.Converter
	receiver.Factory = opts.Factory
}

// Run validates q against the requested unwrap level, submits it and returns
// the decoded response envelope. Validation failures surface before any
// request is issued.
func (receiver *QueryCommandRunner) Run(ctx context.Context, q string, level influxql.UnwrapLevel) (api.ApiResponse, error) {
	if err := influxql.Validate(q, level); err != nil {
		return api.ApiResponse{}, err
	}
	ctx, span := otel.Tracer("jflux").Start(ctx, "influxdb.query", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	raw, err := receiver.Service.Query(ctx, q)
	if err != nil {
		return api.ApiResponse{}, errors.Wrap(err, "error from influxdb api")
	}
	resp, err := receiver.Converter.Convert(raw)
	if err != nil {
		return api.ApiResponse{}, errors.Wrap(err, "fail to convert response from influxdb api")
	}
	if receiver.Cfg.Verbose {
		jsonResp, _ := json.Marshal(resp)
		zlogger.Info().RawJSON("response", jsonResp).Str("influxql", q).Msg("response from InfluxDB")
	}
	if stringutils.IsNotEmpty(resp.Err) {
		return api.ApiResponse{}, errors.Errorf("error from influxdb api: %s", resp.Err)
	}
	return resp, nil
}

// Recycle puts callee back to its factory
func (receiver *QueryCommandRunner) Recycle() {
	receiver.Factory.Recycle(receiver)
}

// unwrapStatement extracts the first statement result from the envelope. A
// single statement query coming back with no results at all is not a valid
// server answer.
func unwrapStatement(resp api.ApiResponse) (api.QueryResult, error) {
	if len(resp.Results) == 0 {
		return api.QueryResult{}, errors.Wrap(api.ErrUnexpectedResponse, "no statement results for a single statement query")
	}
	return resp.Results[0], nil
}

// unwrapSeries extracts the first series of a statement result. An empty series
// list means the query matched no data, which is a valid outcome, so the
// caller gets nil rather than an error.
func unwrapSeries(result api.QueryResult) *domain.Series {
	if len(result.Series) == 0 {
		return nil
	}
	series := result.Series[0]
	return &series
}
