package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/influxdata/influxdb1-client/models"
	"github.com/pkg/errors"
	"github.com/wubin1989/jflux/domain"
)

const versionHeader = "X-Influxdb-Version"

// wire-level shape of the query endpoint response
type wireResult struct {
	StatementID int          `json:"statement_id"`
	Series      []models.Row `json:"series,omitempty"`
}

type wireResponse struct {
	Results []wireResult `json:"results,omitempty"`
	Err     string       `json:"error,omitempty"`
}

var _ ResponseConverter = (*JSONConverter)(nil)

// JSONConverter decodes the InfluxDB JSON response body into the ApiResponse
// model. A server-reported top-level error ends up in ApiResponse.Err rather
// than failing conversion; only an undecodable body is a conversion error.
type JSONConverter struct {
	_ [0]int
}

// Convert implements ResponseConverter. An empty body (e.g. from the ping
// endpoint) converts to an envelope carrying metadata only.
func (receiver JSONConverter) Convert(raw *RawResponse) (ApiResponse, error) {
	response := ApiResponse{
		Metadata: ResponseMetadata{
			DatabaseVersion: raw.Header.Get(versionHeader),
		},
	}
	if len(raw.Body) == 0 {
		return response, nil
	}
	var wire wireResponse
	decoder := json.NewDecoder(bytes.NewReader(raw.Body))
	decoder.UseNumber()
	if err := decoder.Decode(&wire); err != nil {
		return ApiResponse{}, errors.Wrap(err, "fail to decode response body")
	}
	response.Err = wire.Err
	for _, item := range wire.Results {
		result := QueryResult{
			StatementID: item.StatementID,
		}
		for _, row := range item.Series {
			series, err := rowToSeries(row)
			if err != nil {
				return ApiResponse{}, errors.Wrapf(err, "fail to convert series %s", row.Name)
			}
			result.Series = append(result.Series, series)
		}
		response.Results = append(response.Results, result)
	}
	return response, nil
}

// rowToSeries maps one models.Row onto a domain.Series. The first column is the
// RFC3339Nano timestamp, the remaining columns become point fields.
func rowToSeries(row models.Row) (domain.Series, error) {
	series := domain.Series{
		Name: row.Name,
		Tags: row.Tags,
	}
	for _, value := range row.Values {
		if len(value) == 0 || len(value) > len(row.Columns) {
			return domain.Series{}, errors.Errorf("row has %d columns but a value of width %d", len(row.Columns), len(value))
		}
		rawTime, ok := value[0].(string)
		if !ok {
			return domain.Series{}, errors.Errorf("timestamp column is %T, want RFC3339 string", value[0])
		}
		ts, err := time.Parse(time.RFC3339Nano, rawTime)
		if err != nil {
			return domain.Series{}, errors.Wrap(err, "parse time fail")
		}
		point := domain.Point{
			Timestamp: ts,
			Fields:    make(map[string]interface{}, len(value)-1),
		}
		for i := 1; i < len(value); i++ {
			point.Fields[row.Columns[i]] = fieldValue(value[i])
		}
		series.Points = append(series.Points, point)
	}
	return series, nil
}

// fieldValue normalizes a decoded column value. Numbers arrive as json.Number
// because of decoder.UseNumber and are narrowed to float64 when possible.
func fieldValue(value interface{}) interface{} {
	switch number := value.(type) {
	case json.Number:
		f, err := number.Float64()
		if err != nil {
			return number.String()
		}
		return f
	default:
		return value
	}
}
