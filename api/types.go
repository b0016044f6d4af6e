package api

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/unionj-cloud/go-doudou/v2/toolkit/stringutils"
	"github.com/wubin1989/jflux/domain"
)

// ErrUnexpectedResponse indicates a response that decoded fine but is
// structurally inconsistent with the submitted query, e.g. a single statement
// query coming back with no statement results at all.
var ErrUnexpectedResponse = errors.New("unexpected response from influxdb api")

// ResponseMetadata carries out-of-band information attached to a response,
// currently the server version reported by the ping endpoint.
type ResponseMetadata struct {
	DatabaseVersion string
}

// QueryResult is the result of a single statement. StatementID matches the
// statement's position within the submitted query.
type QueryResult struct {
	StatementID int
	Series      []domain.Series
}

// ApiResponse is the full response envelope: one QueryResult per statement in
// the submitted query, plus metadata and an optional server-reported error.
type ApiResponse struct {
	Results  []QueryResult
	Metadata ResponseMetadata
	Err      string
}

// Error returns the server-reported error, or nil if the response carries none.
func (receiver ApiResponse) Error() error {
	if stringutils.IsNotEmpty(receiver.Err) {
		return errors.New(receiver.Err)
	}
	return nil
}

// RawResponse is what the transport hands to the converter: status line,
// headers and the unparsed body.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
