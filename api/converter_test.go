package api

import (
	"io/ioutil"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testDir = "testdata"

func TestJSONConverter_Convert_QueryResponse(t *testing.T) {
	body, err := ioutil.ReadFile(filepath.Join(testDir, "query_response.json"))
	require.NoError(t, err)

	var converter JSONConverter
	response, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{"X-Influxdb-Version": []string{"1.8.10"}},
		Body:       body,
	})
	require.NoError(t, err)
	require.NoError(t, response.Error())
	require.Equal(t, "1.8.10", response.Metadata.DatabaseVersion)
	require.Len(t, response.Results, 2)

	first := response.Results[0]
	require.Equal(t, 0, first.StatementID)
	require.Len(t, first.Series, 2)

	cpu := first.Series[0]
	require.Equal(t, "cpu", cpu.Name)
	require.Equal(t, map[string]string{"host": "server01", "region": "us-west"}, cpu.Tags)
	require.Len(t, cpu.Points, 2)
	require.Equal(t, time.Date(2023, 1, 6, 12, 0, 0, 0, time.UTC), cpu.Points[0].Timestamp)
	require.Equal(t, map[string]interface{}{
		"usage_idle": 88.5,
		"status":     "ok",
	}, cpu.Points[0].Fields)
	require.Equal(t, time.Date(2023, 1, 6, 12, 0, 10, 123456789, time.UTC), cpu.Points[1].Timestamp)
	require.Equal(t, "degraded", cpu.Points[1].Fields["status"])
	require.Equal(t, 67.0, first.Series[1].Points[0].Fields["usage_idle"])

	second := response.Results[1]
	require.Equal(t, 1, second.StatementID)
	require.Len(t, second.Series, 1)
	require.Equal(t, "mem", second.Series[0].Name)
	require.Empty(t, second.Series[0].Tags)
}

func TestJSONConverter_Convert_EmptyBodyYieldsMetadataOnly(t *testing.T) {
	var converter JSONConverter
	response, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusNoContent,
		Header:     http.Header{"X-Influxdb-Version": []string{"1.8.10"}},
	})
	require.NoError(t, err)
	require.Empty(t, response.Results)
	require.Equal(t, "1.8.10", response.Metadata.DatabaseVersion)
}

func TestJSONConverter_Convert_ServerReportedError(t *testing.T) {
	var converter JSONConverter
	response, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"error": "database not found: mydb"}`),
	})
	require.NoError(t, err)
	require.EqualError(t, response.Error(), "database not found: mydb")
}

func TestJSONConverter_Convert_StatementLevelEmptySeries(t *testing.T) {
	var converter JSONConverter
	response, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"results": [{"statement_id": 0}]}`),
	})
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	require.Empty(t, response.Results[0].Series)
}

func TestJSONConverter_Convert_MalformedBody(t *testing.T) {
	var converter JSONConverter
	_, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"results": [`),
	})
	require.Error(t, err)
}

func TestJSONConverter_Convert_BadTimestamp(t *testing.T) {
	var converter JSONConverter
	_, err := converter.Convert(&RawResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"results": [{"statement_id": 0, "series": [{"name": "cpu", "columns": ["time", "v"], "values": [["not-a-time", 1]]}]}]}`),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse time fail")
}
