package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeries_Equal(t *testing.T) {
	ts := time.Date(2023, 1, 6, 12, 0, 0, 0, time.UTC)
	base := Series{
		Name: "cpu",
		Tags: map[string]string{"host": "server01"},
		Points: []Point{
			{Timestamp: ts, Fields: map[string]interface{}{"usage_idle": 88.5}},
		},
	}
	tests := []struct {
		name  string
		other Series
		want  bool
	}{
		{
			name: "structurally equal copy",
			other: Series{
				Name: "cpu",
				Tags: map[string]string{"host": "server01"},
				Points: []Point{
					{Timestamp: ts, Fields: map[string]interface{}{"usage_idle": 88.5}},
				},
			},
			want: true,
		},
		{
			name:  "different name",
			other: Series{Name: "mem", Tags: map[string]string{"host": "server01"}, Points: base.Points},
			want:  false,
		},
		{
			name:  "different tags",
			other: Series{Name: "cpu", Tags: map[string]string{"host": "server02"}, Points: base.Points},
			want:  false,
		},
		{
			name: "different field value",
			other: Series{
				Name: "cpu",
				Tags: map[string]string{"host": "server01"},
				Points: []Point{
					{Timestamp: ts, Fields: map[string]interface{}{"usage_idle": 12.0}},
				},
			},
			want: false,
		},
		{
			name:  "different point count",
			other: Series{Name: "cpu", Tags: map[string]string{"host": "server01"}},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestPoint_Equal_TimezoneInsensitive(t *testing.T) {
	utc := Point{Timestamp: time.Date(2023, 1, 6, 12, 0, 0, 0, time.UTC)}
	shanghai := Point{Timestamp: time.Date(2023, 1, 6, 20, 0, 0, 0, time.FixedZone("CST", 8*3600))}
	require.True(t, utc.Equal(shanghai))
}
