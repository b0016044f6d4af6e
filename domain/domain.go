package domain

import (
	"reflect"
	"time"

	"golang.org/x/exp/maps"
)

// Point is a single sample within a series: a timestamp plus the field values
// recorded at that instant. Points are value objects and must not be mutated
// after construction.
type Point struct {
	Timestamp time.Time
	Fields    map[string]interface{}
}

// Equal reports structural equality with other.
func (receiver Point) Equal(other Point) bool {
	if !receiver.Timestamp.Equal(other.Timestamp) {
		return false
	}
	return reflect.DeepEqual(receiver.Fields, other.Fields)
}

// Series is one named, tagged, time-indexed dataset within a statement result.
// All points of a series share the same field schema; that invariant is
// guaranteed upstream by InfluxDB and not re-checked here.
type Series struct {
	Name   string
	Tags   map[string]string
	Points []Point
}

// Equal reports structural equality with other, point order included.
func (receiver Series) Equal(other Series) bool {
	if receiver.Name != other.Name {
		return false
	}
	if !maps.Equal(receiver.Tags, other.Tags) {
		return false
	}
	if len(receiver.Points) != len(other.Points) {
		return false
	}
	for i := range receiver.Points {
		if !receiver.Points[i].Equal(other.Points[i]) {
			return false
		}
	}
	return true
}
