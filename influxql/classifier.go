package influxql

import (
	"fmt"
	"regexp"
	"strings"
)

// multiSeriesPattern and selectIntoPattern are heuristics, not an InfluxQL parser.
// They can misclassify queries carrying commas or INTO/FROM tokens inside string
// literals, subqueries or WHERE ... IN (...) clauses. Queries rejected here would
// need BatchQuery or manual unwrapping instead.
var (
	multiSeriesPattern = regexp.MustCompile(`(?s)^SELECT\s.*\sFROM\s.+,.+$`)
	selectIntoPattern  = regexp.MustCompile(`(?s)^SELECT\s.*\sINTO\s.*\sFROM\s.*$`)
)

// InvalidQueryError reports a query whose shape is not allowed at the requested
// unwrap level. It is raised before any request is issued.
type InvalidQueryError struct {
	Reason string
}

func (receiver *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: %s", receiver.Reason)
}

var (
	ErrMultipleMeasurements = &InvalidQueryError{Reason: "query cannot span multiple measurements"}
	ErrMultipleStatements   = &InvalidQueryError{Reason: "query cannot contain multiple statements"}
	ErrSelectInto           = &InvalidQueryError{Reason: "cannot execute 'SELECT INTO' as query"}
)

// IsMultiSeries reports whether q selects from a comma-separated measurement list.
func IsMultiSeries(q string) bool {
	return multiSeriesPattern.MatchString(q)
}

// IsMultiStatement reports whether q contains more than one statement.
func IsMultiStatement(q string) bool {
	return strings.Contains(q, MULTI_STATEMENT_SEPARATOR)
}

// IsSelectInto reports whether q is a SELECT INTO statement.
func IsSelectInto(q string) bool {
	return selectIntoPattern.MatchString(q)
}

// Validate checks the shape of q against the requested unwrap level. Stricter
// levels inherit the checks of the looser ones: SERIES_LEVEL additionally
// rejects multi-measurement queries, STATEMENT_LEVEL additionally rejects
// multi-statement queries and every level rejects SELECT INTO.
func Validate(q string, level UnwrapLevel) error {
	if level <= SERIES_LEVEL && IsMultiSeries(q) {
		return ErrMultipleMeasurements
	}
	if level <= STATEMENT_LEVEL && IsMultiStatement(q) {
		return ErrMultipleStatements
	}
	if IsSelectInto(q) {
		return ErrSelectInto
	}
	return nil
}
