package influxql

const (
	MULTI_STATEMENT_SEPARATOR = ";"
)

// UnwrapLevel indicates at which granularity a caller wants a query response
// unwrapped. Basically,
//  - SERIES_LEVEL is for single statement, single measurement queries
//  - STATEMENT_LEVEL is for single statement queries spanning one or more measurements
//  - BATCH_LEVEL is for multi-statement queries returning the full response envelope
type UnwrapLevel int

const (
	SERIES_LEVEL UnwrapLevel = iota + 1
	STATEMENT_LEVEL
	BATCH_LEVEL
)
