// Package synthdata generates synthetic tabular datasets from declarative
// JSON or YAML definitions.
//
// A definition names a row count, an optional seed, a list of feature
// columns (each drawn from a parametric distribution), pairwise rank
// correlations between numeric features, and a target column computed from
// an arithmetic expression over the features. Missing values and outliers
// are injected at declared rates, so the same definition with the same seed
// always yields the same table.
//
// The work is split across subpackages:
//
//	dataset/   definition wire format, validation, compilation into a Spec
//	expr/      the target expression language (parse, evaluate)
//	sampler/   seeded distributions, lags and calendar stepping
//	correlate/ Cholesky-based rank correlation imposition
//	quality/   missing-value and outlier injection, decile discretization
//	generator/ the staged pipeline producing a Table
//	export/    CSV files and the SQLite sink with a run history
//	healing/   batch directory runs with an optional definition repairer
//	stats/, matrix/ numeric helpers shared by the stages above
//
// Two binaries sit on top: cmd/datagen (a cobra CLI) and cmd/datagen-mcp (an
// MCP server exposing validate, summarize and generate tools).
package synthdata
