// SPDX-License-Identifier: MIT
// Package: dataset
//
// types.go: the compiled, typed form of a dataset definition.
//
// A Spec is only produced by Compile from a Config that passed Validate, so
// every consumer can rely on: unique identifier names, legal type/distribution
// pairings, rates in [0,1], exactly ten categories where required, a parsed
// target expression, and correlation edges between two distinct numeric
// features. DataType, OutlierMethod and Interval are closed enums, and
// Distribution is a closed sum type; switch on them exhaustively.

package dataset

import (
	"fmt"
	"time"

	"github.com/katalvlaran/synthdata/expr"
)

// NumCategories is the fixed number of labels of a categorical column.
const NumCategories = 10

// DefaultOutlierMultiplier scales the IQR fence when a definition omits
// outlier_multiplier.
const DefaultOutlierMultiplier = 3.0

// DataType is the declared type of a feature or target column.
type DataType int

const (
	Float DataType = iota
	Int
	Categorical
	Datetime
)

var dataTypeNames = [...]string{Float: "float", Int: "int", Categorical: "categorical", Datetime: "datetime"}

func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int(t))
	}

	return dataTypeNames[t]
}

// Numeric reports whether the column takes part in numeric passes
// (correlation, outliers, the expression namespace).
func (t DataType) Numeric() bool { return t == Float || t == Int }

// ParseDataType maps a wire name to a DataType.
func ParseDataType(s string) (DataType, bool) {
	for i, name := range dataTypeNames {
		if name == s {
			return DataType(i), true
		}
	}

	return 0, false
}

// OutlierMethod selects which tail receives injected outliers.
type OutlierMethod int

const (
	ExtremeHigh OutlierMethod = iota
	ExtremeLow
	ExtremeBoth
)

var outlierMethodNames = [...]string{ExtremeHigh: "extreme_high", ExtremeLow: "extreme_low", ExtremeBoth: "extreme_both"}

func (m OutlierMethod) String() string {
	if m < 0 || int(m) >= len(outlierMethodNames) {
		return fmt.Sprintf("OutlierMethod(%d)", int(m))
	}

	return outlierMethodNames[m]
}

// ParseOutlierMethod maps a wire name to an OutlierMethod.
func ParseOutlierMethod(s string) (OutlierMethod, bool) {
	for i, name := range outlierMethodNames {
		if name == s {
			return OutlierMethod(i), true
		}
	}

	return 0, false
}

// Interval is the calendar step of a sequential_datetime distribution.
type Interval int

const (
	Hourly Interval = iota
	Daily
	Weekly
	Monthly
	Quarterly
	Yearly
)

var intervalNames = [...]string{
	Hourly: "hourly", Daily: "daily", Weekly: "weekly",
	Monthly: "monthly", Quarterly: "quarterly", Yearly: "yearly",
}

func (iv Interval) String() string {
	if iv < 0 || int(iv) >= len(intervalNames) {
		return fmt.Sprintf("Interval(%d)", int(iv))
	}

	return intervalNames[iv]
}

// ParseInterval maps a wire name to an Interval.
func ParseInterval(s string) (Interval, bool) {
	for i, name := range intervalNames {
		if name == s {
			return Interval(i), true
		}
	}

	return 0, false
}

// Distribution is one parametric family. The set of implementations is
// closed: Uniform, Normal, Weibull, RandomWalk, Sequential, SequentialDatetime.
type Distribution interface {
	// Kind returns the wire name of the family.
	Kind() string
	sealed()
}

// Uniform draws i.i.d. values in [Min, Max).
type Uniform struct{ Min, Max float64 }

// Normal draws i.i.d. Gaussian values, clamped into [MinClip, MaxClip] when
// the bounds are set. Clamping shifts the sample mean; that is intended.
type Normal struct {
	Mean, Std        float64
	MinClip, MaxClip *float64
}

// Weibull draws Location + Scale·W where W is standard Weibull(Shape).
type Weibull struct{ Shape, Scale, Location float64 }

// RandomWalk is Start plus the running sum of U(-StepSize, StepSize)+Drift steps.
type RandomWalk struct{ Start, StepSize, Drift float64 }

// Sequential is the progression Start, Start+Step, ...
type Sequential struct{ Start, Step float64 }

// SequentialDatetime is a timestamp series stepping one Interval per row.
// Zoned records whether Start carried an explicit UTC offset, which decides
// whether rendered timestamps carry one too.
type SequentialDatetime struct {
	Start    time.Time
	Zoned    bool
	Interval Interval
}

func (Uniform) Kind() string            { return "uniform" }
func (Normal) Kind() string             { return "normal" }
func (Weibull) Kind() string            { return "weibull" }
func (RandomWalk) Kind() string         { return "random_walk" }
func (Sequential) Kind() string         { return "sequential" }
func (SequentialDatetime) Kind() string { return "sequential_datetime" }

func (Uniform) sealed()            {}
func (Normal) sealed()             {}
func (Weibull) sealed()            {}
func (RandomWalk) sealed()         {}
func (Sequential) sealed()         {}
func (SequentialDatetime) sealed() {}

// Quality holds the compiled data-quality knobs of a column.
type Quality struct {
	MissingRate       float64
	OutlierRate       float64
	OutlierMethod     OutlierMethod
	OutlierMultiplier float64 // 0 means "use the generator default"
}

// Feature is one compiled feature column.
type Feature struct {
	Name         string
	Description  string
	Type         DataType
	Distribution Distribution
	Categories   []string
	Lags         []int
	Quality
}

// Correlation is a requested pairwise correlation between features A and B.
type Correlation struct {
	A, B        string
	Coefficient float64
}

// Target is the compiled target column.
type Target struct {
	Name                 string
	Description          string
	Type                 DataType
	Expression           *expr.Expr
	Categories           []string
	NoisePercent         float64
	Seasonality          []float64
	SecondarySeasonality []float64
	Quality
}

// Spec is a validated dataset definition ready for generation.
type Spec struct {
	Name         string
	Description  string
	Seed         *int64
	Rows         int
	Features     []Feature
	Correlations []Correlation
	Target       Target
}

// Feature returns the feature called name.
func (s *Spec) Feature(name string) (*Feature, bool) {
	for i := range s.Features {
		if s.Features[i].Name == name {
			return &s.Features[i], true
		}
	}

	return nil, false
}

// LagName is the derived-series name of feature name shifted by k rows.
func LagName(name string, k int) string { return fmt.Sprintf("%s_lag%d", name, k) }
