// SPDX-License-Identifier: MIT
// Package: generator
//
// options.go: functional options for New.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//     Generate itself never panics.
//   - Seed precedence: WithRand, then WithSeed, then Spec.Seed, then the
//     wall clock.

package generator

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
)

// Option customizes a Generator.
type Option func(*config)

type config struct {
	rng               *rand.Rand
	seed              *int64
	log               *zap.Logger
	outlierMultiplier float64
}

func newConfig(opts []Option) config {
	c := config{
		log:               zap.NewNop(),
		outlierMultiplier: dataset.DefaultOutlierMultiplier,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed fixes the seed of every run, overriding the definition's random_seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithRand makes every run draw from r. Successive runs continue r's stream,
// so they differ from each other. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the logger for stage progress and non-fatal diagnostics.
// Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithOutlierMultiplier sets the IQR multiplier used when a column does not
// declare outlier_multiplier. Panics unless m > 0.
func WithOutlierMultiplier(m float64) Option {
	if !(m > 0) {
		panic("generator: WithOutlierMultiplier(m<=0)")
	}
	return func(c *config) {
		c.outlierMultiplier = m
	}
}
