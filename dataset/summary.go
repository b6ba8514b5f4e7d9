// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary is the at-a-glance description of a definition.
type Summary struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Rows         int            `json:"rows"`
	Seed         string         `json:"seed"`
	Features     int            `json:"features"`
	Correlations int            `json:"correlations"`
	TargetName   string         `json:"target_name"`
	TargetType   string         `json:"target_type"`
	Seasonality  int            `json:"seasonality_period,omitempty"`
	Seasonality2 int            `json:"secondary_seasonality_period,omitempty"`
	FeatureTypes map[string]int `json:"feature_types"`
}

// Summarize describes s.
func Summarize(s *Spec) Summary {
	sum := Summary{
		Name:         s.Name,
		Description:  s.Description,
		Rows:         s.Rows,
		Seed:         "None (random)",
		Features:     len(s.Features),
		Correlations: len(s.Correlations),
		TargetName:   s.Target.Name,
		TargetType:   s.Target.Type.String(),
		Seasonality:  len(s.Target.Seasonality),
		Seasonality2: len(s.Target.SecondarySeasonality),
		FeatureTypes: make(map[string]int),
	}
	if s.Seed != nil {
		sum.Seed = strconv.FormatInt(*s.Seed, 10)
	}
	for i := range s.Features {
		sum.FeatureTypes[s.Features[i].Type.String()]++
	}

	return sum
}

// String renders the summary as aligned "Key: value" lines.
func (s Summary) String() string {
	var sb strings.Builder
	line := func(k, v string) { fmt.Fprintf(&sb, "%-14s %s\n", k+":", v) }
	line("Name", s.Name)
	if s.Description != "" {
		line("Description", s.Description)
	}
	line("Rows", strconv.Itoa(s.Rows))
	line("Random seed", s.Seed)
	line("Features", strconv.Itoa(s.Features))
	line("Correlations", strconv.Itoa(s.Correlations))
	line("Target", fmt.Sprintf("%s (%s)", s.TargetName, s.TargetType))
	if s.Seasonality > 0 {
		line("Seasonality", fmt.Sprintf("period %d", s.Seasonality))
	}
	if s.Seasonality2 > 0 {
		line("Seasonality 2", fmt.Sprintf("period %d", s.Seasonality2))
	}

	return sb.String()
}
