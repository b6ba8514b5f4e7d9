// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/export"
	"github.com/katalvlaran/synthdata/generator"
)

// defaultMaxRows caps generate_dataset output so tool results stay small.
const defaultMaxRows = 1000

type tools struct {
	log     *zap.Logger
	maxRows int
}

func newTools(log *zap.Logger, maxRows int) *tools {
	return &tools{log: log, maxRows: maxRows}
}

func (t *tools) register(s *server.MCPServer) {
	document := mcp.WithString("document",
		mcp.Required(),
		mcp.Description("Dataset definition as JSON or YAML with a dataset_config root"),
	)

	s.AddTool(mcp.NewTool("validate_dataset_spec",
		mcp.WithDescription("Validate a dataset definition and return every problem found"),
		document,
	), t.handleValidate)

	s.AddTool(mcp.NewTool("summarize_dataset_spec",
		mcp.WithDescription("Summarize a valid dataset definition"),
		document,
	), t.handleSummarize)

	s.AddTool(mcp.NewTool("generate_dataset",
		mcp.WithDescription("Generate the dataset and return it as CSV"),
		document,
		mcp.WithNumber("max_rows",
			mcp.Description("Generate at most this many rows"),
			mcp.Min(1),
		),
	), t.handleGenerate)
}

// decode parses the document argument in whichever format it is written.
func decode(request mcp.CallToolRequest) (*dataset.Config, error) {
	doc, err := request.RequireString("document")
	if err != nil {
		return nil, err
	}

	return dataset.Decode([]byte(doc), dataset.Sniff([]byte(doc)))
}

func (t *tools) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := dataset.Result{Errors: []string{}}
	if cfg, err := decode(request); err != nil {
		res.Errors = append(res.Errors, err.Error())
	} else {
		res = dataset.Validate(cfg)
	}
	body, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, err
	}
	t.log.Debug("validated", zap.Bool("valid", res.Valid), zap.Int("errors", len(res.Errors)))

	return mcp.NewToolResultText(string(body)), nil
}

func (t *tools) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, result := t.compile(request)
	if result != nil {
		return result, nil
	}

	return mcp.NewToolResultText(dataset.Summarize(spec).String()), nil
}

func (t *tools) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, result := t.compile(request)
	if result != nil {
		return result, nil
	}
	limit := int(request.GetFloat("max_rows", float64(t.maxRows)))
	if limit <= 0 || limit > t.maxRows {
		limit = t.maxRows
	}
	if spec.Rows > limit {
		spec.Rows = limit
	}

	table, err := generator.New(generator.WithLogger(t.log)).Generate(ctx, spec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var buf bytes.Buffer
	if err = export.WriteCSV(&buf, table); err != nil {
		return nil, err
	}
	t.log.Info("generated", zap.String("dataset", table.Name), zap.Int("rows", table.Rows))

	// the first content is always plain CSV; diagnostics travel separately
	result = mcp.NewToolResultText(buf.String())
	if len(table.Diagnostics) > 0 {
		warnings := make([]string, len(table.Diagnostics))
		for i, d := range table.Diagnostics {
			warnings[i] = "warning: " + d.Message
		}
		result.Content = append(result.Content, mcp.NewTextContent(strings.Join(warnings, "\n")))
	}

	return result, nil
}

// compile returns the Spec, or a tool error result listing the problems.
func (t *tools) compile(request mcp.CallToolRequest) (*dataset.Spec, *mcp.CallToolResult) {
	cfg, err := decode(request)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	spec, err := dataset.Compile(cfg)
	if err != nil {
		var verr *dataset.ValidationError
		if errors.As(err, &verr) {
			return nil, mcp.NewToolResultError("definition is invalid:\n- " + strings.Join(verr.Errors, "\n- "))
		}
		return nil, mcp.NewToolResultError(err.Error())
	}

	return spec, nil
}
