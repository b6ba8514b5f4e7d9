// SPDX-License-Identifier: MIT

// Command datagen-mcp serves dataset validation and generation as MCP tools
// over stdio, so a language model can check and repair its own definitions.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName    = "synthdata"
	serverVersion = "0.1.0"
)

func main() {
	// stdout carries the protocol; logs go to stderr
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "datagen-mcp:", err)
		os.Exit(1)
	}
	defer log.Sync()

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	newTools(log, defaultMaxRows).register(s)

	log.Info("serving on stdio")
	if err = server.ServeStdio(s); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
