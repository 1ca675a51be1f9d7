// Package mcp provides an MCP (Model Context Protocol) server adapter
// for PakUni. It enables AI assistants to query the university and
// scholarship directory.
package mcp

import "errors"

// ErrMissingDirectoryService is returned when the directory service is
// not provided.
var ErrMissingDirectoryService = errors.New("mcp: directory service is required")
