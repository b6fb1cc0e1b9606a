// Package service wires MCP transports to the converter tools.
//
// It runs the MCP server over stdio for local clients or over streamable
// HTTP, and owns the gRPC connection to the converter service.
package service
