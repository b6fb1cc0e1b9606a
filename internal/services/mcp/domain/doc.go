// Package domain defines the MCP tools that expose the converter service:
// tool descriptors, input and result shapes, and handlers that call the
// converter over gRPC.
package domain
