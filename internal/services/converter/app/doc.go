// Package server wires the converter gRPC service, its health endpoint and
// optional conversion history into one listener.
package server
