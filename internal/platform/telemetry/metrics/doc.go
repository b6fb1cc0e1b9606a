// Package metrics provides operational metrics collection.
//
// # Metric Categories
//
//   - Latency: request duration histograms by gRPC method and HTTP route
//   - Errors: request counts labelled by gRPC code or HTTP status
//   - Usage: conversions by direction and outcome
//
// # Integration
//
// Metrics are collected via a gRPC unary interceptor and an HTTP middleware
// and exposed in Prometheus format by Handler. Each Metrics value owns its
// registry, so tests and multiple servers in one process never collide.
package metrics
