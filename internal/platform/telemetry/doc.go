// Package telemetry groups the operational observability used by roman
// services.
//
// Tracing is configured by internal/platform/otel and flows through gRPC
// stats handlers and HTTP spans. Operational metrics live in
// telemetry/metrics and are exposed in Prometheus format.
package telemetry
