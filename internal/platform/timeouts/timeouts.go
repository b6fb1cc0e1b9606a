// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the converter service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single conversion call from the web or MCP driver to the
// converter service.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long a server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second

// RateLimiterIdle is how long an idle client bucket is kept before eviction.
const RateLimiterIdle = 10 * time.Minute
