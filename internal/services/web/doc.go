// Package web serves the HTTP surface of the roman converter: health,
// greetings, both conversion directions and Prometheus metrics.
//
// Conversions run in-process by default. When a converter gRPC address is
// configured the handlers call the converter service instead, forwarding the
// request id and negotiated locale as gRPC metadata.
package web
