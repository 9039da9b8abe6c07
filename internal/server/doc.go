// Package server provides the MCP server context, health checking, and
// HTTP transport plumbing for the cal-agent application.
//
// # Key Components
//
// ServerContext manages Google Calendar API clients with lazy
// initialization and caching. Clients are created per account from the
// file-based token cache and shared across tool invocations. The context
// also carries the metrics recorder and audit logger that instrumented
// tool handlers consume.
//
// HTTPServer serves the MCP endpoint over streamable HTTP together with
// the Kubernetes-style health endpoints (/healthz, /readyz,
// /healthz/detailed) provided by HealthChecker.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational metrics off the main application listener.
package server
