package instrumentation

import "strings"

// Cardinality helpers for metric labels.
//
// Full email addresses make poor label values: every distinct user adds a
// time series, which inflates memory and storage in Prometheus and slows
// queries. Record the domain part instead when a per-user dimension is
// needed.

// ExtractUserDomain returns the domain part of an email address, or
// "unknown" when the input does not look like one.
//
// Example:
//
//	ExtractUserDomain("jane@example.com")  // "example.com"
//	ExtractUserDomain("invalid")           // "unknown"
func ExtractUserDomain(email string) string {
	if email == "" {
		return "unknown"
	}

	parts := strings.Split(email, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// Operation types recorded for Google Calendar API metrics.
// Status, OAuth, and Service constants are defined in config.go.
const (
	OperationList     = "list"
	OperationGet      = "get"
	OperationCreate   = "create"
	OperationUpdate   = "update"
	OperationDelete   = "delete"
	OperationFreeBusy = "freebusy"
	OperationSearch   = "search"
)
