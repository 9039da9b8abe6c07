// Package common holds the pieces every tool package shares: account
// extraction from tool arguments and the instrumented handler wrappers
// that record metrics and audit entries around each tool call.
package common
