// Package batch provides helpers for tools that operate on many items in
// one call, such as deleting a set of calendar events.
//
// It parses ID parameters that arrive as a single string, a JSON array,
// or a JSON array serialized into a string (some MCP clients do that),
// runs the per-item operation collecting partial failures, and formats
// the aggregate outcome as JSON.
package batch
