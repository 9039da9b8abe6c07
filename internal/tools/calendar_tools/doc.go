// Package calendar_tools provides MCP (Model Context Protocol) tools for Google Calendar operations.
//
// This package exposes Google Calendar functionality through a standardized MCP interface,
// allowing AI assistants to manage calendars, events, and scheduling on behalf of users.
//
// The tools support multi-account authentication and cover event management,
// free/busy queries, and working-hours availability search. Tools that mutate
// calendar state are only registered when the server runs in read-write mode.
package calendar_tools
