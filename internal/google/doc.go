// Package google provides OAuth2 authentication and token management for
// the Google Calendar API.
//
// Tokens are stored per account in the user cache directory; the
// TokenProvider interface lets tests and alternative deployments plug in
// a different token source without touching the calendar client.
package google
