package google

// DefaultOAuthScopes are the Google OAuth scopes the calendar tools need.
//
// The scopes provide access to:
//   - OpenID Connect user info (account identification)
//   - Google Calendar: full access (events and free/busy)
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scopes
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/calendar.events",
}
