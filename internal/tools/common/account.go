package common

import (
	"context"
)

// GetAccountFromArgs extracts the account name from request arguments,
// defaulting to "default" when no account is provided. The context is
// accepted so transports that carry an authenticated identity can be
// supported without changing every call site.
func GetAccountFromArgs(_ context.Context, args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
