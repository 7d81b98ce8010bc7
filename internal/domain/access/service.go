package access

import "context"

// AccessService exchanges the shared reporting PIN for a session token.
type AccessService interface {
	IssueToken(ctx context.Context, req TokenRequest) (TokenResponse, error)
	// RevokeToken invalidates a previously issued token ahead of its expiry.
	RevokeToken(ctx context.Context, token string) error
}
