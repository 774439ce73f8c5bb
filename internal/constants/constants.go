package constants

const (
	// ContextKeyUserID is the key under which the authenticated user ID is
	// stored, both in the session and in the gin context.
	ContextKeyUserID = "user_id"

	SessionCookieName = "marketplace_session"

	MinPasswordLength = 6
)
