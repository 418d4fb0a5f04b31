package constant

type contextKey string

const (
	SessionIDKey  contextKey = "session_id"
	StorefrontKey contextKey = "storefront"
)
