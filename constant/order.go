package constant

const (
	OrderStatusPending = "pending"

	// DefaultProductStock is applied when the admin leaves stock empty or invalid.
	DefaultProductStock int64 = 100
)

const (
	MessageOrderSent       = "order sent, thank you"
	MessageProductCreated  = "product added"
	MessageProductUpdated  = "product updated"
	MessageProductDeleted  = "product deleted"
	MessageCategoryCreated = "category added"
	MessageLoggedOut       = "logged out"
)
