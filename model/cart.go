package model

// CartLineItem embeds the product so it serializes flat, the way the backend
// expects order items.
type CartLineItem struct {
	Product
	Quantity int64 `json:"quantity"`
	Subtotal int64 `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineItem `json:"items"`
	Total int64          `json:"total"`
}
