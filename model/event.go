package model

import "time"

// OrderPlacedEvent is published after the backend accepted an order.
type OrderPlacedEvent struct {
	OrderID         string         `json:"order_id"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Items           []CartLineItem `json:"items"`
	TotalAmount     int64          `json:"total_amount"`
	PlacedAt        time.Time      `json:"placed_at"`
}
