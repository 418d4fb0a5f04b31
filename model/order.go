package model

type CustomerData struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Order is what gets submitted; TotalAmount is the sum of item subtotals at submission time.
type Order struct {
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Items           []CartLineItem `json:"items"`
	TotalAmount     int64          `json:"total_amount"`
}

// AdminOrder is an order as listed back by the backend.
type AdminOrder struct {
	ID string `json:"id"`
	Order
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type OrderReceipt struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type SubmitOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	Page    string `json:"page"`
}
