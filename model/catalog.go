package model

// Category is owned by the backend and only read by the storefront.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product prices are integers in Rupiah.
type Product struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	ImageURL     string `json:"image_url"`
	Stock        int64  `json:"stock"`
	Description  string `json:"description"`
}

// ProductForm is the admin product form as typed, before coercion.
type ProductForm struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	ImageURL    string `json:"image_url"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// MessageResponse is the acknowledgement the backend returns for admin writes.
type MessageResponse struct {
	Message    string `json:"message"`
	ProductID  string `json:"product_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

type DeleteProductResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}
