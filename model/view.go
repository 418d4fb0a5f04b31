package model

// View is the projection of a storefront for its current page. Only the
// block matching Page is set.
type View struct {
	Page   string     `json:"page"`
	Notice *Notice    `json:"notice,omitempty"`
	Home   *HomeView  `json:"home,omitempty"`
	Menu   *MenuView  `json:"menu,omitempty"`
	Login  *LoginView `json:"login,omitempty"`
	Admin  *AdminView `json:"admin,omitempty"`
}

type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type HomeView struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

type MenuView struct {
	Categories []Category   `json:"categories"`
	Filter     string       `json:"filter"`
	Products   []Product    `json:"products"`
	Cart       CartResponse `json:"cart"`
	Customer   CustomerData `json:"customer"`
}

type LoginView struct {
	Authenticated bool `json:"authenticated"`
}

type AdminView struct {
	Orders     []AdminOrder `json:"orders"`
	Products   []Product    `json:"products"`
	Categories []Category   `json:"categories"`
}

type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

type FilterRequest struct {
	Category string `json:"category"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type SetFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type CatalogResponse struct {
	Categories []Category `json:"categories"`
	Filter     string     `json:"filter"`
	Products   []Product  `json:"products"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SessionStats struct {
	Active int `json:"active"`
}
