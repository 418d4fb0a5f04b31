package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/pempek-storefront/application/router"
	"github.com/muhammadheryan/pempek-storefront/application/storefront"
	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/model"
	utilsContext "github.com/muhammadheryan/pempek-storefront/utils/context"
	"github.com/muhammadheryan/pempek-storefront/utils/errors"
	validatorx "github.com/muhammadheryan/pempek-storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Registry       *storefront.Registry
	Signer         *storefront.SessionSigner
	CookieName     string
	InternalAPIKey string
}

type RestHandler struct {
	Registry *storefront.Registry
}

func NewTransport(opts Options) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Registry: opts.Registry,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/sessions", rh.SessionStats).Methods(http.MethodGet)

	// storefront routes
	mux.HandleFunc("/view", rh.View).Methods(http.MethodGet)
	mux.HandleFunc("/navigate", rh.Navigate).Methods(http.MethodPost)
	mux.HandleFunc("/catalog", rh.Catalog).Methods(http.MethodGet)
	mux.HandleFunc("/catalog/filter", rh.SetFilter).Methods(http.MethodPost)
	mux.HandleFunc("/catalog/refresh", rh.RefreshCatalog).Methods(http.MethodPost)
	mux.HandleFunc("/cart", rh.Cart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{id}", rh.SetCartQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/cart/items/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)
	mux.HandleFunc("/checkout/customer", rh.Customer).Methods(http.MethodGet)
	mux.HandleFunc("/checkout/customer", rh.SetCustomer).Methods(http.MethodPut)
	mux.HandleFunc("/checkout/customer", rh.SetCustomerField).Methods(http.MethodPatch)
	mux.HandleFunc("/checkout/submit", rh.SubmitOrder).Methods(http.MethodPost)

	// admin session routes
	mux.HandleFunc("/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	mux.HandleFunc("/admin/logout", rh.AdminLogout).Methods(http.MethodPost)
	mux.HandleFunc("/admin/session", rh.AdminSession).Methods(http.MethodGet)

	// protected admin routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware())
	admin.HandleFunc("/orders", rh.AdminOrders).Methods(http.MethodGet)
	admin.HandleFunc("/products", rh.AdminProducts).Methods(http.MethodGet)
	admin.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware(opts.Registry, opts.Signer, opts.CookieName))

	return mux
}

func currentStorefront(w http.ResponseWriter, r *http.Request) (*storefront.Storefront, bool) {
	sf, ok := utilsContext.GetStorefront(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return nil, false
	}
	return sf, true
}

// View handler
// @Summary Current page
// @Description Projection of the page currently shown to this session, with any pending notice
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.View
// @Router /view [get]
func (s *RestHandler) View(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.View())
}

// Navigate handler
// @Summary Navigate
// @Description Switch page. The admin page resolves to home unless logged in.
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body model.NavigateRequest true "Navigate Request"
// @Success 200 {object} model.View
// @Failure 400 {object} model.ErrorResponse
// @Router /navigate [post]
func (s *RestHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.NavigateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	page, err := router.ParsePage(req.Page)
	if err != nil {
		writeError(w, err)
		return
	}

	sf.Navigate(r.Context(), page)
	writeSuccess(w, sf.View())
}

// Catalog handler
// @Summary Menu
// @Description Categories, active filter and the products loaded for it
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogResponse
// @Router /catalog [get]
func (s *RestHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, catalogResponse(sf))
}

// SetFilter handler
// @Summary Filter menu
// @Description Select a category by name; an empty category shows all products
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.FilterRequest true "Filter Request"
// @Success 200 {object} model.CatalogResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /catalog/filter [post]
func (s *RestHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.FilterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sf.SetFilter(r.Context(), req.Category)
	writeSuccess(w, catalogResponse(sf))
}

// RefreshCatalog handler
// @Summary Reload menu
// @Description Reload categories and the products of the active filter from the backend
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogResponse
// @Router /catalog/refresh [post]
func (s *RestHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	sf.RefreshCatalog(r.Context())
	writeSuccess(w, catalogResponse(sf))
}

func catalogResponse(sf *storefront.Storefront) model.CatalogResponse {
	return model.CatalogResponse{
		Categories: sf.Catalog().Categories(),
		Filter:     sf.Catalog().Filter(),
		Products:   sf.Catalog().Products(),
	}
}

// Cart handler
// @Summary Cart
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) Cart(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.Cart().Snapshot())
}

// AddCartItem handler
// @Summary Add to cart
// @Description Add one unit of a menu product
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.AddCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := sf.AddToCart(req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SetCartQuantity handler
// @Summary Set quantity
// @Description Set the quantity of a cart line; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.SetQuantityRequest true "Set Quantity Request"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /cart/items/{id} [put]
func (s *RestHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.SetQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, sf.SetQuantity(mux.Vars(r)["id"], req.Quantity))
}

// RemoveCartItem handler
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{id} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.RemoveFromCart(mux.Vars(r)["id"]))
}

// Customer handler
// @Summary Customer form
// @Tags Checkout
// @Produce json
// @Success 200 {object} model.CustomerData
// @Router /checkout/customer [get]
func (s *RestHandler) Customer(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.Checkout().Customer())
}

// SetCustomer handler
// @Summary Replace customer form
// @Description Store the whole customer form. Completeness is checked on submit.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CustomerData true "Customer Data"
// @Success 200 {object} model.CustomerData
// @Failure 400 {object} model.ErrorResponse
// @Router /checkout/customer [put]
func (s *RestHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.CustomerData
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sf.Checkout().SetCustomer(req)
	writeSuccess(w, sf.Checkout().Customer())
}

// SetCustomerField handler
// @Summary Update one customer field
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.SetFieldRequest true "Set Field Request"
// @Success 200 {object} model.CustomerData
// @Failure 400 {object} model.ErrorResponse
// @Router /checkout/customer [patch]
func (s *RestHandler) SetCustomerField(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.SetFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := sf.Checkout().SetField(req.Field, req.Value); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sf.Checkout().Customer())
}

// SubmitOrder handler
// @Summary Submit order
// @Description Send the cart and customer form as an order. On failure cart and form are kept.
// @Tags Checkout
// @Produce json
// @Success 200 {object} model.SubmitOrderResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /checkout/submit [post]
func (s *RestHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	res, err := sf.SubmitOrder(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SessionStats handler
// @Summary Active sessions
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SessionStats
// @Failure 401 {object} model.ErrorResponse
// @Router /internal/sessions [get]
func (s *RestHandler) SessionStats(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.SessionStats{Active: s.Registry.Len()})
}
