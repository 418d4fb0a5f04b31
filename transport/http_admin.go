package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/model"
)

// AdminLogin handler
// @Summary Admin login
// @Description Exchange admin credentials for a backend token held by this session
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.SessionStatus
// @Failure 401 {object} model.ErrorResponse
// @Router /admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := sf.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminLogout handler
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} model.SessionStatus
// @Router /admin/logout [post]
func (s *RestHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.Logout())
}

// AdminSession handler
// @Summary Admin session status
// @Tags Admin
// @Produce json
// @Success 200 {object} model.SessionStatus
// @Router /admin/session [get]
func (s *RestHandler) AdminSession(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}
	writeSuccess(w, sf.Status())
}

// AdminOrders handler
// @Summary List orders
// @Tags Admin
// @Produce json
// @Success 200 {array} model.AdminOrder
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/orders [get]
func (s *RestHandler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	if err := sf.Admin().LoadOrders(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sf.Admin().Orders())
}

// AdminProducts handler
// @Summary List products
// @Tags Admin
// @Produce json
// @Success 200 {array} model.Product
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/products [get]
func (s *RestHandler) AdminProducts(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	if err := sf.Admin().LoadProducts(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sf.Admin().Products())
}

// CreateProduct handler
// @Summary Create product
// @Description Price and stock are sent as typed; stock falls back to 100 when empty or invalid
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.ProductForm true "Product Form"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.ProductForm
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sf.Admin().SetProductForm(req)
	res, err := sf.Admin().CreateProduct(r.Context())
	if err != nil {
		sf.Fail(err)
		writeError(w, err)
		return
	}
	sf.Notify(constant.NoticeSuccess, constant.MessageProductCreated)
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.ProductForm true "Product Form"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.ProductForm
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := sf.Admin().UpdateProduct(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		sf.Fail(err)
		writeError(w, err)
		return
	}
	sf.Notify(constant.NoticeSuccess, constant.MessageProductUpdated)
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Description Nothing is sent to the backend unless confirm=true
// @Tags Admin
// @Produce json
// @Param id path string true "Product ID"
// @Param confirm query bool false "Confirm deletion"
// @Success 200 {object} model.DeleteProductResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	deleted, err := sf.Admin().DeleteProduct(r.Context(), mux.Vars(r)["id"], func(string) bool {
		return confirmed
	})
	if err != nil {
		sf.Fail(err)
		writeError(w, err)
		return
	}

	res := model.DeleteProductResponse{Deleted: deleted}
	if deleted {
		res.Message = constant.MessageProductDeleted
		sf.Notify(constant.NoticeSuccess, res.Message)
	}
	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.CategoryRequest true "Category Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /admin/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	sf, ok := currentStorefront(w, r)
	if !ok {
		return
	}

	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := sf.Admin().CreateCategory(r.Context(), &req)
	if err != nil {
		sf.Fail(err)
		writeError(w, err)
		return
	}
	sf.Notify(constant.NoticeSuccess, constant.MessageCategoryCreated)
	writeSuccess(w, res)
}
