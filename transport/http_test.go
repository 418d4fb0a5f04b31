package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/pempek-storefront/application/storefront"
	"github.com/muhammadheryan/pempek-storefront/constant"
	backendmocks "github.com/muhammadheryan/pempek-storefront/mocks/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/muhammadheryan/pempek-storefront/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	cookieName  = "storefront_session"
	internalKey = "internal-key"
	adminToken  = "admin:secret"
)

var (
	categories = []model.Category{{ID: "c1", Name: "Pempek Goreng"}}
	products   = []model.Product{
		{ID: "p1", Name: "Pempek Kapal Selam", Price: 15000, CategoryID: "c1", CategoryName: "Pempek Goreng", Stock: 50},
	}
)

type testServer struct {
	*httptest.Server
	repo     *backendmocks.BackendRepository
	registry *storefront.Registry
	client   *http.Client
}

func newTestServer(t *testing.T) *testServer {
	repo := backendmocks.NewBackendRepository(t)
	repo.On("GetCategories", mock.Anything).Return(categories, nil).Maybe()
	repo.On("GetProducts", mock.Anything, "").Return(products, nil).Maybe()
	return newTestServerWithRepo(t, repo)
}

func newTestServerWithRepo(t *testing.T, repo *backendmocks.BackendRepository) *testServer {
	registry := storefront.NewRegistry(repo, nil, time.Hour)
	handler := transport.NewTransport(transport.Options{
		Registry:       registry,
		Signer:         storefront.NewSessionSigner("test-secret", time.Hour),
		CookieName:     cookieName,
		InternalAPIKey: internalKey,
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		Server:   srv,
		repo:     repo,
		registry: registry,
		client:   &http.Client{Jar: jar},
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	s.repo.On("AdminLogin", mock.Anything, &model.LoginRequest{Username: "admin", Password: "secret"}).
		Return(&model.LoginResponse{AccessToken: adminToken, TokenType: "bearer"}, nil).Once()
	s.repo.On("GetAdminOrders", mock.Anything, adminToken).Return([]model.AdminOrder{}, nil).Once()
	s.repo.On("GetAdminProducts", mock.Anything, adminToken).Return(products, nil).Once()

	var status model.SessionStatus
	resp := s.do(t, http.MethodPost, "/admin/login", model.LoginRequest{Username: "admin", Password: "secret"}, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, status.Authenticated)
}

func TestTransport_SessionCookieKeepsCart(t *testing.T) {
	srv := newTestServer(t)

	var view model.View
	resp := srv.do(t, http.MethodGet, "/view", nil, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, string(constant.PageHome), view.Page)
	require.NotEmpty(t, resp.Cookies())
	assert.Equal(t, cookieName, resp.Cookies()[0].Name)
	assert.True(t, resp.Cookies()[0].HttpOnly)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var cart model.CartResponse
	resp = srv.do(t, http.MethodPost, "/cart/items", model.AddCartItemRequest{ProductID: "p1"}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Cookies())

	resp = srv.do(t, http.MethodPut, "/cart/items/p1", model.SetQuantityRequest{Quantity: 3}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	srv.do(t, http.MethodGet, "/cart", nil, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)
	assert.Equal(t, int64(45000), cart.Total)
	assert.Equal(t, 1, srv.registry.Len())

	resp = srv.do(t, http.MethodPut, "/cart/items/p404", model.SetQuantityRequest{Quantity: 2}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(45000), cart.Total)

	srv.do(t, http.MethodDelete, "/cart/items/p1", nil, &cart)
	assert.Empty(t, cart.Items)
}

func TestTransport_MenuRecoversAfterBackendOutage(t *testing.T) {
	repo := backendmocks.NewBackendRepository(t)
	repo.On("GetCategories", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	repo.On("GetProducts", mock.Anything, "").Return(nil, errors.New("connection refused")).Once()
	srv := newTestServerWithRepo(t, repo)

	var catalog model.CatalogResponse
	resp := srv.do(t, http.MethodGet, "/catalog", nil, &catalog)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, catalog.Products)

	repo.On("GetCategories", mock.Anything).Return(categories, nil).Once()
	repo.On("GetProducts", mock.Anything, "").Return(products, nil).Once()
	resp = srv.do(t, http.MethodPost, "/catalog/refresh", nil, &catalog)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, categories, catalog.Categories)
	assert.Equal(t, products, catalog.Products)

	repo.On("GetCategories", mock.Anything).Return(categories, nil).Once()
	repo.On("GetProducts", mock.Anything, "").Return(products, nil).Once()
	var view model.View
	resp = srv.do(t, http.MethodPost, "/navigate", model.NavigateRequest{Page: "menu"}, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, view.Menu)
	assert.Equal(t, products, view.Menu.Products)

	var cart model.CartResponse
	resp = srv.do(t, http.MethodPost, "/cart/items", model.AddCartItemRequest{ProductID: "p1"}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(15000), cart.Total)
}

func TestTransport_InvalidCookieStartsNewSession(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/cart", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies())
	assert.NotEqual(t, "forged", resp.Cookies()[0].Value)
}

func TestTransport_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantType   constant.ErrorType
	}{
		{name: "unknown product", method: http.MethodPost, path: "/cart/items", body: model.AddCartItemRequest{ProductID: "p404"}, wantStatus: http.StatusNotFound, wantType: constant.ErrNotFound},
		{name: "missing product id", method: http.MethodPost, path: "/cart/items", body: map[string]string{}, wantStatus: http.StatusBadRequest, wantType: constant.ErrInvalidRequest},
		{name: "unknown page", method: http.MethodPost, path: "/navigate", body: model.NavigateRequest{Page: "checkout"}, wantStatus: http.StatusBadRequest, wantType: constant.ErrInvalidRequest},
		{name: "incomplete customer", method: http.MethodPost, path: "/checkout/submit", wantStatus: http.StatusBadRequest, wantType: constant.ErrIncompleteCustomer},
		{name: "unknown customer field", method: http.MethodPatch, path: "/checkout/customer", body: model.SetFieldRequest{Field: "email", Value: "x"}, wantStatus: http.StatusBadRequest, wantType: constant.ErrInvalidRequest},
		{name: "admin orders without login", method: http.MethodGet, path: "/admin/orders", wantStatus: http.StatusUnauthorized, wantType: constant.ErrUnauthorize},
		{name: "admin create without login", method: http.MethodPost, path: "/admin/products", body: model.ProductForm{Name: "x"}, wantStatus: http.StatusUnauthorized, wantType: constant.ErrUnauthorize},
		{name: "internal without key", method: http.MethodGet, path: "/internal/sessions", wantStatus: http.StatusUnauthorized, wantType: constant.ErrUnauthorize},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var res model.ErrorResponse
			resp := srv.do(t, tt.method, tt.path, tt.body, &res)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantType], res.Code)
			assert.Equal(t, constant.ErrorTypeMessage[tt.wantType], res.Message)
		})
	}
}

func TestTransport_Checkout(t *testing.T) {
	srv := newTestServer(t)
	customer := model.CustomerData{Name: "Budi", Phone: "081234567890", Address: "Jl. Merdeka 1"}

	srv.do(t, http.MethodPost, "/navigate", model.NavigateRequest{Page: "menu"}, nil)
	srv.do(t, http.MethodPost, "/cart/items", model.AddCartItemRequest{ProductID: "p1"}, nil)

	var got model.CustomerData
	resp := srv.do(t, http.MethodPut, "/checkout/customer", customer, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, customer, got)

	srv.repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.CustomerName == "Budi" && o.TotalAmount == 15000 && len(o.Items) == 1
	})).Return(&model.OrderReceipt{Message: "Order created successfully", OrderID: "o1"}, nil).Once()

	var submitted model.SubmitOrderResponse
	resp = srv.do(t, http.MethodPost, "/checkout/submit", nil, &submitted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "o1", submitted.OrderID)
	assert.Equal(t, string(constant.PageHome), submitted.Page)

	var view model.View
	srv.do(t, http.MethodGet, "/view", nil, &view)
	require.NotNil(t, view.Notice)
	assert.Equal(t, constant.MessageOrderSent, view.Notice.Message)

	var cart model.CartResponse
	srv.do(t, http.MethodGet, "/cart", nil, &cart)
	assert.Empty(t, cart.Items)
}

func TestTransport_Admin(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	var view model.View
	srv.do(t, http.MethodGet, "/view", nil, &view)
	assert.Equal(t, string(constant.PageAdmin), view.Page)

	srv.repo.On("GetAdminProducts", mock.Anything, adminToken).Return(products, nil).Once()
	var listed []model.Product
	resp := srv.do(t, http.MethodGet, "/admin/products", nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, products, listed)

	var deleted model.DeleteProductResponse
	resp = srv.do(t, http.MethodDelete, "/admin/products/p1", nil, &deleted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, deleted.Deleted)
	srv.repo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)

	srv.repo.On("DeleteProduct", mock.Anything, adminToken, "p1").Return(nil).Once()
	srv.repo.On("GetAdminProducts", mock.Anything, adminToken).Return([]model.Product{}, nil).Once()
	resp = srv.do(t, http.MethodDelete, "/admin/products/p1?confirm=true", nil, &deleted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, deleted.Deleted)

	srv.repo.On("CreateProduct", mock.Anything, adminToken, mock.MatchedBy(func(p *model.Product) bool {
		return p.Price == 12000 && p.Stock == 100 && p.CategoryName == "Pempek Goreng"
	})).Return(&model.MessageResponse{Message: "Product created successfully", ProductID: "p9"}, nil).Once()
	srv.repo.On("GetAdminProducts", mock.Anything, adminToken).Return(products, nil).Once()
	var created model.MessageResponse
	resp = srv.do(t, http.MethodPost, "/admin/products", model.ProductForm{Name: "Pempek Lenjer", Price: "12000", CategoryID: "c1"}, &created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "p9", created.ProductID)

	var status model.SessionStatus
	srv.do(t, http.MethodPost, "/admin/logout", nil, &status)
	assert.False(t, status.Authenticated)

	resp = srv.do(t, http.MethodGet, "/admin/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTransport_InternalSessions(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodGet, "/view", nil, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/internal/sessions", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+internalKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats model.SessionStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stats.Active)
	assert.Empty(t, resp.Cookies())
}
