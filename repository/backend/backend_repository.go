package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/pempek-storefront/model"
)

// BackendRepository is the storefront's view of the vendor backend REST API.
// Admin calls take the bearer token explicitly; an empty token is rejected
// before any request is sent.
type BackendRepository interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetProducts(ctx context.Context, category string) ([]model.Product, error)
	CreateOrder(ctx context.Context, order *model.Order) (*model.OrderReceipt, error)
	AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetAdminOrders(ctx context.Context, token string) ([]model.AdminOrder, error)
	GetAdminProducts(ctx context.Context, token string) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, product *model.Product) (*model.MessageResponse, error)
	UpdateProduct(ctx context.Context, token, productID string, product *model.Product) (*model.MessageResponse, error)
	DeleteProduct(ctx context.Context, token, productID string) error
	CreateCategory(ctx context.Context, token string, req *model.CategoryRequest) (*model.MessageResponse, error)
}

// ErrMissingToken is returned for admin calls made without a session token.
var ErrMissingToken = errors.New("missing admin token")

// BackendError is a non-2xx answer from the backend. Detail carries the
// backend's own message when it sent one.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Detail extracts the backend-provided message from err, if any.
func Detail(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Detail
	}
	return ""
}

type HTTP struct {
	baseURL string
	client  *http.Client
}

func NewBackendRepository(baseURL string, timeout time.Duration) BackendRepository {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewBackendRepositoryWithClient lets callers bring their own http.Client.
func NewBackendRepositoryWithClient(baseURL string, client *http.Client) BackendRepository {
	return &HTTP{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

const (
	pathCategories      = "/api/categories"
	pathProducts        = "/api/products"
	pathOrders          = "/api/orders"
	pathAdminLogin      = "/api/admin/login"
	pathAdminOrders     = "/api/admin/orders"
	pathAdminProducts   = "/api/admin/products"
	pathAdminCategories = "/api/admin/categories"
)

func (r *HTTP) GetCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := r.do(ctx, http.MethodGet, pathCategories, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTP) GetProducts(ctx context.Context, category string) ([]model.Product, error) {
	path := pathProducts
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var out []model.Product
	if err := r.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTP) CreateOrder(ctx context.Context, order *model.Order) (*model.OrderReceipt, error) {
	var out model.OrderReceipt
	if err := r.do(ctx, http.MethodPost, pathOrders, "", order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *HTTP) AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := r.do(ctx, http.MethodPost, pathAdminLogin, "", req, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, &BackendError{StatusCode: http.StatusOK, Detail: "empty access token"}
	}
	return &out, nil
}

func (r *HTTP) GetAdminOrders(ctx context.Context, token string) ([]model.AdminOrder, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out []model.AdminOrder
	if err := r.do(ctx, http.MethodGet, pathAdminOrders, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTP) GetAdminProducts(ctx context.Context, token string) ([]model.Product, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out []model.Product
	if err := r.do(ctx, http.MethodGet, pathAdminProducts, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTP) CreateProduct(ctx context.Context, token string, product *model.Product) (*model.MessageResponse, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out model.MessageResponse
	if err := r.do(ctx, http.MethodPost, pathAdminProducts, token, product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *HTTP) UpdateProduct(ctx context.Context, token, productID string, product *model.Product) (*model.MessageResponse, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out model.MessageResponse
	path := pathAdminProducts + "/" + url.PathEscape(productID)
	if err := r.do(ctx, http.MethodPut, path, token, product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *HTTP) DeleteProduct(ctx context.Context, token, productID string) error {
	if token == "" {
		return ErrMissingToken
	}
	path := pathAdminProducts + "/" + url.PathEscape(productID)
	return r.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (r *HTTP) CreateCategory(ctx context.Context, token string, req *model.CategoryRequest) (*model.MessageResponse, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out model.MessageResponse
	if err := r.do(ctx, http.MethodPost, pathAdminCategories, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// do sends one JSON request. out may be nil when the body is not needed.
func (r *HTTP) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &BackendError{StatusCode: resp.StatusCode, Detail: parseDetail(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// parseDetail reads FastAPI-style errors. detail is usually a string but
// validation failures send a list of objects; those collapse to their msg fields.
func parseDetail(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
