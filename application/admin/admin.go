package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/model"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	cerr "github.com/muhammadheryan/pempek-storefront/utils/errors"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/pempek-storefront/utils/validator"
	"go.uber.org/zap"
)

const confirmDeletePrompt = "Delete this product?"

type Navigator interface {
	Navigate(page constant.Page) constant.Page
}

// Catalog is the part of the public catalog admin writes need: category
// lookup for the product form and reloads after a change.
type Catalog interface {
	FindCategory(id string) (model.Category, bool)
	LoadCategories(ctx context.Context)
	Refresh(ctx context.Context)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer func(prompt string) bool

type AdminApp interface {
	Login(ctx context.Context, req *model.LoginRequest) error
	Logout()
	IsAuthenticated() bool

	LoadOrders(ctx context.Context) error
	LoadProducts(ctx context.Context) error
	Orders() []model.AdminOrder
	Products() []model.Product

	ProductForm() model.ProductForm
	SetProductForm(form model.ProductForm)
	CreateProduct(ctx context.Context) (*model.MessageResponse, error)
	UpdateProduct(ctx context.Context, productID string, form model.ProductForm) (*model.MessageResponse, error)
	DeleteProduct(ctx context.Context, productID string, confirm Confirmer) (bool, error)
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.MessageResponse, error)
}

type adminAppImpl struct {
	backendRepo backendrepo.BackendRepository
	session     *Session
	nav         Navigator
	catalog     Catalog

	mu          sync.Mutex
	orders      []model.AdminOrder
	products    []model.Product
	form        model.ProductForm
	ordersSeq   uint64
	productsSeq uint64
}

func NewAdminApp(backendRepo backendrepo.BackendRepository, session *Session, nav Navigator, catalog Catalog) AdminApp {
	return &adminAppImpl{
		backendRepo: backendRepo,
		session:     session,
		nav:         nav,
		catalog:     catalog,
	}
}

// Login exchanges credentials for a token. On success the admin page is
// opened and its orders and products are loaded.
func (s *adminAppImpl) Login(ctx context.Context, req *model.LoginRequest) error {
	if err := validatorx.ValidateStruct(req); err != nil {
		return cerr.SetCustomError(constant.ErrLoginFailed)
	}

	res, err := s.backendRepo.AdminLogin(ctx, req)
	if err != nil {
		logger.Error("[Login] err backendRepo.AdminLogin", zap.String("username", req.Username), zap.String("error", err.Error()))
		if detail := backendrepo.Detail(err); detail != "" {
			return cerr.SetCustomErrorMessage(constant.ErrLoginFailed, detail)
		}
		return cerr.SetCustomError(constant.ErrLoginFailed)
	}

	s.session.set(res.AccessToken)
	s.nav.Navigate(constant.PageAdmin)

	if err := s.LoadOrders(ctx); err != nil {
		logger.Warn("[Login] initial orders load failed", zap.String("error", err.Error()))
	}
	if err := s.LoadProducts(ctx); err != nil {
		logger.Warn("[Login] initial products load failed", zap.String("error", err.Error()))
	}
	return nil
}

func (s *adminAppImpl) Logout() {
	s.session.clear()

	s.mu.Lock()
	s.orders = nil
	s.products = nil
	s.form = model.ProductForm{}
	s.ordersSeq++
	s.productsSeq++
	s.mu.Unlock()

	s.nav.Navigate(constant.PageHome)
}

func (s *adminAppImpl) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *adminAppImpl) LoadOrders(ctx context.Context) error {
	token, err := s.token()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ordersSeq++
	tag := s.ordersSeq
	s.mu.Unlock()

	orders, err := s.backendRepo.GetAdminOrders(ctx, token)
	if err != nil {
		logger.Error("[LoadOrders] err backendRepo.GetAdminOrders", zap.String("error", err.Error()))
		return s.backendError(err, constant.ErrBackendUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tag == s.ordersSeq {
		s.orders = orders
	}
	return nil
}

// LoadProducts refreshes the admin product list. When refreshes overlap, for
// instance one started before a delete finished and one after it, only the
// last dispatched one is applied.
func (s *adminAppImpl) LoadProducts(ctx context.Context) error {
	token, err := s.token()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.productsSeq++
	tag := s.productsSeq
	s.mu.Unlock()

	products, err := s.backendRepo.GetAdminProducts(ctx, token)
	if err != nil {
		logger.Error("[LoadProducts] err backendRepo.GetAdminProducts", zap.String("error", err.Error()))
		return s.backendError(err, constant.ErrBackendUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.productsSeq {
		logger.Debug("[LoadProducts] discard stale admin products", zap.Uint64("tag", tag), zap.Uint64("latest", s.productsSeq))
		return nil
	}
	s.products = products
	return nil
}

func (s *adminAppImpl) Orders() []model.AdminOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AdminOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *adminAppImpl) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *adminAppImpl) ProductForm() model.ProductForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *adminAppImpl) SetProductForm(form model.ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// CreateProduct submits the stored product form. The form is reset only when
// the backend accepted the product.
func (s *adminAppImpl) CreateProduct(ctx context.Context) (*model.MessageResponse, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	form := s.ProductForm()
	product, err := s.buildProduct(form)
	if err != nil {
		return nil, err
	}

	res, err := s.backendRepo.CreateProduct(ctx, token, product)
	if err != nil {
		logger.Error("[CreateProduct] err backendRepo.CreateProduct", zap.String("name", product.Name), zap.String("error", err.Error()))
		return nil, s.backendError(err, constant.ErrProductSaveFailed)
	}

	s.mu.Lock()
	if s.form == form {
		s.form = model.ProductForm{}
	}
	s.mu.Unlock()

	s.refreshProducts(ctx)
	return res, nil
}

func (s *adminAppImpl) UpdateProduct(ctx context.Context, productID string, form model.ProductForm) (*model.MessageResponse, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.buildProduct(form)
	if err != nil {
		return nil, err
	}
	product.ID = productID

	res, err := s.backendRepo.UpdateProduct(ctx, token, productID, product)
	if err != nil {
		logger.Error("[UpdateProduct] err backendRepo.UpdateProduct", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil, s.backendError(err, constant.ErrProductSaveFailed)
	}

	s.refreshProducts(ctx)
	return res, nil
}

// DeleteProduct asks confirm first; a declined or missing confirmation sends
// nothing and reports deleted=false without an error.
func (s *adminAppImpl) DeleteProduct(ctx context.Context, productID string, confirm Confirmer) (bool, error) {
	token, err := s.token()
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(productID) == "" {
		return false, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	if confirm == nil || !confirm(confirmDeletePrompt) {
		return false, nil
	}

	if err := s.backendRepo.DeleteProduct(ctx, token, productID); err != nil {
		logger.Error("[DeleteProduct] err backendRepo.DeleteProduct", zap.String("product_id", productID), zap.String("error", err.Error()))
		return false, s.backendError(err, constant.ErrProductDeleteFailed)
	}

	s.refreshProducts(ctx)
	return true, nil
}

func (s *adminAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.MessageResponse, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	res, err := s.backendRepo.CreateCategory(ctx, token, req)
	if err != nil {
		logger.Error("[CreateCategory] err backendRepo.CreateCategory", zap.String("name", req.Name), zap.String("error", err.Error()))
		return nil, s.backendError(err, constant.ErrCategorySaveFailed)
	}

	s.catalog.LoadCategories(ctx)
	return res, nil
}

// buildProduct validates the form and coerces its numbers. Stock falls back to
// the default when empty, unparsable or not positive.
func (s *adminAppImpl) buildProduct(form model.ProductForm) (*model.Product, error) {
	if err := validatorx.ValidateStruct(&form); err != nil {
		logger.Debug("[buildProduct] incomplete product", zap.Strings("fields", validatorx.FailedFields(err)))
		return nil, cerr.SetCustomError(constant.ErrIncompleteProduct)
	}

	price, ok := parseFormInt(form.Price)
	if !ok || price < 0 {
		return nil, cerr.SetCustomError(constant.ErrIncompleteProduct)
	}

	stock, ok := parseFormInt(form.Stock)
	if !ok || stock <= 0 {
		stock = constant.DefaultProductStock
	}

	category, found := s.catalog.FindCategory(form.CategoryID)
	if !found {
		return nil, cerr.SetCustomError(constant.ErrIncompleteProduct)
	}

	return &model.Product{
		Name:         form.Name,
		Price:        price,
		CategoryID:   form.CategoryID,
		CategoryName: category.Name,
		ImageURL:     form.ImageURL,
		Stock:        stock,
		Description:  form.Description,
	}, nil
}

// refreshProducts reloads both the admin list and the public menu so a
// change is visible to customers right away.
func (s *adminAppImpl) refreshProducts(ctx context.Context) {
	if err := s.LoadProducts(ctx); err != nil {
		logger.Warn("[refreshProducts] admin products reload failed", zap.String("error", err.Error()))
	}
	s.catalog.Refresh(ctx)
}

func (s *adminAppImpl) token() (string, error) {
	token := s.session.Token()
	if token == "" || !s.session.IsAuthenticated() {
		return "", cerr.SetCustomError(constant.ErrUnauthorize)
	}
	return token, nil
}

// backendError maps a backend failure onto errType, keeping the backend's
// message when it sent one. A 401 means the token is no longer accepted.
func (s *adminAppImpl) backendError(err error, errType constant.ErrorType) error {
	var be *backendrepo.BackendError
	if errors.As(err, &be) && be.StatusCode == http.StatusUnauthorized {
		return cerr.SetCustomError(constant.ErrUnauthorize)
	}
	if detail := backendrepo.Detail(err); detail != "" {
		return cerr.SetCustomErrorMessage(errType, detail)
	}
	return cerr.SetCustomError(errType)
}
