package admin_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	appadmin "github.com/muhammadheryan/pempek-storefront/application/admin"
	"github.com/muhammadheryan/pempek-storefront/constant"
	backendmocks "github.com/muhammadheryan/pempek-storefront/mocks/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/model"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	cerr "github.com/muhammadheryan/pempek-storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const token = "admin:secret"

type recordingNav struct {
	pages []constant.Page
}

func (r *recordingNav) Navigate(page constant.Page) constant.Page {
	r.pages = append(r.pages, page)
	return page
}

type fakeCatalog struct {
	mu                sync.Mutex
	categories        []model.Category
	refreshCalls      int
	loadCategoryCalls int
}

func (f *fakeCatalog) FindCategory(id string) (model.Category, bool) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

func (f *fakeCatalog) LoadCategories(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCategoryCalls++
}

func (f *fakeCatalog) Refresh(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
}

var (
	categories = []model.Category{
		{ID: "c1", Name: "Pempek Goreng"},
		{ID: "c3", Name: "Snack"},
	}
	adminProducts = []model.Product{
		{ID: "p1", Name: "Pempek Kapal Selam", Price: 15000, CategoryID: "c1", CategoryName: "Pempek Goreng", Stock: 50},
	}
	adminOrders = []model.AdminOrder{
		{ID: "o1", Status: "pending", CreatedAt: "2026-10-19T10:00:00", Order: model.Order{CustomerName: "Budi", TotalAmount: 15000}},
	}
)

type harness struct {
	repo    *backendmocks.BackendRepository
	session *appadmin.Session
	nav     *recordingNav
	catalog *fakeCatalog
	app     appadmin.AdminApp
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		repo:    backendmocks.NewBackendRepository(t),
		session: appadmin.NewSession(),
		nav:     &recordingNav{},
		catalog: &fakeCatalog{categories: categories},
	}
	h.app = appadmin.NewAdminApp(h.repo, h.session, h.nav, h.catalog)
	return h
}

// login performs a successful login with empty admin lists.
func (h *harness) login(t *testing.T) {
	t.Helper()
	h.repo.On("AdminLogin", mock.Anything, &model.LoginRequest{Username: "admin", Password: "secret"}).
		Return(&model.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil).Once()
	h.repo.On("GetAdminOrders", mock.Anything, token).Return(adminOrders, nil).Once()
	h.repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
	require.NoError(t, h.app.Login(context.Background(), &model.LoginRequest{Username: "admin", Password: "secret"}))
	h.nav.pages = nil
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

func TestAdminApp_Login(t *testing.T) {
	tests := []struct {
		name        string
		req         *model.LoginRequest
		mockCall    func(repo *backendmocks.BackendRepository)
		wantErr     bool
		wantMessage string
	}{
		{
			name: "success: token stored and admin data loaded",
			req:  &model.LoginRequest{Username: "admin", Password: "secret"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("AdminLogin", mock.Anything, mock.Anything).
					Return(&model.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil).Once()
				repo.On("GetAdminOrders", mock.Anything, token).Return(adminOrders, nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
			},
		},
		{
			name: "success: failing initial loads do not fail login",
			req:  &model.LoginRequest{Username: "admin", Password: "secret"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("AdminLogin", mock.Anything, mock.Anything).
					Return(&model.LoginResponse{AccessToken: token}, nil).Once()
				repo.On("GetAdminOrders", mock.Anything, token).Return(nil, errors.New("timeout")).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(nil, errors.New("timeout")).Once()
			},
		},
		{
			name: "error: bad credentials use backend detail",
			req:  &model.LoginRequest{Username: "admin", Password: "wrong"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("AdminLogin", mock.Anything, mock.Anything).
					Return(nil, &backendrepo.BackendError{StatusCode: http.StatusUnauthorized, Detail: "Invalid credentials"}).Once()
			},
			wantErr:     true,
			wantMessage: "Invalid credentials",
		},
		{
			name: "error: network failure gets generic credential message",
			req:  &model.LoginRequest{Username: "admin", Password: "secret"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("AdminLogin", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection reset")).Once()
			},
			wantErr:     true,
			wantMessage: constant.ErrorTypeMessage[constant.ErrLoginFailed],
		},
		{
			name:        "error: empty credentials never reach the backend",
			req:         &model.LoginRequest{Username: "admin"},
			mockCall:    func(repo *backendmocks.BackendRepository) {},
			wantErr:     true,
			wantMessage: constant.ErrorTypeMessage[constant.ErrLoginFailed],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.mockCall(h.repo)

			err := h.app.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, constant.ErrLoginFailed, errType(t, err))
				assert.Equal(t, tt.wantMessage, err.Error())
				assert.False(t, h.app.IsAuthenticated())
				assert.Empty(t, h.session.Token())
				assert.Empty(t, h.nav.pages)
				return
			}

			require.NoError(t, err)
			assert.True(t, h.app.IsAuthenticated())
			assert.Equal(t, token, h.session.Token())
			assert.Equal(t, []constant.Page{constant.PageAdmin}, h.nav.pages)
		})
	}
}

func TestAdminApp_LoginLoadsLists(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	assert.Equal(t, adminOrders, h.app.Orders())
	assert.Equal(t, adminProducts, h.app.Products())
}

func TestAdminApp_Logout(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.app.SetProductForm(model.ProductForm{Name: "draft"})

	h.app.Logout()

	assert.False(t, h.app.IsAuthenticated())
	assert.Empty(t, h.session.Token())
	assert.Empty(t, h.app.Orders())
	assert.Empty(t, h.app.Products())
	assert.Equal(t, model.ProductForm{}, h.app.ProductForm())
	assert.Equal(t, []constant.Page{constant.PageHome}, h.nav.pages)
}

func TestAdminApp_RequiresSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.app.SetProductForm(model.ProductForm{Name: "Tekwan", Price: "12000", CategoryID: "c1"})

	assert.Equal(t, constant.ErrUnauthorize, errType(t, h.app.LoadOrders(ctx)))
	assert.Equal(t, constant.ErrUnauthorize, errType(t, h.app.LoadProducts(ctx)))

	_, err := h.app.CreateProduct(ctx)
	assert.Equal(t, constant.ErrUnauthorize, errType(t, err))

	_, err = h.app.DeleteProduct(ctx, "p1", func(string) bool { return true })
	assert.Equal(t, constant.ErrUnauthorize, errType(t, err))

	_, err = h.app.CreateCategory(ctx, &model.CategoryRequest{Name: "Minuman"})
	assert.Equal(t, constant.ErrUnauthorize, errType(t, err))

	h.repo.AssertNotCalled(t, "GetAdminOrders", mock.Anything, mock.Anything)
	h.repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
	h.repo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminApp_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		form     model.ProductForm
		mockCall func(repo *backendmocks.BackendRepository)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: price coerced and default stock applied",
			form: model.ProductForm{Name: "Pempek Lenjer", Price: "12000", CategoryID: "c1", Stock: ""},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("CreateProduct", mock.Anything, token, &model.Product{
					Name:         "Pempek Lenjer",
					Price:        12000,
					CategoryID:   "c1",
					CategoryName: "Pempek Goreng",
					Stock:        100,
				}).Return(&model.MessageResponse{Message: "Product created successfully", ProductID: "p9"}, nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
			},
		},
		{
			name: "success: explicit stock kept",
			form: model.ProductForm{Name: "Getas", Price: "20000", CategoryID: "c3", Stock: "15", ImageURL: "https://img/getas.jpg", Description: "renyah"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("CreateProduct", mock.Anything, token, &model.Product{
					Name:         "Getas",
					Price:        20000,
					CategoryID:   "c3",
					CategoryName: "Snack",
					ImageURL:     "https://img/getas.jpg",
					Stock:        15,
					Description:  "renyah",
				}).Return(&model.MessageResponse{ProductID: "p10"}, nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
			},
		},
		{
			name: "success: exponent notation keeps only the leading digits",
			form: model.ProductForm{Name: "Kemplang", Price: "25e3", CategoryID: "c3", Stock: "1E2"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("CreateProduct", mock.Anything, token, mock.MatchedBy(func(p *model.Product) bool {
					return p.Price == 25 && p.Stock == 1
				})).Return(&model.MessageResponse{}, nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
			},
		},
		{
			name: "success: invalid stock falls back to default",
			form: model.ProductForm{Name: "Getas", Price: "20000", CategoryID: "c3", Stock: "lots"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("CreateProduct", mock.Anything, token, mock.MatchedBy(func(p *model.Product) bool {
					return p.Stock == 100
				})).Return(&model.MessageResponse{}, nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()
			},
		},
		{
			name:     "error: missing name",
			form:     model.ProductForm{Price: "12000", CategoryID: "c1"},
			mockCall: func(repo *backendmocks.BackendRepository) {},
			wantErr:  true,
			errType:  constant.ErrIncompleteProduct,
		},
		{
			name:     "error: missing category",
			form:     model.ProductForm{Name: "Tekwan", Price: "12000"},
			mockCall: func(repo *backendmocks.BackendRepository) {},
			wantErr:  true,
			errType:  constant.ErrIncompleteProduct,
		},
		{
			name:     "error: unknown category",
			form:     model.ProductForm{Name: "Tekwan", Price: "12000", CategoryID: "c404"},
			mockCall: func(repo *backendmocks.BackendRepository) {},
			wantErr:  true,
			errType:  constant.ErrIncompleteProduct,
		},
		{
			name:     "error: unparsable price",
			form:     model.ProductForm{Name: "Tekwan", Price: "dua belas ribu", CategoryID: "c1"},
			mockCall: func(repo *backendmocks.BackendRepository) {},
			wantErr:  true,
			errType:  constant.ErrIncompleteProduct,
		},
		{
			name: "error: backend rejects product",
			form: model.ProductForm{Name: "Tekwan", Price: "12000", CategoryID: "c1"},
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("CreateProduct", mock.Anything, token, mock.Anything).
					Return(nil, &backendrepo.BackendError{StatusCode: http.StatusUnprocessableEntity, Detail: "field required"}).Once()
			},
			wantErr: true,
			errType: constant.ErrProductSaveFailed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.login(t)
			tt.mockCall(h.repo)
			h.app.SetProductForm(tt.form)

			_, err := h.app.CreateProduct(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errType, errType(t, err))
				assert.Equal(t, tt.form, h.app.ProductForm())
				assert.Zero(t, h.catalog.refreshCalls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.ProductForm{}, h.app.ProductForm())
			assert.Equal(t, 1, h.catalog.refreshCalls)
		})
	}
}

func TestAdminApp_UpdateProduct(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.repo.On("UpdateProduct", mock.Anything, token, "p1", mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == "p1" && p.Price == 16000 && p.Stock == 45 && p.CategoryName == "Pempek Goreng"
	})).Return(&model.MessageResponse{Message: "Product updated successfully"}, nil).Once()
	h.repo.On("GetAdminProducts", mock.Anything, token).Return(adminProducts, nil).Once()

	res, err := h.app.UpdateProduct(context.Background(), "p1", model.ProductForm{
		Name: "Pempek Kapal Selam", Price: "16000", CategoryID: "c1", Stock: "45",
	})

	require.NoError(t, err)
	assert.Equal(t, "Product updated successfully", res.Message)
	assert.Equal(t, 1, h.catalog.refreshCalls)
}

func TestAdminApp_DeleteProduct(t *testing.T) {
	tests := []struct {
		name        string
		confirm     appadmin.Confirmer
		mockCall    func(repo *backendmocks.BackendRepository)
		wantDeleted bool
		wantErr     bool
		wantRefresh int
	}{
		{
			name:        "declined confirmation sends nothing",
			confirm:     func(string) bool { return false },
			mockCall:    func(repo *backendmocks.BackendRepository) {},
			wantDeleted: false,
		},
		{
			name:        "missing confirmer sends nothing",
			confirm:     nil,
			mockCall:    func(repo *backendmocks.BackendRepository) {},
			wantDeleted: false,
		},
		{
			name:    "confirmed delete refreshes both lists",
			confirm: func(string) bool { return true },
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("DeleteProduct", mock.Anything, token, "p1").Return(nil).Once()
				repo.On("GetAdminProducts", mock.Anything, token).Return([]model.Product{}, nil).Once()
			},
			wantDeleted: true,
			wantRefresh: 1,
		},
		{
			name:    "backend failure surfaces error",
			confirm: func(string) bool { return true },
			mockCall: func(repo *backendmocks.BackendRepository) {
				repo.On("DeleteProduct", mock.Anything, token, "p1").
					Return(&backendrepo.BackendError{StatusCode: http.StatusNotFound, Detail: "Product not found"}).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.login(t)
			tt.mockCall(h.repo)

			deleted, err := h.app.DeleteProduct(context.Background(), "p1", tt.confirm)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, constant.ErrProductDeleteFailed, errType(t, err))
				assert.Equal(t, "Product not found", err.Error())
				assert.Equal(t, adminProducts, h.app.Products())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.Equal(t, tt.wantRefresh, h.catalog.refreshCalls)
		})
	}
}

func TestAdminApp_ExpiredTokenIsUnauthorized(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.repo.On("GetAdminOrders", mock.Anything, token).
		Return(nil, &backendrepo.BackendError{StatusCode: http.StatusUnauthorized, Detail: "Invalid authentication credentials"}).Once()

	err := h.app.LoadOrders(context.Background())

	assert.Equal(t, constant.ErrUnauthorize, errType(t, err))
	assert.Equal(t, adminOrders, h.app.Orders())
}

func TestAdminApp_StaleProductRefreshDiscarded(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	started := make(chan struct{})
	release := make(chan struct{})
	afterDelete := []model.Product{}

	h.repo.On("GetAdminProducts", mock.Anything, token).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(adminProducts, nil).Once()
	h.repo.On("DeleteProduct", mock.Anything, token, "p1").Return(nil).Once()
	h.repo.On("GetAdminProducts", mock.Anything, token).Return(afterDelete, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.app.LoadProducts(context.Background())
	}()
	<-started

	deleted, err := h.app.DeleteProduct(context.Background(), "p1", func(string) bool { return true })
	require.NoError(t, err)
	require.True(t, deleted)

	close(release)
	wg.Wait()

	assert.Equal(t, afterDelete, h.app.Products())
}

func TestAdminApp_CreateCategory(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.repo.On("CreateCategory", mock.Anything, token, &model.CategoryRequest{Name: "Minuman", Description: "Es kacang"}).
		Return(&model.MessageResponse{Message: "Category created successfully", CategoryID: "c9"}, nil).Once()

	res, err := h.app.CreateCategory(context.Background(), &model.CategoryRequest{Name: "Minuman", Description: "Es kacang"})

	require.NoError(t, err)
	assert.Equal(t, "c9", res.CategoryID)
	assert.Equal(t, 1, h.catalog.loadCategoryCalls)

	_, err = h.app.CreateCategory(context.Background(), &model.CategoryRequest{})
	assert.Equal(t, constant.ErrInvalidRequest, errType(t, err))
}
