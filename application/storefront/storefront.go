package storefront

import (
	"context"
	"errors"
	"sync"

	adminapp "github.com/muhammadheryan/pempek-storefront/application/admin"
	"github.com/muhammadheryan/pempek-storefront/application/cart"
	catalogapp "github.com/muhammadheryan/pempek-storefront/application/catalog"
	checkoutapp "github.com/muhammadheryan/pempek-storefront/application/checkout"
	"github.com/muhammadheryan/pempek-storefront/application/router"
	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/model"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	cerr "github.com/muhammadheryan/pempek-storefront/utils/errors"
)

// Storefront is everything one browser session sees: the menu, its cart,
// the checkout form, the admin session and the current page. It also keeps
// the last notice to show the user, which is consumed by View.
type Storefront struct {
	catalog  catalogapp.CatalogApp
	cart     *cart.Store
	checkout checkoutapp.CheckoutApp
	admin    adminapp.AdminApp
	session  *adminapp.Session
	router   router.Router

	mu     sync.Mutex
	notice *model.Notice
}

// New wires a storefront against the backend. publisher may be nil.
func New(backendRepo backendrepo.BackendRepository, publisher checkoutapp.OrderPublisher) *Storefront {
	session := adminapp.NewSession()
	nav := router.NewRouter(session)
	catalog := catalogapp.NewCatalogApp(backendRepo)
	cartStore := cart.NewStore()

	return &Storefront{
		catalog:  catalog,
		cart:     cartStore,
		checkout: checkoutapp.NewCheckoutApp(backendRepo, cartStore, nav, publisher),
		admin:    adminapp.NewAdminApp(backendRepo, session, nav, catalog),
		session:  session,
		router:   nav,
	}
}

func (s *Storefront) Catalog() catalogapp.CatalogApp { return s.catalog }
func (s *Storefront) Cart() *cart.Store { return s.cart }
func (s *Storefront) Checkout() checkoutapp.CheckoutApp { return s.checkout }
func (s *Storefront) Admin() adminapp.AdminApp { return s.admin }
func (s *Storefront) Router() router.Router { return s.router }

// Init performs the initial page load of the menu data.
func (s *Storefront) Init(ctx context.Context) {
	s.RefreshCatalog(ctx)
}

// RefreshCatalog reloads categories and the products of the active filter.
// A failed load keeps whatever was loaded before.
func (s *Storefront) RefreshCatalog(ctx context.Context) {
	s.catalog.LoadCategories(ctx)
	s.catalog.LoadProducts(ctx)
}

// Navigate switches page. Landing on the menu reloads it, so a session that
// started while the backend was down picks the menu up once it is back.
func (s *Storefront) Navigate(ctx context.Context, page constant.Page) constant.Page {
	current := s.router.Navigate(page)
	if current == constant.PageMenu {
		s.RefreshCatalog(ctx)
	}
	return current
}

func (s *Storefront) SetFilter(ctx context.Context, category string) {
	s.catalog.SetFilter(ctx, category)
}

// AddToCart adds a product from the loaded menu.
func (s *Storefront) AddToCart(productID string) (model.CartResponse, error) {
	product, ok := s.catalog.FindProduct(productID)
	if !ok {
		return model.CartResponse{}, cerr.SetCustomError(constant.ErrNotFound)
	}
	s.cart.AddItem(product)
	return s.cart.Snapshot(), nil
}

// SetQuantity changes a cart line. An id that is not in the cart leaves the
// cart unchanged.
func (s *Storefront) SetQuantity(productID string, quantity int64) model.CartResponse {
	s.cart.SetQuantity(productID, quantity)
	return s.cart.Snapshot()
}

func (s *Storefront) RemoveFromCart(productID string) model.CartResponse {
	s.cart.RemoveItem(productID)
	return s.cart.Snapshot()
}

// SubmitOrder sends the cart. The outcome is also recorded as the notice.
func (s *Storefront) SubmitOrder(ctx context.Context) (*model.SubmitOrderResponse, error) {
	receipt, err := s.checkout.Submit(ctx)
	if err != nil {
		s.Fail(err)
		return nil, err
	}

	s.Notify(constant.NoticeSuccess, constant.MessageOrderSent)
	return &model.SubmitOrderResponse{
		Message: constant.MessageOrderSent,
		OrderID: receipt.OrderID,
		Page:    string(s.router.Current()),
	}, nil
}

func (s *Storefront) Login(ctx context.Context, req *model.LoginRequest) (model.SessionStatus, error) {
	if err := s.admin.Login(ctx, req); err != nil {
		s.Fail(err)
		return s.Status(), err
	}
	return s.Status(), nil
}

func (s *Storefront) Logout() model.SessionStatus {
	s.admin.Logout()
	s.Notify(constant.NoticeSuccess, constant.MessageLoggedOut)
	return s.Status()
}

func (s *Storefront) Status() model.SessionStatus {
	return model.SessionStatus{
		Authenticated: s.admin.IsAuthenticated(),
		Page:          string(s.router.Current()),
	}
}

// Notify replaces the pending notice.
func (s *Storefront) Notify(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = &model.Notice{Kind: kind, Message: message}
}

// Fail records err as an error notice.
func (s *Storefront) Fail(err error) {
	if err == nil {
		return
	}
	message := constant.ErrorTypeMessage[constant.ErrInternal]
	var ce cerr.CustomError
	if errors.As(err, &ce) {
		message = ce.Error()
	}
	s.Notify(constant.NoticeError, message)
}

func (s *Storefront) takeNotice() *model.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = nil
	return n
}

// View projects the current page. A pending notice is delivered once.
func (s *Storefront) View() model.View {
	page := s.router.Current()
	view := model.View{
		Page:   string(page),
		Notice: s.takeNotice(),
	}

	switch page {
	case constant.PageHome:
		view.Home = &model.HomeView{
			Title:   constant.StoreName,
			Tagline: constant.StoreTagline,
		}
	case constant.PageMenu:
		view.Menu = &model.MenuView{
			Categories: s.catalog.Categories(),
			Filter:     s.catalog.Filter(),
			Products:   s.catalog.Products(),
			Cart:       s.cart.Snapshot(),
			Customer:   s.checkout.Customer(),
		}
	case constant.PageAdminLogin:
		view.Login = &model.LoginView{
			Authenticated: s.admin.IsAuthenticated(),
		}
	case constant.PageAdmin:
		view.Admin = &model.AdminView{
			Orders:     s.admin.Orders(),
			Products:   s.admin.Products(),
			Categories: s.catalog.Categories(),
		}
	}
	return view
}
