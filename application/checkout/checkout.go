package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/pempek-storefront/application/cart"
	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/model"
	backendrepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	"github.com/muhammadheryan/pempek-storefront/utils/errors"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/pempek-storefront/utils/validator"
	"go.uber.org/zap"
)

const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

type Navigator interface {
	Navigate(page constant.Page) constant.Page
}

// OrderPublisher announces accepted orders. It is optional.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error
}

// CheckoutApp owns the customer form and submits the cart as an order.
// A failed submission leaves cart and form untouched so the user can retry;
// a successful one clears both and goes back home.
type CheckoutApp interface {
	Customer() model.CustomerData
	SetCustomer(data model.CustomerData)
	SetField(field, value string) error
	ClearCustomer()
	Submit(ctx context.Context) (*model.OrderReceipt, error)
}

type checkoutAppImpl struct {
	backendRepo backendrepo.BackendRepository
	cart        *cart.Store
	nav         Navigator
	publisher   OrderPublisher
	now         func() time.Time

	mu       sync.Mutex
	customer model.CustomerData

	// held for the whole of Submit; a second submit is rejected, not queued
	submitMu sync.Mutex
}

func NewCheckoutApp(backendRepo backendrepo.BackendRepository, cartStore *cart.Store, nav Navigator, publisher OrderPublisher) CheckoutApp {
	return &checkoutAppImpl{
		backendRepo: backendRepo,
		cart:        cartStore,
		nav:         nav,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *checkoutAppImpl) Customer() model.CustomerData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

func (s *checkoutAppImpl) SetCustomer(data model.CustomerData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = data
}

func (s *checkoutAppImpl) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldName:
		s.customer.Name = value
	case FieldPhone:
		s.customer.Phone = value
	case FieldAddress:
		s.customer.Address = value
	default:
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func (s *checkoutAppImpl) ClearCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = model.CustomerData{}
}

func (s *checkoutAppImpl) Submit(ctx context.Context) (*model.OrderReceipt, error) {
	if !s.submitMu.TryLock() {
		return nil, errors.SetCustomError(constant.ErrOrderInProgress)
	}
	defer s.submitMu.Unlock()

	customer := s.Customer()
	if err := validatorx.ValidateStruct(&customer); err != nil {
		logger.Debug("[Submit] incomplete customer", zap.Strings("fields", validatorx.FailedFields(err)))
		return nil, errors.SetCustomError(constant.ErrIncompleteCustomer)
	}

	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	order := &model.Order{
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Items:           snapshot.Items,
		TotalAmount:     snapshot.Total,
	}

	receipt, err := s.backendRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("[Submit] err backendRepo.CreateOrder",
			zap.Int("items", len(order.Items)),
			zap.Int64("total_amount", order.TotalAmount),
			zap.String("error", err.Error()),
		)
		if detail := backendrepo.Detail(err); detail != "" {
			return nil, errors.SetCustomErrorMessage(constant.ErrOrderFailed, detail)
		}
		return nil, errors.SetCustomError(constant.ErrOrderFailed)
	}

	s.cart.RemoveOrdered(snapshot.Items)
	s.mu.Lock()
	if s.customer == customer {
		s.customer = model.CustomerData{}
	}
	s.mu.Unlock()
	if s.nav != nil {
		s.nav.Navigate(constant.PageHome)
	}

	logger.Info("[Submit] order sent",
		zap.String("order_id", receipt.OrderID),
		zap.Int64("total_amount", order.TotalAmount),
	)
	s.publish(ctx, receipt, order)

	return receipt, nil
}

func (s *checkoutAppImpl) publish(ctx context.Context, receipt *model.OrderReceipt, order *model.Order) {
	if s.publisher == nil {
		return
	}
	event := model.OrderPlacedEvent{
		OrderID:         receipt.OrderID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Items:           order.Items,
		TotalAmount:     order.TotalAmount,
		PlacedAt:        s.now(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error("[Submit] publish order placed", zap.String("order_id", receipt.OrderID), zap.String("error", err.Error()))
	}
}
