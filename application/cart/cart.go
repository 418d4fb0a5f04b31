// Package cart holds the shopping cart of one storefront session.
package cart

import (
	"sync"

	"github.com/muhammadheryan/pempek-storefront/model"
)

// Store is an ordered list of line items, at most one per product id.
// Subtotals are recomputed on every mutation and never set directly.
type Store struct {
	mu    sync.Mutex
	items []model.CartLineItem
}

func NewStore() *Store {
	return &Store{}
}

// AddItem adds one unit of product, appending a new line when the product is not in the cart yet.
func (s *Store) AddItem(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
		s.items[i].Subtotal = s.items[i].Price * s.items[i].Quantity
		return
	}

	s.items = append(s.items, model.CartLineItem{
		Product:  product,
		Quantity: 1,
		Subtotal: product.Price,
	})
}

func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

// SetQuantity with quantity <= 0 removes the line. Unknown ids are ignored.
func (s *Store) SetQuantity(productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(productID)
		return
	}

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = quantity
		s.items[i].Subtotal = s.items[i].Price * quantity
	}
}

// Total is the sum of all subtotals, 0 for an empty cart.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumSubtotals(s.items)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// RemoveOrdered takes the ordered quantities out of the cart. Units added
// after the order snapshot was taken stay in the cart.
func (s *Store) RemoveOrdered(ordered []model.CartLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range ordered {
		i := s.indexOf(o.ID)
		if i < 0 {
			continue
		}
		left := s.items[i].Quantity - o.Quantity
		if left <= 0 {
			s.remove(o.ID)
			continue
		}
		s.items[i].Quantity = left
		s.items[i].Subtotal = s.items[i].Price * left
	}
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []model.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Item(productID string) (model.CartLineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return model.CartLineItem{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Snapshot returns items and total read under the same lock.
func (s *Store) Snapshot() model.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartLineItem, len(s.items))
	copy(items, s.items)
	return model.CartResponse{
		Items: items,
		Total: sumSubtotals(items),
	}
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) remove(productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func sumSubtotals(items []model.CartLineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}
