package router

import (
	"sync"

	"github.com/muhammadheryan/pempek-storefront/constant"
	"github.com/muhammadheryan/pempek-storefront/utils/errors"
)

type AuthChecker interface {
	IsAuthenticated() bool
}

// Router holds the page currently shown. The admin page is only reachable
// while the session is authenticated; otherwise it resolves to home.
type Router interface {
	Navigate(page constant.Page) constant.Page
	Current() constant.Page
}

type routerImpl struct {
	auth AuthChecker

	mu      sync.Mutex
	current constant.Page
}

func NewRouter(auth AuthChecker) Router {
	return &routerImpl{auth: auth, current: constant.PageHome}
}

// Navigate switches pages and returns the page actually selected.
func (r *routerImpl) Navigate(page constant.Page) constant.Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = r.resolve(page)
	return r.current
}

func (r *routerImpl) Current() constant.Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = r.resolve(r.current)
	return r.current
}

func (r *routerImpl) resolve(page constant.Page) constant.Page {
	switch page {
	case constant.PageHome, constant.PageMenu, constant.PageAdminLogin:
		return page
	case constant.PageAdmin:
		if r.auth != nil && r.auth.IsAuthenticated() {
			return page
		}
		return constant.PageHome
	default:
		return constant.PageHome
	}
}

// ParsePage maps a client-supplied page name onto a Page.
func ParsePage(s string) (constant.Page, error) {
	for _, p := range constant.Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.SetCustomError(constant.ErrInvalidRequest)
}
