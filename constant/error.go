package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrIncompleteCustomer
	ErrEmptyCart
	ErrIncompleteProduct
	ErrOrderFailed
	ErrLoginFailed
	ErrProductSaveFailed
	ErrProductDeleteFailed
	ErrCategorySaveFailed
	ErrBackendUnavailable
	ErrOrderInProgress
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrIncompleteCustomer:  "please complete all customer details",
	ErrEmptyCart:           "cart is empty",
	ErrIncompleteProduct:   "please complete the product details",
	ErrOrderFailed:         "failed to send order, please try again",
	ErrLoginFailed:         "login failed, check username and password",
	ErrProductSaveFailed:   "failed to save product",
	ErrProductDeleteFailed: "failed to delete product",
	ErrCategorySaveFailed:  "failed to save category",
	ErrBackendUnavailable:  "service unavailable, please try again",
	ErrOrderInProgress:     "order is already being sent",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrIncompleteCustomer:  http.StatusBadRequest,
	ErrEmptyCart:           http.StatusBadRequest,
	ErrIncompleteProduct:   http.StatusBadRequest,
	ErrOrderFailed:         http.StatusBadGateway,
	ErrLoginFailed:         http.StatusUnauthorized,
	ErrProductSaveFailed:   http.StatusBadGateway,
	ErrProductDeleteFailed: http.StatusBadGateway,
	ErrCategorySaveFailed:  http.StatusBadGateway,
	ErrBackendUnavailable:  http.StatusBadGateway,
	ErrOrderInProgress:     http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrIncompleteCustomer:  "0005",
	ErrEmptyCart:           "0006",
	ErrIncompleteProduct:   "0007",
	ErrOrderFailed:         "0008",
	ErrLoginFailed:         "0009",
	ErrProductSaveFailed:   "0010",
	ErrProductDeleteFailed: "0011",
	ErrCategorySaveFailed:  "0012",
	ErrBackendUnavailable:  "0013",
	ErrOrderInProgress:     "0014",
}
