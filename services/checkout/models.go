package checkoutsrv

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/stelpay/checkout"
)

type initializeRequest struct {
	TokenAddress string `json:"token_address"`
}

type createInvoiceRequest struct {
	Merchant string `json:"merchant"`
	Amount   int64  `json:"amount"`
	Expiry   int64  `json:"expiry"`
}

type createInvoiceResponse struct {
	InvoiceID string `json:"invoice_id"`
}

type payRequest struct {
	Payer  string `json:"payer"`
	Amount int64  `json:"amount"`
}

type refundRequest struct {
	Merchant string `json:"merchant"`
	Amount   int64  `json:"amount"`
}

type invoiceResponse struct {
	InvoiceID string  `json:"invoice_id"`
	Merchant  string  `json:"merchant"`
	Amount    int64   `json:"amount"`
	Expiry    int64   `json:"expiry"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	Payer     *string `json:"payer,omitempty"`
}

type paymentResponse struct {
	InvoiceID string `json:"invoice_id"`
	Payer     string `json:"payer"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// errorCode maps domain errors to stable machine codes and HTTP statuses.
func errorCode(err error) (int, string) {
	switch errors.Cause(err) {
	case checkout.ErrAlreadyInitialized:
		return http.StatusConflict, "already_initialized"
	case checkout.ErrNotInitialized:
		return http.StatusServiceUnavailable, "not_initialized"
	case checkout.ErrUnauthorizedAccess:
		return http.StatusUnauthorized, "unauthorized_access"
	case checkout.ErrUnauthorized:
		return http.StatusForbidden, "unauthorized"
	case checkout.ErrInvoiceNotFound:
		return http.StatusNotFound, "invoice_not_found"
	case checkout.ErrInvalidAmount:
		return http.StatusBadRequest, "invalid_amount"
	case checkout.ErrInvalidExpiry:
		return http.StatusBadRequest, "invalid_expiry"
	case checkout.ErrInvoiceExpired:
		return http.StatusConflict, "invoice_expired"
	case checkout.ErrInvoiceNotOpen:
		return http.StatusConflict, "invoice_not_open"
	case checkout.ErrInvoiceAlreadyPaid:
		return http.StatusConflict, "invoice_already_paid"
	case checkout.ErrAmountMismatch:
		return http.StatusConflict, "amount_mismatch"
	case checkout.ErrInsufficientFunds:
		return http.StatusConflict, "insufficient_funds"
	}
	return http.StatusInternalServerError, "internal"
}
