// Package checkoutsrv exposes the engine over a small JSON HTTP API. Proofs
// travel in the X-Auth-Proof header; the service adds nothing to the
// lifecycle rules.
package checkoutsrv

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stelpay/checkout"
	"github.com/stelpay/checkout/engine"
)

const proofHeader = "X-Auth-Proof"

func NewServer(eng *engine.Engine) *Server {
	return &Server{
		eng:    eng,
		logger: zap.L().Named("checkout_server"),
	}
}

type Server struct {
	eng    *engine.Engine
	logger *zap.Logger
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/initialize", s.initialize)
	e.POST("/v1/invoices", s.createInvoice)
	e.POST("/v1/invoices/:id/pay", s.pay)
	e.POST("/v1/invoices/:id/refund", s.refund)
	e.GET("/v1/invoices/:id", s.getInvoice)
	e.GET("/v1/invoices/:id/payment", s.getPayment)
	e.GET("/v1/invoices/:id/status", s.getStatus)
}

func (s *Server) initialize(c echo.Context) error {
	var req initializeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Code: "bad_request", Error: err.Error()})
	}
	if err := s.eng.Initialize(c.Request().Context(), req.TokenAddress); err != nil {
		return s.fail(c, "initialize", err)
	}
	opsProcessed.WithLabelValues("initialize", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createInvoice(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Code: "bad_request", Error: err.Error()})
	}
	id, err := s.eng.CreateInvoice(c.Request().Context(), req.Merchant, proof(c), req.Amount, req.Expiry)
	if err != nil {
		return s.fail(c, "create_invoice", err)
	}
	opsProcessed.WithLabelValues("create_invoice", "ok").Inc()
	return c.JSON(http.StatusCreated, createInvoiceResponse{InvoiceID: id.String()})
}

func (s *Server) pay(c echo.Context) error {
	id, ok := s.invoiceID(c)
	if !ok {
		return nil
	}
	var req payRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Code: "bad_request", Error: err.Error()})
	}
	if err := s.eng.Pay(c.Request().Context(), id, req.Payer, proof(c), req.Amount); err != nil {
		return s.fail(c, "pay", err)
	}
	opsProcessed.WithLabelValues("pay", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) refund(c echo.Context) error {
	id, ok := s.invoiceID(c)
	if !ok {
		return nil
	}
	var req refundRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Code: "bad_request", Error: err.Error()})
	}
	if err := s.eng.Refund(c.Request().Context(), id, req.Merchant, proof(c), req.Amount); err != nil {
		return s.fail(c, "refund", err)
	}
	opsProcessed.WithLabelValues("refund", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getInvoice(c echo.Context) error {
	id, ok := s.invoiceID(c)
	if !ok {
		return nil
	}
	inv, err := s.eng.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, "get_invoice", err)
	}
	if inv == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Code: "invoice_not_found", Error: checkout.ErrInvoiceNotFound.Error()})
	}
	return c.JSON(http.StatusOK, invoiceResponse{
		InvoiceID: inv.ID.String(),
		Merchant:  inv.Merchant,
		Amount:    inv.Amount,
		Expiry:    inv.Expiry,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		Payer:     inv.Payer,
	})
}

func (s *Server) getPayment(c echo.Context) error {
	id, ok := s.invoiceID(c)
	if !ok {
		return nil
	}
	p, err := s.eng.GetPayment(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, "get_payment", err)
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Code: "invoice_not_found", Error: checkout.ErrInvoiceNotFound.Error()})
	}
	return c.JSON(http.StatusOK, paymentResponse{
		InvoiceID: p.InvoiceID.String(),
		Payer:     p.Payer,
		Amount:    p.Amount,
		Timestamp: p.Timestamp,
	})
}

func (s *Server) getStatus(c echo.Context) error {
	id, ok := s.invoiceID(c)
	if !ok {
		return nil
	}
	status, exists, err := s.eng.GetInvoiceStatus(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, "get_invoice_status", err)
	}
	if !exists {
		return c.JSON(http.StatusNotFound, errorResponse{Code: "invoice_not_found", Error: checkout.ErrInvoiceNotFound.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: string(status)})
}

func (s *Server) invoiceID(c echo.Context) (checkout.InvoiceID, bool) {
	id, err := checkout.ParseInvoiceID(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, errorResponse{Code: "bad_invoice_id", Error: err.Error()})
		return checkout.InvoiceID{}, false
	}
	return id, true
}

func (s *Server) fail(c echo.Context, op string, err error) error {
	status, code := errorCode(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Operation failed.", zap.String("op", op), zap.Error(err))
	}
	opsProcessed.WithLabelValues(op, code).Inc()
	return c.JSON(status, errorResponse{Code: code, Error: err.Error()})
}

func proof(c echo.Context) string {
	return c.Request().Header.Get(proofHeader)
}
