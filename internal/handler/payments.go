package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
	"github.com/leaguelink/backend/internal/validation"
)

// PaymentsHandler serves the payment function endpoints the browser
// calls directly.
type PaymentsHandler struct {
	Handler
	billing *service.BillingService
}

// NewPaymentsHandler constructs a PaymentsHandler.
func NewPaymentsHandler(s *server.Server, billing *service.BillingService) *PaymentsHandler {
	return &PaymentsHandler{
		Handler: NewHandler(s),
		billing: billing,
	}
}

// CreateSetupIntentRequest is the payload for POST /api/create-setup-intent.
type CreateSetupIntentRequest struct {
	Email  string `json:"email" validate:"required,email"`
	UserID string `json:"userId" validate:"required"`
}

func (r *CreateSetupIntentRequest) Validate() error {
	return validation.Struct(r)
}

// CreateSetupIntent finds or creates the billing customer and returns
// a setup intent client secret for card collection.
func (h *PaymentsHandler) CreateSetupIntent(c echo.Context, req *CreateSetupIntentRequest) (*service.SetupIntentResult, error) {
	return h.billing.CreateSetupIntent(c.Request().Context(), req.Email, req.UserID)
}

// CreateSubscriptionRequest is the payload for POST /api/create-subscription.
type CreateSubscriptionRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	PriceID    string `json:"priceId" validate:"required"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	return validation.Struct(r)
}

// CreateSubscription subscribes the customer to a price using their
// saved payment method.
func (h *PaymentsHandler) CreateSubscription(c echo.Context, req *CreateSubscriptionRequest) (*service.SubscriptionResult, error) {
	return h.billing.CreateSubscription(c.Request().Context(), req.CustomerID, req.PriceID)
}

// CreatePortalSessionRequest is the payload for POST /api/create-portal-session.
type CreatePortalSessionRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	ReturnURL  string `json:"returnUrl" validate:"required,url"`
}

func (r *CreatePortalSessionRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePortalSession opens a hosted billing portal session.
func (h *PaymentsHandler) CreatePortalSession(c echo.Context, req *CreatePortalSessionRequest) (*service.PortalResult, error) {
	return h.billing.CreatePortalSession(c.Request().Context(), req.CustomerID, req.ReturnURL)
}
