package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/leaguelink/backend/internal/billing"
	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/server"
)

// BillingService implements the payment flows on top of the billing
// provider client: setup intents, subscriptions and the customer
// portal.
type BillingService struct {
	server *server.Server
}

// NewBillingService creates a BillingService.
func NewBillingService(s *server.Server) *BillingService {
	return &BillingService{
		server: s,
	}
}

// SetupIntentResult is the payload returned to the browser after a
// setup intent is created.
type SetupIntentResult struct {
	ClientSecret string `json:"clientSecret"`
	CustomerID   string `json:"customerId"`
}

// SubscriptionResult is the payload returned after a subscription is
// created.
type SubscriptionResult struct {
	SubscriptionID string `json:"subscriptionId"`
	Status         string `json:"status"`
}

// PortalResult carries the hosted portal session URL the browser
// redirects to.
type PortalResult struct {
	URL string `json:"url"`
}

// CreateSetupIntent finds or creates the billing customer for the
// given email, then creates a card setup intent against it. The
// returned client secret lets the browser confirm the card with the
// provider directly.
func (s *BillingService) CreateSetupIntent(ctx context.Context, email, userID string) (*SetupIntentResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	customer, err := client.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, s.mapBillingError(err, "failed to look up customer")
	}

	if customer == nil {
		customer, err = client.CreateCustomer(ctx, email, userID)
		if err != nil {
			return nil, s.mapBillingError(err, "failed to create customer")
		}
	}

	intent, err := client.CreateSetupIntent(ctx, customer.ID)
	if err != nil {
		return nil, s.mapBillingError(err, "failed to create setup intent")
	}

	return &SetupIntentResult{
		ClientSecret: intent.ClientSecret,
		CustomerID:   customer.ID,
	}, nil
}

// CreateSubscription subscribes an existing customer to a price. It
// resolves the payment method to charge: the customer's configured
// default first, otherwise their first saved card. A customer with no
// saved payment method is rejected so the provider never creates an
// incomplete subscription.
func (s *BillingService) CreateSubscription(ctx context.Context, customerID, priceID string) (*SubscriptionResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	customer, err := client.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, s.mapBillingError(err, "failed to fetch customer")
	}

	paymentMethodID := customer.InvoiceSettings.DefaultPaymentMethod
	if paymentMethodID == "" {
		methods, err := client.ListPaymentMethods(ctx, customerID, "card")
		if err != nil {
			return nil, s.mapBillingError(err, "failed to list payment methods")
		}
		if len(methods) == 0 {
			return nil, errs.NewBadRequestError("No payment method found. Please add a payment method first.")
		}
		paymentMethodID = methods[0].ID
	}

	subscription, err := client.CreateSubscription(ctx, customerID, priceID, paymentMethodID)
	if err != nil {
		return nil, s.mapBillingError(err, "failed to create subscription")
	}

	return &SubscriptionResult{
		SubscriptionID: subscription.ID,
		Status:         subscription.Status,
	}, nil
}

// CreatePortalSession opens a hosted billing portal session for the
// customer.
func (s *BillingService) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	session, err := client.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		return nil, s.mapBillingError(err, "failed to create portal session")
	}

	return &PortalResult{
		URL: session.URL,
	}, nil
}

// client returns the billing client, or a configuration error when
// the deployment has no billing credentials.
func (s *BillingService) client() (*billing.Client, error) {
	if s.server.Billing == nil {
		s.server.Logger.Error().Msg("billing request received but no billing client is configured")
		return nil, errs.NewConfigurationError()
	}
	return s.server.Billing, nil
}

// mapBillingError converts billing client failures into envelope
// errors. Provider "not found" becomes a 404, other provider errors a
// 502 carrying the provider's message, and transport failures stay
// plain errors so the global handler reports a 500.
func (s *BillingService) mapBillingError(err error, logMessage string) error {
	var billingErr *billing.Error
	if errors.As(err, &billingErr) {
		if billingErr.NotFound() {
			return errs.NewNotFoundError("Customer not found")
		}

		s.server.Logger.Warn().Err(err).Msg(logMessage)
		return errs.NewUpstreamError(billingErr.Message)
	}

	s.server.Logger.Error().Err(err).Msg(logMessage)
	return errors.Wrap(err, logMessage)
}
