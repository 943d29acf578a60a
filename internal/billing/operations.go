package billing

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// FindCustomerByEmail looks up an existing customer by email address.
// It returns nil (and no error) when no customer matches; the payments
// provider's own per-email idempotency is relied on beyond that.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("limit", "1")

	resp, err := c.doGet(ctx, "/v1/customers", params)
	if err != nil {
		return nil, errors.Wrap(err, "FindCustomerByEmail: stripe request failed")
	}

	var result list[Customer]
	if err := c.decode(resp, "FindCustomerByEmail", &result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

// CreateCustomer creates a customer keyed to the application user via
// metadata so the mapping survives on the provider side.
func (c *Client) CreateCustomer(ctx context.Context, email, userID string) (*Customer, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("metadata[user_id]", userID)

	resp, err := c.doPost(ctx, "/v1/customers", params)
	if err != nil {
		return nil, errors.Wrap(err, "CreateCustomer: stripe request failed")
	}

	var customer Customer
	if err := c.decode(resp, "CreateCustomer", &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomer retrieves a customer by id, including its configured
// default payment method reference.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	resp, err := c.doGet(ctx, "/v1/customers/"+url.PathEscape(customerID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "GetCustomer: stripe request failed")
	}

	var customer Customer
	if err := c.decode(resp, "GetCustomer", &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateSetupIntent creates a setup intent for the customer so the
// browser can collect and attach a card.
func (c *Client) CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error) {
	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("payment_method_types[]", "card")
	params.Set("usage", "off_session")

	resp, err := c.doPost(ctx, "/v1/setup_intents", params)
	if err != nil {
		return nil, errors.Wrap(err, "CreateSetupIntent: stripe request failed")
	}

	var intent SetupIntent
	if err := c.decode(resp, "CreateSetupIntent", &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ListPaymentMethods lists a customer's stored payment methods of the
// given type ("card" for every current caller).
func (c *Client) ListPaymentMethods(ctx context.Context, customerID, methodType string) ([]PaymentMethod, error) {
	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("type", methodType)

	resp, err := c.doGet(ctx, "/v1/payment_methods", params)
	if err != nil {
		return nil, errors.Wrap(err, "ListPaymentMethods: stripe request failed")
	}

	var result list[PaymentMethod]
	if err := c.decode(resp, "ListPaymentMethods", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateSubscription subscribes the customer to the given price,
// charging the supplied payment method.
func (c *Client) CreateSubscription(ctx context.Context, customerID, priceID, paymentMethodID string) (*Subscription, error) {
	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("items[0][price]", priceID)
	params.Set("default_payment_method", paymentMethodID)

	resp, err := c.doPost(ctx, "/v1/subscriptions", params)
	if err != nil {
		return nil, errors.Wrap(err, "CreateSubscription: stripe request failed")
	}

	var sub Subscription
	if err := c.decode(resp, "CreateSubscription", &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreatePortalSession creates a billing-portal session that sends the
// customer to the provider-hosted subscription management page.
func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error) {
	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("return_url", returnURL)

	resp, err := c.doPost(ctx, "/v1/billing_portal/sessions", params)
	if err != nil {
		return nil, errors.Wrap(err, "CreatePortalSession: stripe request failed")
	}

	var session PortalSession
	if err := c.decode(resp, "CreatePortalSession", &session); err != nil {
		return nil, err
	}
	return &session, nil
}
