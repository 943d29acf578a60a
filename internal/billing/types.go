package billing

// Customer is the subset of the Stripe customer object this
// application reads. DefaultPaymentMethod is the unexpanded payment
// method identifier, empty when the customer has none configured.
type Customer struct {
	ID              string            `json:"id"`
	Email           string            `json:"email"`
	Metadata        map[string]string `json:"metadata"`
	InvoiceSettings InvoiceSettings   `json:"invoice_settings"`
}

// InvoiceSettings carries the customer's default payment method id.
type InvoiceSettings struct {
	DefaultPaymentMethod string `json:"default_payment_method"`
}

// SetupIntent is the subset of the setup intent object returned to the
// browser so Stripe.js can collect a payment method.
type SetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// PaymentMethod identifies one of a customer's stored payment methods.
type PaymentMethod struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Subscription is the subset of the subscription object reported back
// to the caller after creation.
type Subscription struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PortalSession is a billing-portal session created for self-serve
// subscription management.
type PortalSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// list is the generic Stripe list envelope.
type list[T any] struct {
	Data    []T  `json:"data"`
	HasMore bool `json:"has_more"`
}
