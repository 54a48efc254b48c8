package braintree

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dloman/sbhx-store/internal/payment"
	"github.com/go-resty/resty/v2"
)

const (
	sandboxBaseURL    = "https://api.sandbox.braintreegateway.com"
	productionBaseURL = "https://api.braintreegateway.com"

	defaultTimeout = 30 * time.Second

	descriptorName  = "sbhx   *   product"
	descriptorPhone = "8052422533"
)

// Config holds the gateway credentials. Environment selects the API host;
// BaseURL overrides it when set (tests point it at a local server).
type Config struct {
	Environment string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	BaseURL     string
	Timeout     time.Duration
}

// Client talks to the Braintree gateway. It implements payment.Gateway.
// No retries: a failed charge is terminal for the request.
type Client struct {
	http       *resty.Client
	merchantID string
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		if cfg.Environment == "production" {
			base = productionBaseURL
		} else {
			base = sandboxBaseURL
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(base).
		SetBasicAuth(cfg.PublicKey, cfg.PrivateKey).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{http: httpClient, merchantID: cfg.MerchantID}
}

type customerRequest struct {
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Email              string          `json:"email"`
	Company            string          `json:"company,omitempty"`
	PaymentMethodNonce string          `json:"payment_method_nonce"`
	BillingAddress     *billingAddress `json:"billing_address,omitempty"`
}

type billingAddress struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	StreetAddress string `json:"street_address"`
	ExtendedAddr  string `json:"extended_address,omitempty"`
	Locality      string `json:"locality"`
	Region        string `json:"region"`
}

type customerResponse struct {
	ID                 string `json:"id"`
	PaymentMethodToken string `json:"payment_method_token"`
}

type transactionRequest struct {
	Amount              string                `json:"amount"`
	PaymentMethodToken  string                `json:"payment_method_token"`
	SubmitForSettlement bool                  `json:"submit_for_settlement"`
	Descriptor          transactionDescriptor `json:"descriptor"`
	CustomFields        map[string]string     `json:"custom_fields"`
}

type transactionDescriptor struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Phone string `json:"phone"`
}

type transactionResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type apiError struct {
	Message string `json:"message"`
}

// Charge creates a gateway customer from the submitted billing detail, then
// submits a transaction for settlement against its payment method token.
func (c *Client) Charge(ctx context.Context, req payment.ChargeRequest) (payment.Transaction, error) {
	customer, err := c.createCustomer(ctx, req)
	if err != nil {
		return payment.Transaction{}, err
	}
	return c.createTransaction(ctx, customer.PaymentMethodToken, req)
}

func (c *Client) createCustomer(ctx context.Context, req payment.ChargeRequest) (customerResponse, error) {
	var (
		out    customerResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(customerRequest{
			FirstName:          req.Customer.FirstName,
			LastName:           req.Customer.LastName,
			Email:              req.Customer.Email,
			Company:            req.Customer.CompanyName,
			PaymentMethodNonce: req.Customer.PaymentMethodNonce,
			BillingAddress: &billingAddress{
				FirstName:     req.Customer.FirstName,
				LastName:      req.Customer.LastName,
				StreetAddress: req.Customer.Address,
				ExtendedAddr:  req.Customer.Address2,
				Locality:      req.Customer.City,
				Region:        req.Customer.State,
			},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/merchants/%s/customers", c.merchantID))
	if err != nil {
		return customerResponse{}, &payment.Error{Kind: payment.ErrNetwork, Message: err.Error()}
	}
	if resp.IsError() {
		return customerResponse{}, classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	if out.PaymentMethodToken == "" {
		return customerResponse{}, &payment.Error{Kind: payment.ErrValidation, Message: "customer created without payment method token"}
	}
	return out, nil
}

func (c *Client) createTransaction(ctx context.Context, token string, req payment.ChargeRequest) (payment.Transaction, error) {
	var (
		out    transactionResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(transactionRequest{
			Amount:              req.Amount,
			PaymentMethodToken:  token,
			SubmitForSettlement: true,
			Descriptor: transactionDescriptor{
				Name:  descriptorName,
				Phone: descriptorPhone,
			},
			CustomFields: map[string]string{
				"payment_type": req.PaymentType.DisplayName(),
				"description":  req.Description,
			},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/merchants/%s/transactions", c.merchantID))
	if err != nil {
		return payment.Transaction{}, &payment.Error{Kind: payment.ErrNetwork, Message: err.Error()}
	}
	if resp.IsError() {
		return payment.Transaction{}, classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	if out.ID == "" {
		return payment.Transaction{}, &payment.Error{Kind: payment.ErrNetwork, Message: "transaction response missing id"}
	}
	return payment.Transaction{ID: out.ID, Amount: out.Amount, CreatedAt: out.CreatedAt}, nil
}

type clientTokenResponse struct {
	Value string `json:"value"`
}

// ClientToken fetches a browser-side token for the hosted payment fields on
// the form pages.
func (c *Client) ClientToken(ctx context.Context) (string, error) {
	var (
		out    clientTokenResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/merchants/%s/client_token", c.merchantID))
	if err != nil {
		return "", &payment.Error{Kind: payment.ErrNetwork, Message: err.Error()}
	}
	if resp.IsError() {
		return "", classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	return out.Value, nil
}

func classifyStatus(status int, message string) *payment.Error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusPaymentRequired:
		return &payment.Error{Kind: payment.ErrDeclined, Message: message}
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		return &payment.Error{Kind: payment.ErrValidation, Message: message}
	default:
		return &payment.Error{Kind: payment.ErrNetwork, Message: message}
	}
}
