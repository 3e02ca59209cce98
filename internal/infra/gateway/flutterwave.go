// Package gateway talks to the hosted-checkout payment provider (Flutterwave v3).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL        = "https://api.flutterwave.com/v3"
	defaultTimeout        = 20 * time.Second
	defaultPaymentOptions = "card, ussd, mobilemoneyghana"

	apiStatusSuccess     = "success"
	chargeStatusSettled  = "successful"
	expiredLinkMessage   = "Expired link"
	maxErrorBodyReadSize = 64 << 10
)

// Flutterwave implements service.PaymentGateway against the Flutterwave v3 REST API.
type Flutterwave struct {
	baseURL        string
	secretKey      string
	paymentOptions string
	client         *http.Client
}

// NewFlutterwave builds the gateway client from payment configuration.
func NewFlutterwave(cfg *config.Config) service.PaymentGateway {
	return newFlutterwave(cfg, nil)
}

func newFlutterwave(cfg *config.Config, client *http.Client) *Flutterwave {
	gw := &Flutterwave{
		baseURL:        defaultBaseURL,
		paymentOptions: defaultPaymentOptions,
	}

	timeout := defaultTimeout
	if p := cfg.Payment; p != nil {
		if p.BaseURL != "" {
			gw.baseURL = strings.TrimRight(p.BaseURL, "/")
		}
		if p.PaymentOptions != "" {
			gw.paymentOptions = p.PaymentOptions
		}
		if p.Timeout > 0 {
			timeout = p.Timeout
		}
		gw.secretKey = p.SecretKey
	}

	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	gw.client = client

	return gw
}

type paymentPayload struct {
	TxRef          string         `json:"tx_ref"`
	Amount         json.Number    `json:"amount"`
	Currency       string         `json:"currency"`
	RedirectURL    string         `json:"redirect_url"`
	Customer       customer       `json:"customer"`
	Customizations customizations `json:"customizations"`
	PaymentOptions string         `json:"payment_options"`
	Meta           map[string]any `json:"meta,omitempty"`
}

type customer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber,omitempty"`
	Name        string `json:"name"`
}

type customizations struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// envelope is the common response shape: {status, message, data}.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CreatePaymentLink requests a hosted payment page for req.
func (f *Flutterwave) CreatePaymentLink(ctx context.Context, req *service.PaymentRequest) (*service.PaymentLink, error) {
	payload := paymentPayload{
		TxRef:       req.Reference,
		Amount:      json.Number(req.Amount.StringFixed(2)),
		Currency:    req.Currency,
		RedirectURL: req.RedirectURL,
		Customer: customer{
			Email:       req.Customer.Email,
			PhoneNumber: req.Customer.Phone,
			Name:        req.Customer.Name,
		},
		Customizations: buildCustomizations(req.Items),
		PaymentOptions: f.paymentOptions,
	}
	if len(req.Items) > 0 {
		ids := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			ids = append(ids, item.ProductID)
		}
		payload.Meta = map[string]any{"products": strings.Join(ids, ",")}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment request")
	}

	raw, env, err := f.do(ctx, http.MethodPost, "/payments", body)
	if err != nil {
		return nil, err
	}

	var data struct {
		Link string `json:"link"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Link == "" {
		return nil, errors.New("gateway returned no payment link")
	}

	return &service.PaymentLink{Link: data.Link, Raw: raw}, nil
}

// VerifyTransaction fetches the gateway's view of a charge. A settled charge is
// one where both the API call and the charge report success.
func (f *Flutterwave) VerifyTransaction(ctx context.Context, transactionID string) (*service.PaymentVerification, error) {
	if transactionID == "" {
		return nil, errors.New("transaction id is required")
	}

	_, env, err := f.do(ctx, http.MethodGet, "/transactions/"+transactionID+"/verify", nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		ID       json.Number     `json:"id"`
		TxRef    string          `json:"tx_ref"`
		Status   string          `json:"status"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, errors.Wrap(err, "failed to decode verification data")
		}
	}

	return &service.PaymentVerification{
		Successful:    env.Status == apiStatusSuccess && data.Status == chargeStatusSettled,
		Status:        data.Status,
		Reference:     data.TxRef,
		TransactionID: data.ID.String(),
		Amount:        data.Amount,
		Currency:      data.Currency,
		Data:          env.Data,
	}, nil
}

// do sends the request and decodes the envelope. Non-2xx answers become errors,
// except that a non-success verification body is returned to the caller as is.
func (f *Flutterwave) do(ctx context.Context, method, path string, body []byte) ([]byte, *envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+f.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyReadSize))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read gateway response")
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode == http.StatusBadRequest && env.Message == expiredLinkMessage {
			return nil, nil, service.ErrPaymentLinkExpired
		}

		return nil, nil, errors.Errorf("gateway responded %d: %s", resp.StatusCode, env.Message)
	}

	if decodeErr != nil {
		return nil, nil, errors.Wrap(decodeErr, "failed to decode gateway response")
	}

	return raw, &env, nil
}

func buildCustomizations(items []service.PaymentItem) customizations {
	if len(items) == 0 {
		return customizations{Title: "Order payment"}
	}

	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}

	return customizations{
		Title:       strings.Join(titles, ", "),
		Description: items[0].Description,
		Logo:        items[0].Logo,
	}
}
