// Package mpesa talks to the Safaricom Daraja API for STK push payments.
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"beautify-api/internal/pkg/clock"
	"beautify-api/internal/pkg/config"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase"
)

const (
	sandboxHost    = "https://sandbox.safaricom.co.ke"
	productionHost = "https://api.safaricom.co.ke"

	oauthPath   = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath = "/mpesa/stkpush/v1/processrequest"

	timestampLayout = "20060102150405"
)

type Client struct {
	cfg        config.MpesaConfig
	host       string
	httpClient *http.Client
	clock      clock.Clock

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.MpesaConfig, clk clock.Clock) *Client {
	host := sandboxHost
	if cfg.Env == "production" {
		host = productionHost
	}
	return &Client{
		cfg:        cfg,
		host:       host,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clock:      clk,
	}
}

var _ usecase.MpesaClient = (*Client)(nil)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

func (c *Client) InitiateSTKPush(ctx context.Context, req usecase.STKPushRequest) (*usecase.STKPushResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.clock.Now().Format(timestampLayout)
	payload := stkPushPayload{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          stkPassword(c.cfg.ShortCode, c.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.AmountKsh,
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode stk push payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build stk push request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "stk push request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read stk push response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("stk push rejected: status %d: %s", resp.StatusCode, respBody))
	}

	var parsed stkPushResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode stk push response")
	}
	if parsed.ResponseCode != "0" {
		return nil, errs.New(fmt.Sprintf("stk push rejected: %s", parsed.ResponseDescription))
	}

	return &usecase.STKPushResult{
		MerchantRequestID: parsed.MerchantRequestID,
		CheckoutRequestID: parsed.CheckoutRequestID,
		ResponseCode:      parsed.ResponseCode,
		CustomerMessage:   parsed.CustomerMessage,
	}, nil
}

// token returns a cached OAuth token, refreshing it when within a minute of
// expiry. Daraja tokens last an hour.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.clock.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+oauthPath, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build oauth request")
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "oauth request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("oauth rejected: status %d", resp.StatusCode))
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode oauth response")
	}
	if parsed.AccessToken == "" {
		return "", errs.New("oauth response missing access token")
	}

	c.accessToken = parsed.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Hour)
	return c.accessToken, nil
}

func stkPassword(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}
