// Package apiclient is a typed client for the inventory API. The backend has
// been observed to answer with either a bare body or a {data: ...} envelope
// depending on the endpoint and version; this package is the single place
// that difference is normalized away.
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/scan"
	"github.com/NasmeenI/Inventory-pro/internal/service"
)

var ErrUnexpectedStatus = errors.New("apiclient: unexpected response status")

type Client struct {
	http *resty.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:3000/api/v1".
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &Client{http: c}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// unwrap decodes body into out, accepting both the enveloped and the bare
// shape. A body whose top level is an object with a "data" key is treated as
// an envelope; anything else is decoded directly.
func unwrap(body []byte, out interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return json.Unmarshal(body, out)
}

func apiError(resp *resty.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedStatus, msg)
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.R().Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return unwrap(resp.Body(), out)
}

func (c *Client) post(path string, in, out interface{}) error {
	resp, err := c.http.R().SetBody(in).Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return unwrap(resp.Body(), out)
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(email, password string) (*service.LoginResponse, error) {
	var resp service.LoginResponse
	err := c.post("/auth/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Products fetches the catalog.
func (c *Client) Products() ([]model.Product, error) {
	var products []model.Product
	if err := c.get("/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by ID.
func (c *Client) Product(id string) (*model.Product, error) {
	var product model.Product
	if err := c.get("/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateRequest files a stock transaction request.
func (c *Client) CreateRequest(req *model.TransactionRequest) (*model.TransactionRequest, error) {
	var created model.TransactionRequest
	if err := c.post("/requests", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SubmitScan sends a raw scanned payload for reconciliation.
func (c *Client) SubmitScan(payload string) (*service.ScanResult, error) {
	var result service.ScanResult
	if err := c.post("/scans", map[string]string{"payload": payload}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RecentScans lists the server-side scan history, newest first.
func (c *Client) RecentScans() ([]scan.ScannedProduct, error) {
	var scans []scan.ScannedProduct
	if err := c.get("/scans/recent", &scans); err != nil {
		return nil, err
	}
	return scans, nil
}
