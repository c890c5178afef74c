// Package mailer sends contact-form messages through the EmailJS
// transactional email API. EmailJS is addressed by a service/template/public
// key triple and does the actual delivery; we only forward the form fields.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Message holds the contact-form fields forwarded to the email template.
type Message struct {
	FromName string `json:"from_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// Client is a thin EmailJS API client.
type Client struct {
	ServiceID  string
	TemplateID string
	PublicKey  string

	// Endpoint overrides the EmailJS API URL. Used by tests.
	Endpoint string

	httpClient *http.Client
}

// New creates a Client for the given EmailJS service/template/public-key triple.
func New(serviceID, templateID, publicKey string) *Client {
	return &Client{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		Endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the triple is complete. An unconfigured client
// lets the site run without a working contact form in development.
func (c *Client) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type sendRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Message `json:"template_params"`
}

// Send forwards msg to EmailJS. A non-2xx response is returned as an error;
// the caller surfaces it as a transient notification, without retrying.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.ServiceID,
		TemplateID:     c.TemplateID,
		UserID:         c.PublicKey,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("mailer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailer: emailjs returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
