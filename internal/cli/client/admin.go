package client

import (
	"fmt"
	"net/url"
)

// ListUsers returns all registered users. Admin only.
func (c *Client) ListUsers(token string) ([]User, error) {
	var users []User
	if err := c.do("GET", "/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ContactRequest represents a message sent through the contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendContactMessage submits a contact-form message.
func (c *Client) SendContactMessage(req ContactRequest) error {
	return c.do("POST", "/contact", "", req, nil)
}

// ContactMessage represents a received contact-form message
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ListMessages returns received contact messages. Admin only.
func (c *Client) ListMessages(token string) ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := c.do("GET", "/admin/messages", token, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SalesBucket represents aggregated sales for one date bucket
type SalesBucket struct {
	Bucket string  `json:"bucket"`
	Orders int     `json:"orders"`
	Total  float64 `json:"total"`
}

// SalesSummary returns sales totals aggregated per bucket ("day", "week" or
// "month") over the given inclusive date range. Admin only.
func (c *Client) SalesSummary(token, from, to, bucket string) ([]SalesBucket, error) {
	path := fmt.Sprintf("/admin/sales?from=%s&to=%s&bucket=%s",
		url.QueryEscape(from), url.QueryEscape(to), url.QueryEscape(bucket))

	var buckets []SalesBucket
	if err := c.do("GET", path, token, nil, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
