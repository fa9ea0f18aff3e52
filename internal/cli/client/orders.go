package client

import "net/url"

// OrderItem represents one line of an order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// Order represents a placed order and its tracking state
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt string      `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// ListOrders returns the authenticated user's orders, newest first.
func (c *Client) ListOrders(token string) ([]Order, error) {
	var orders []Order
	if err := c.do("GET", "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one of the authenticated user's orders by ID.
func (c *Client) GetOrder(token, id string) (*Order, error) {
	var order Order
	if err := c.do("GET", "/orders/"+url.PathEscape(id), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrderRequest represents the checkout request body. Payment capture
// runs server-side against the gateway; the client only names what to buy
// and where to ship it.
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
}

// CreateOrder places an order from the given items and returns the created
// order with its initial tracking status.
func (c *Client) CreateOrder(token string, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := c.do("POST", "/orders", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
