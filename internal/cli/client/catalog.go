package client

import (
	"fmt"
	"net/url"
)

// Product represents a liqueur in the catalog
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// ListProducts returns the public product catalog, optionally filtered by
// category.
func (c *Client) ListProducts(category string) ([]Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var products []Product
	if err := c.do("GET", path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(id string) (*Product, error) {
	var product Product
	if err := c.do("GET", "/products/"+url.PathEscape(id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// LowStockProducts returns products whose stock is at or below the given
// threshold. Admin only.
func (c *Client) LowStockProducts(token string, threshold int) ([]Product, error) {
	path := fmt.Sprintf("/products/low-stock?threshold=%d", threshold)

	var products []Product
	if err := c.do("GET", path, token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Promotion represents an active discount campaign
type Promotion struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
}

// ListPromotions returns the currently published promotions.
func (c *Client) ListPromotions() ([]Promotion, error) {
	var promos []Promotion
	if err := c.do("GET", "/promotions", "", nil, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// LegalDocument represents a published legal text (terms, privacy, notices)
type LegalDocument struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}

// FetchLegalDocument fetches a legal document by its slug.
func (c *Client) FetchLegalDocument(slug string) (*LegalDocument, error) {
	var doc LegalDocument
	if err := c.do("GET", "/legal/"+url.PathEscape(slug), "", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
