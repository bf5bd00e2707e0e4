package model

import "time"

type Product struct {
	ID        int64     `json:"id"`
	SellerID  int64     `json:"seller_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDisplayInfo is the slice of a product record the request lists need
type ProductDisplayInfo struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}
