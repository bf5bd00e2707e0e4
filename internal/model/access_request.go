package model

import "time"

// AccessRequest represents a buyer's request to download the gated
// source-code asset of a seller's product
type AccessRequest struct {
	ID        int64     `json:"id"`
	BuyerID   int64     `json:"buyer_id"`
	SellerID  int64     `json:"seller_id"`
	ProductID int64     `json:"product_id"`
	Status    string    `json:"status"` // 'pending', 'approved', 'rejected'
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ValidStatus checks that s is one of the three known statuses
func ValidStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsPending checks if request is pending
func (r *AccessRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsApproved checks if request is approved
func (r *AccessRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}

// IsRejected checks if request is rejected
func (r *AccessRequest) IsRejected() bool {
	return r.Status == RequestStatusRejected
}

// AccessRequestView is the read-model for the seller-facing request lists:
// the request joined with product and buyer display data
type AccessRequestView struct {
	Request      AccessRequest `json:"request"`
	ProductName  string        `json:"product_name"`
	ProductImage string        `json:"product_image"`
	BuyerName    string        `json:"buyer_name"`
	BuyerEmail   string        `json:"buyer_email"`
}

// StatusCounts holds per-status request counts for one seller
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
