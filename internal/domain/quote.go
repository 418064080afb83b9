package domain

import (
	"context"
	"errors"
)

// Top-level Realtime Database collections.
const (
	CollectionQuotes    = "quotes"
	CollectionAMCQuotes = "amc-quotes"
)

// ErrMissingFields marks a quote submission without all required fields.
var ErrMissingFields = errors.New("missing required fields")

// QuoteRequest represents a service quote submission. Timestamp is stamped
// server-side at write time; the record is immutable afterwards.
type QuoteRequest struct {
	Name      string   `json:"name" binding:"required" validate:"required"`
	Email     string   `json:"email" binding:"required" validate:"required"`
	Phone     string   `json:"phone" binding:"required" validate:"required"`
	Services  []string `json:"services" binding:"required,min=1" validate:"required,min=1"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// QuoteRepository defines the interface for quote persistence. Keys are
// generated by the store, never by the caller.
type QuoteRepository interface {
	// Save writes the quote under a store-generated key and returns that key
	Save(ctx context.Context, collection string, quote *QuoteRequest) (string, error)
	// ListByTimestamp returns all quotes in the collection, queried in
	// ascending timestamp order. An empty collection yields an empty map.
	ListByTimestamp(ctx context.Context, collection string) (map[string]QuoteRequest, error)
}

// QuoteUsecase defines the interface for quote intake operations
type QuoteUsecase interface {
	SubmitQuote(ctx context.Context, req *QuoteRequest) error
	SubmitAMCQuote(ctx context.Context, req *QuoteRequest) error
	ListQuotes(ctx context.Context) (map[string]QuoteRequest, error)
}
