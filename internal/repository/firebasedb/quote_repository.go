package firebasedb

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"go-sparkshield-backend/internal/domain"
)

type quoteRepository struct {
	client *db.Client
}

// NewQuoteRepository creates a quote repository backed by the Realtime Database
func NewQuoteRepository(client *db.Client) domain.QuoteRepository {
	return &quoteRepository{client: client}
}

// Save pushes a new child ref (the store generates the key) and writes the
// quote under it.
func (r *quoteRepository) Save(ctx context.Context, collection string, quote *domain.QuoteRequest) (string, error) {
	ref, err := r.client.NewRef(collection).Push(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("allocate key in %s: %w", collection, err)
	}
	if err := ref.Set(ctx, quote); err != nil {
		return "", fmt.Errorf("write quote %s/%s: %w", collection, ref.Key, err)
	}
	return ref.Key, nil
}

func (r *quoteRepository) ListByTimestamp(ctx context.Context, collection string) (map[string]domain.QuoteRequest, error) {
	nodes, err := r.client.NewRef(collection).OrderByChild("timestamp").GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	quotes := make(map[string]domain.QuoteRequest, len(nodes))
	for _, node := range nodes {
		var q domain.QuoteRequest
		if err := node.Unmarshal(&q); err != nil {
			return nil, fmt.Errorf("decode quote %s/%s: %w", collection, node.Key(), err)
		}
		quotes[node.Key()] = q
	}
	return quotes, nil
}
