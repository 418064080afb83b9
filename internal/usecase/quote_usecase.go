package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"go-sparkshield-backend/internal/domain"
	"go-sparkshield-backend/pkg/email"
	"go-sparkshield-backend/pkg/logger"
)

// Mailer sends quote notifications to the operator mailbox.
type Mailer interface {
	SendQuoteNotification(data email.QuoteEmailData) error
	SendAMCQuoteNotification(data email.QuoteEmailData) error
}

type quoteUsecase struct {
	repo     domain.QuoteRepository
	mailer   Mailer
	validate *validator.Validate
}

var nowFunc = time.Now

// NewQuoteUsecase creates a new quote usecase
func NewQuoteUsecase(repo domain.QuoteRepository, mailer Mailer, validate *validator.Validate) domain.QuoteUsecase {
	return &quoteUsecase{
		repo:     repo,
		mailer:   mailer,
		validate: validate,
	}
}

func (uc *quoteUsecase) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) error {
	return uc.submit(ctx, req, domain.CollectionQuotes, false)
}

func (uc *quoteUsecase) SubmitAMCQuote(ctx context.Context, req *domain.QuoteRequest) error {
	return uc.submit(ctx, req, domain.CollectionAMCQuotes, true)
}

// submit runs the intake pipeline shared by both quote variants: validate,
// stamp, persist, notify. The store write always happens before the mail
// dispatch; a store failure means mail is never attempted.
func (uc *quoteUsecase) submit(ctx context.Context, req *domain.QuoteRequest, collection string, amc bool) error {
	if err := uc.validate.Struct(req); err != nil {
		return domain.ErrMissingFields
	}

	req.Timestamp = nowFunc().UTC().Format(time.RFC3339)

	key, err := uc.repo.Save(ctx, collection, req)
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}

	data := email.QuoteEmailData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Services:    req.Services,
		Message:     req.Message,
		SubmittedAt: req.Timestamp,
	}
	if amc {
		err = uc.mailer.SendAMCQuoteNotification(data)
	} else {
		err = uc.mailer.SendQuoteNotification(data)
	}
	if err != nil {
		// The record is already persisted at this point and is not rolled
		// back; the request still reports total failure to the caller.
		return fmt.Errorf("send quote notification: %w", err)
	}

	logger.Log.Info("quote request stored", "collection", collection, "key", key)
	return nil
}

func (uc *quoteUsecase) ListQuotes(ctx context.Context) (map[string]domain.QuoteRequest, error) {
	quotes, err := uc.repo.ListByTimestamp(ctx, domain.CollectionQuotes)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	if quotes == nil {
		quotes = map[string]domain.QuoteRequest{}
	}
	return quotes, nil
}
