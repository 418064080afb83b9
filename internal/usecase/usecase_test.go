package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-sparkshield-backend/internal/domain"
	"go-sparkshield-backend/internal/usecase"
	"go-sparkshield-backend/pkg/email"
	"go-sparkshield-backend/pkg/gemini"
)

// Mock collaborators

type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Save(ctx context.Context, collection string, quote *domain.QuoteRequest) (string, error) {
	args := m.Called(ctx, collection, quote)
	return args.String(0), args.Error(1)
}

func (m *MockQuoteRepo) ListByTimestamp(ctx context.Context, collection string) (map[string]domain.QuoteRequest, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.QuoteRequest), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendQuoteNotification(data email.QuoteEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockMailer) SendAMCQuoteNotification(data email.QuoteEmailData) error {
	return m.Called(data).Error(0)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockCompletionClient) GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error) {
	args := m.Called(ctx, prompt, cfg)
	return args.String(0), args.Error(1)
}

func validQuote() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		Name:     "A",
		Email:    "a@x.com",
		Phone:    "123",
		Services: []string{"fire_extinguisher"},
	}
}

func TestSubmitQuoteValidation(t *testing.T) {
	cases := []struct {
		name  string
		quote *domain.QuoteRequest
	}{
		{"missing name", &domain.QuoteRequest{Email: "a@x.com", Phone: "123", Services: []string{"s"}}},
		{"missing email", &domain.QuoteRequest{Name: "A", Phone: "123", Services: []string{"s"}}},
		{"missing phone", &domain.QuoteRequest{Name: "A", Email: "a@x.com", Services: []string{"s"}}},
		{"nil services", &domain.QuoteRequest{Name: "A", Email: "a@x.com", Phone: "123"}},
		{"empty services", &domain.QuoteRequest{Name: "A", Email: "a@x.com", Phone: "123", Services: []string{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockQuoteRepo)
			mockMailer := new(MockMailer)
			uc := usecase.NewQuoteUsecase(mockRepo, mockMailer, validator.New())

			err := uc.SubmitQuote(context.Background(), tc.quote)
			assert.ErrorIs(t, err, domain.ErrMissingFields)

			// neither the store nor the mailer may be touched
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
			mockMailer.AssertNotCalled(t, "SendQuoteNotification", mock.Anything)
		})
	}
}

func TestSubmitQuoteHappyPath(t *testing.T) {
	mockRepo := new(MockQuoteRepo)
	mockMailer := new(MockMailer)
	uc := usecase.NewQuoteUsecase(mockRepo, mockMailer, validator.New())

	var saved *domain.QuoteRequest
	mockRepo.On("Save", mock.Anything, domain.CollectionQuotes, mock.AnythingOfType("*domain.QuoteRequest")).
		Return("-Nxyz123", nil).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*domain.QuoteRequest)
		})
	mockMailer.On("SendQuoteNotification", mock.AnythingOfType("email.QuoteEmailData")).Return(nil)

	err := uc.SubmitQuote(context.Background(), validQuote())
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)

	// timestamp is stamped server-side in RFC 3339
	if assert.NotNil(t, saved) {
		_, parseErr := time.Parse(time.RFC3339, saved.Timestamp)
		assert.NoError(t, parseErr)
	}
}

func TestSubmitAMCQuoteUsesAMCCollectionAndMail(t *testing.T) {
	mockRepo := new(MockQuoteRepo)
	mockMailer := new(MockMailer)
	uc := usecase.NewQuoteUsecase(mockRepo, mockMailer, validator.New())

	mockRepo.On("Save", mock.Anything, domain.CollectionAMCQuotes, mock.Anything).Return("-Nabc", nil)
	mockMailer.On("SendAMCQuoteNotification", mock.Anything).Return(nil)

	err := uc.SubmitAMCQuote(context.Background(), validQuote())
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
	mockMailer.AssertNotCalled(t, "SendQuoteNotification", mock.Anything)
}

func TestSubmitQuoteSaveFailureSkipsMail(t *testing.T) {
	mockRepo := new(MockQuoteRepo)
	mockMailer := new(MockMailer)
	uc := usecase.NewQuoteUsecase(mockRepo, mockMailer, validator.New())

	mockRepo.On("Save", mock.Anything, domain.CollectionQuotes, mock.Anything).
		Return("", errors.New("rtdb unavailable"))

	err := uc.SubmitQuote(context.Background(), validQuote())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingFields)

	mockMailer.AssertNotCalled(t, "SendQuoteNotification", mock.Anything)
}

func TestSubmitQuoteMailFailureStillFails(t *testing.T) {
	mockRepo := new(MockQuoteRepo)
	mockMailer := new(MockMailer)
	uc := usecase.NewQuoteUsecase(mockRepo, mockMailer, validator.New())

	mockRepo.On("Save", mock.Anything, domain.CollectionQuotes, mock.Anything).Return("-Nabc", nil)
	mockMailer.On("SendQuoteNotification", mock.Anything).Return(errors.New("smtp down"))

	// record is persisted, mail fails, request still reports failure
	err := uc.SubmitQuote(context.Background(), validQuote())
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListQuotes(t *testing.T) {
	t.Run("returns stored quotes", func(t *testing.T) {
		mockRepo := new(MockQuoteRepo)
		uc := usecase.NewQuoteUsecase(mockRepo, new(MockMailer), validator.New())

		stored := map[string]domain.QuoteRequest{
			"-N1": {Name: "A", Email: "a@x.com", Phone: "1", Services: []string{"s"}, Timestamp: "2026-01-01T00:00:00Z"},
		}
		mockRepo.On("ListByTimestamp", mock.Anything, domain.CollectionQuotes).Return(stored, nil)

		quotes, err := uc.ListQuotes(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stored, quotes)
	})

	t.Run("empty collection yields empty map, not error", func(t *testing.T) {
		mockRepo := new(MockQuoteRepo)
		uc := usecase.NewQuoteUsecase(mockRepo, new(MockMailer), validator.New())

		mockRepo.On("ListByTimestamp", mock.Anything, domain.CollectionQuotes).
			Return(map[string]domain.QuoteRequest{}, nil)

		quotes, err := uc.ListQuotes(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		mockRepo := new(MockQuoteRepo)
		uc := usecase.NewQuoteUsecase(mockRepo, new(MockMailer), validator.New())

		mockRepo.On("ListByTimestamp", mock.Anything, domain.CollectionQuotes).
			Return(nil, errors.New("connectivity"))

		_, err := uc.ListQuotes(context.Background())
		assert.Error(t, err)
	})
}

func TestChatRelayNotConfigured(t *testing.T) {
	mockAI := new(MockCompletionClient)
	mockAI.On("IsConfigured").Return(false)
	uc := usecase.NewChatUsecase(mockAI)

	_, err := uc.Relay(context.Background(), "what extinguisher for electrical fires")
	assert.ErrorIs(t, err, domain.ErrChatNotConfigured)
	mockAI.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatRelaySuccess(t *testing.T) {
	mockAI := new(MockCompletionClient)
	mockAI.On("IsConfigured").Return(true)

	var gotPrompt string
	var gotCfg gemini.GenerationConfig
	mockAI.On("GenerateContent", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("gemini.GenerationConfig")).
		Return("Use a CO2 extinguisher.", nil).
		Run(func(args mock.Arguments) {
			gotPrompt = args.String(1)
			gotCfg = args.Get(2).(gemini.GenerationConfig)
		})

	uc := usecase.NewChatUsecase(mockAI)
	answer, err := uc.Relay(context.Background(), "what extinguisher for electrical fires")
	assert.NoError(t, err)
	assert.Equal(t, "Use a CO2 extinguisher.", answer)

	// fixed preamble prefixes the caller message, bounds stay fixed
	assert.Contains(t, gotPrompt, "You are a fire safety expert")
	assert.Contains(t, gotPrompt, "what extinguisher for electrical fires")
	assert.Equal(t, 100, gotCfg.MaxOutputTokens)
	assert.Equal(t, 0.7, gotCfg.Temperature)
}

func TestChatRelayUpstreamFailure(t *testing.T) {
	mockAI := new(MockCompletionClient)
	mockAI.On("IsConfigured").Return(true)
	mockAI.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("gemini: no candidates in response"))

	uc := usecase.NewChatUsecase(mockAI)
	answer, err := uc.Relay(context.Background(), "hi")
	assert.Error(t, err)
	assert.Empty(t, answer, "no partial answer on upstream failure")
}
