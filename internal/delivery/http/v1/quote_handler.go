package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sparkshield-backend/internal/delivery/http/response"
	"go-sparkshield-backend/internal/domain"
	"go-sparkshield-backend/pkg/apperror"
)

type QuoteHandler struct {
	quoteUC domain.QuoteUsecase
}

// NewQuoteHandler registers the quote intake routes (public, no auth)
func NewQuoteHandler(r gin.IRoutes, quoteUC domain.QuoteUsecase) {
	handler := &QuoteHandler{
		quoteUC: quoteUC,
	}

	r.POST("/submit-quote", handler.SubmitQuote)
	r.POST("/amc-quote", handler.SubmitAMCQuote)
	r.GET("/get-quotes", handler.ListQuotes)
}

// SubmitQuote godoc
// @Summary      Submit Quote Request
// @Description  Store a service quote request and notify the operator by email.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Request Data"
// @Success      200    {object}  response.MessageBody
// @Failure      400    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /submit-quote [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Missing required fields"))
		return
	}

	if err := h.quoteUC.SubmitQuote(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.Validation("Missing required fields"))
			return
		}
		c.Error(apperror.Persistence("Error processing quote request", err))
		return
	}

	response.Message(c, "Quote request submitted successfully!")
}

// SubmitAMCQuote godoc
// @Summary      Submit AMC Quote Request
// @Description  Store an Annual Maintenance Contract quote request and notify the operator by email.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "AMC Quote Request Data"
// @Success      200    {object}  response.MessageBody
// @Failure      400    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /amc-quote [post]
func (h *QuoteHandler) SubmitAMCQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Missing required fields"))
		return
	}

	if err := h.quoteUC.SubmitAMCQuote(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.Validation("Missing required fields"))
			return
		}
		c.Error(apperror.Persistence("Error processing AMC quote request", err))
		return
	}

	response.Message(c, "AMC quote request submitted successfully!")
}

// ListQuotes godoc
// @Summary      List Stored Quotes
// @Description  Return all stored quote requests keyed by their generated IDs, queried in ascending timestamp order.
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  map[string]domain.QuoteRequest
// @Failure      500  {object}  response.ErrorBody
// @Router       /get-quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteUC.ListQuotes(c.Request.Context())
	if err != nil {
		c.Error(apperror.Persistence("Error fetching quotes", err))
		return
	}

	c.JSON(http.StatusOK, quotes)
}
