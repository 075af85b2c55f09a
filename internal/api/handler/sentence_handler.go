package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartences/cartences-api/internal/api/metrics"
	"github.com/cartences/cartences-api/internal/core/ports"
)

// SentenceHandler handles HTTP requests for quotations.
type SentenceHandler struct {
	service ports.SentenceService
}

func NewSentenceHandler(service ports.SentenceService) *SentenceHandler {
	return &SentenceHandler{service: service}
}

type createSentenceRequest struct {
	Content    string  `json:"content" validate:"required,min=1"`
	Category   *string `json:"category"`
	FromSource *string `json:"from_source"`
	FromAuthor *string `json:"from_author"`
}

type createSentenceResponse struct {
	Status string `json:"status"`
	UUID   string `json:"uuid"`
}

// Random handles GET /cartences.
//
// @Summary      Get one random sentence
// @Tags         sentences
// @Produce      json
// @Success      200  {object}  domain.Sentence
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /cartences [get]
func (h *SentenceHandler) Random(c echo.Context) error {
	sentence, err := h.service.Random(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.SentencesServedTotal.Inc()
	return c.JSON(http.StatusOK, sentence)
}

// Create handles POST /cartences. The route is gated on the manager role by
// the RequireRole middleware; claims presence here only confirms it ran.
//
// @Summary      Create a sentence
// @Tags         sentences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSentenceRequest  true  "Sentence content"
// @Success      201   {object}  createSentenceResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cartences [post]
func (h *SentenceHandler) Create(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	var req createSentenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sentence, err := h.service.Create(c.Request().Context(), ports.CreateSentenceInput{
		Content:    req.Content,
		Category:   req.Category,
		FromSource: req.FromSource,
		FromAuthor: req.FromAuthor,
	})
	if err != nil {
		return err
	}

	metrics.SentencesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createSentenceResponse{Status: "success", UUID: sentence.UUID})
}
