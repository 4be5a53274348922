package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by delegating to the query handlers of the application layer.
type Server struct {
	getFreightQuoteHandler  queries.GetFreightQuoteQueryHandler
	getShippingLabelHandler queries.GetShippingLabelQueryHandler
	getOrderSummaryHandler  queries.GetOrderSummaryQueryHandler
	getFreightTypesHandler  queries.GetFreightTypesQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getFreightQuoteHandler queries.GetFreightQuoteQueryHandler,
	getShippingLabelHandler queries.GetShippingLabelQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getFreightTypesHandler queries.GetFreightTypesQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		getFreightQuoteHandler:  getFreightQuoteHandler,
		getShippingLabelHandler: getShippingLabelHandler,
		getOrderSummaryHandler:  getOrderSummaryHandler,
		getFreightTypesHandler:  getFreightTypesHandler,
		logger:                  logger.With("component", "http-server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOpenAPI handles GET /api/openapi.yaml - serves the API contract.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", OpenAPISpec())
}

// GetFreightTypes handles GET /api/v1/freight-types - lists the registered freight codes.
func (s *Server) GetFreightTypes(ctx echo.Context) error {
	codes, err := s.getFreightTypesHandler.Handle(ctx.Request().Context(), queries.NewGetFreightTypesQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve freight types")
	}

	return ctx.JSON(http.StatusOK, codes)
}

// CreateQuote handles POST /api/v1/quotes - prices a delivery.
func (s *Server) CreateQuote(ctx echo.Context) error {
	d, err := s.bindDelivery(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute freight quote")
	}

	query, err := queries.NewGetFreightQuoteQuery(d)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute freight quote")
	}

	quote, err := s.getFreightQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute freight quote")
	}

	return ctx.JSON(http.StatusOK, Quote{
		FreightCode:  quote.FreightCode,
		Fee:          quote.Fee,
		FreeShipping: quote.FreeShipping,
	})
}

// CreateLabel handles POST /api/v1/labels - renders a shipping label.
func (s *Server) CreateLabel(ctx echo.Context) error {
	d, err := s.bindDelivery(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate label")
	}

	query, err := queries.NewGetShippingLabelQuery(d)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate label")
	}

	label, err := s.getShippingLabelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate label")
	}

	return ctx.JSON(http.StatusOK, Label{Label: label})
}

// CreateSummary handles POST /api/v1/summaries - renders an order summary.
func (s *Server) CreateSummary(ctx echo.Context) error {
	d, err := s.bindDelivery(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate summary")
	}

	query, err := queries.NewGetOrderSummaryQuery(d)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate summary")
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to generate summary")
	}

	return ctx.JSON(http.StatusOK, Summary{Summary: summary})
}

var errInvalidRequestBody = errors.New("invalid request body")

func (s *Server) bindDelivery(ctx echo.Context) (delivery.Delivery, error) {
	var req DeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return delivery.Delivery{}, errInvalidRequestBody
	}

	return delivery.NewDelivery(req.Recipient, req.Address, req.WeightKg, req.FreightCode)
}

// respondError maps domain errors to status codes. Anything unexpected is logged and hidden behind fallback.
func (s *Server) respondError(ctx echo.Context, err error, fallback string) error {
	var (
		validationErr  *delivery.ValidationError
		unsupportedErr *services.UnsupportedFreightTypeError
	)

	switch {
	case errors.Is(err, errInvalidRequestBody):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery: " + err.Error(),
		})
	case errors.As(err, &unsupportedErr):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: unsupportedErr.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), fallback,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
