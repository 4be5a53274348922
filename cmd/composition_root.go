package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/labeltext"
	"logistics/internal/core/application/labeling"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	logger *slog.Logger

	getFreightQuoteHandler  queries.GetFreightQuoteQueryHandler
	getShippingLabelHandler queries.GetShippingLabelQueryHandler
	getOrderSummaryHandler  queries.GetOrderSummaryQueryHandler
	getFreightTypesHandler  queries.GetFreightTypesQueryHandler
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (CompositionRoot, error) {
	registry := services.NewDefaultFreightRegistry()

	formatter, err := labeltext.NewFormatterForLocale(cfg.LabelLocale, cfg.CurrencySymbol)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create label formatter: %w", err)
	}

	labels, err := labeling.NewService(registry, formatter)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create label service: %w", err)
	}

	c := CompositionRoot{logger: logger}

	if c.getFreightQuoteHandler, err = queries.NewGetFreightQuoteQueryHandler(registry); err != nil {
		return CompositionRoot{}, fmt.Errorf("create freight quote handler: %w", err)
	}
	if c.getShippingLabelHandler, err = queries.NewGetShippingLabelQueryHandler(labels); err != nil {
		return CompositionRoot{}, fmt.Errorf("create shipping label handler: %w", err)
	}
	if c.getOrderSummaryHandler, err = queries.NewGetOrderSummaryQueryHandler(labels); err != nil {
		return CompositionRoot{}, fmt.Errorf("create order summary handler: %w", err)
	}
	if c.getFreightTypesHandler, err = queries.NewGetFreightTypesQueryHandler(registry); err != nil {
		return CompositionRoot{}, fmt.Errorf("create freight types handler: %w", err)
	}

	return c, nil
}

func (c *CompositionRoot) CreateGetFreightQuoteQueryHandler() queries.GetFreightQuoteQueryHandler {
	return c.getFreightQuoteHandler
}

func (c *CompositionRoot) CreateGetShippingLabelQueryHandler() queries.GetShippingLabelQueryHandler {
	return c.getShippingLabelHandler
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return c.getOrderSummaryHandler
}

func (c *CompositionRoot) CreateGetFreightTypesQueryHandler() queries.GetFreightTypesQueryHandler {
	return c.getFreightTypesHandler
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGetFreightQuoteQueryHandler(),
		c.CreateGetShippingLabelQueryHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetFreightTypesQueryHandler(),
		c.logger,
	)
}

// CreateRouter returns the echo instance with every route and middleware registered.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return httpin.NewRouter(ctx, c.CreateHTTPServer(), c.logger)
}
