package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/labeltext"
	"logistics/internal/core/application/labeling"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	return newTestRouterWithFees(t, services.NewDefaultFreightRegistry())
}

func newTestRouterWithFees(t *testing.T, fees queries.FeeCalculator) *echo.Echo {
	t.Helper()

	registry := services.NewDefaultFreightRegistry()
	labels, err := labeling.NewService(registry, labeltext.NewFormatter())
	require.NoError(t, err)

	quoteHandler, err := queries.NewGetFreightQuoteQueryHandler(fees)
	require.NoError(t, err)
	labelHandler, err := queries.NewGetShippingLabelQueryHandler(labels)
	require.NoError(t, err)
	summaryHandler, err := queries.NewGetOrderSummaryQueryHandler(labels)
	require.NoError(t, err)
	typesHandler, err := queries.NewGetFreightTypesQueryHandler(registry)
	require.NoError(t, err)

	server := httpadapter.NewServer(quoteHandler, labelHandler, summaryHandler, typesHandler, discardLogger())

	e, err := httpadapter.NewRouter(context.Background(), server, discardLogger())
	require.NoError(t, err)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var body httpadapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/quotes"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/freight-types"))
}

func TestServer_Health(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_GetOpenAPI(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/api/openapi.yaml", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpadapter.OpenAPISpec(), rec.Body.Bytes())
}

func TestServer_GetFreightTypes(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/freight-types", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var codes []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &codes))
	assert.Equal(t, []string{"ECO", "EXP", "PAD"}, codes)
}

func TestServer_CreateQuote(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode string
		expectedFee  string
		expectedFree bool
	}{
		{
			name:         "standard",
			body:         `{"recipient":"Fulano","address":"Rua A, 123","weightKg":10,"freightCode":"PAD"}`,
			expectedCode: "PAD",
			expectedFee:  "12",
		},
		{
			name:         "express lower case code",
			body:         `{"recipient":"Fulano","address":"Rua A, 123","weightKg":5,"freightCode":" exp "}`,
			expectedCode: "EXP",
			expectedFee:  "17.5",
		},
		{
			name:         "economic with weight discount",
			body:         `{"recipient":"Fulano","address":"Rua A, 123","weightKg":15,"freightCode":"ECO"}`,
			expectedCode: "ECO",
			expectedFee:  "10.4",
		},
		{
			name:         "economic free below two kilograms",
			body:         `{"recipient":"Fulano","address":"Rua A, 123","weightKg":1.5,"freightCode":"ECO"}`,
			expectedCode: "ECO",
			expectedFee:  "0",
			expectedFree: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			e := newTestRouter(t)

			// When
			rec := doJSON(e, http.MethodPost, "/api/v1/quotes", tt.body)

			// Then
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var quote httpadapter.Quote
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
			assert.Equal(t, tt.expectedCode, quote.FreightCode)
			assert.True(t, decimal.RequireFromString(tt.expectedFee).Equal(quote.Fee), "fee %s", quote.Fee)
			assert.Equal(t, tt.expectedFree, quote.FreeShipping)
		})
	}
}

func TestServer_CreateQuote_Errors(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing weight fails schema validation",
			body:            `{"recipient":"Fulano","address":"Rua A, 123","freightCode":"PAD"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request",
		},
		{
			name:            "weight of wrong type fails schema validation",
			body:            `{"recipient":"Fulano","address":"Rua A, 123","weightKg":"heavy","freightCode":"PAD"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request",
		},
		{
			name:            "zero weight",
			body:            `{"recipient":"Fulano","address":"Rua A, 123","weightKg":0,"freightCode":"PAD"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "weight",
		},
		{
			name:            "blank recipient",
			body:            `{"recipient":"   ","address":"Rua A, 123","weightKg":1,"freightCode":"PAD"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "recipient",
		},
		{
			name:            "unsupported freight type",
			body:            `{"recipient":"Fulano","address":"Rua A, 123","weightKg":1,"freightCode":"xyz"}`,
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "unsupported freight type: XYZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			e := newTestRouter(t)

			// When
			rec := doJSON(e, http.MethodPost, "/api/v1/quotes", tt.body)

			// Then
			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			body := decodeError(t, rec)
			assert.Equal(t, tt.expectedStatus, body.Code)
			assert.Contains(t, body.Message, tt.expectedMessage)
		})
	}
}

func TestServer_CreateLabel(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/labels",
		`{"recipient":"Fulano","address":"Rua A, 123","weightKg":5,"freightCode":"EXP"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var label httpadapter.Label
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &label))
	assert.Equal(t, "Destinatário: Fulano\nEndereço: Rua A, 123\nValor do Frete: R$ 17,50", label.Label)
}

func TestServer_CreateSummary(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/summaries",
		`{"recipient":"Fulano","address":"Rua A, 123","weightKg":10,"freightCode":"pad"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var summary httpadapter.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "Pedido para Fulano com frete tipo PAD no valor de R$ 12,00", summary.Summary)
}

func TestServer_CreateLabel_UnsupportedFreightType(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/labels",
		`{"recipient":"Fulano","address":"Rua A, 123","weightKg":5,"freightCode":"XYZ"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

type failingFees struct{}

func (failingFees) ComputeFee(delivery.Delivery) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("pricing backend unavailable")
}

func (failingFees) IsFree(delivery.Delivery) (bool, error) {
	return false, errors.New("pricing backend unavailable")
}

func TestServer_CreateQuote_UnexpectedError(t *testing.T) {
	// Given
	e := newTestRouterWithFees(t, failingFees{})

	// When
	rec := doJSON(e, http.MethodPost, "/api/v1/quotes",
		`{"recipient":"Fulano","address":"Rua A, 123","weightKg":5,"freightCode":"EXP"}`)

	// Then
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to compute freight quote", body.Message)
	assert.NotContains(t, body.Message, "pricing backend")
}
