package http

import "github.com/shopspring/decimal"

// DeliveryRequest is the body shared by the quote, label and summary endpoints.
type DeliveryRequest struct {
	Recipient   string          `json:"recipient"`
	Address     string          `json:"address"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	FreightCode string          `json:"freightCode"`
}

// Quote is the response of POST /api/v1/quotes. Fee is encoded as an exact decimal string.
type Quote struct {
	FreightCode  string          `json:"freightCode"`
	Fee          decimal.Decimal `json:"fee"`
	FreeShipping bool            `json:"freeShipping"`
}

type Label struct {
	Label string `json:"label"`
}

type Summary struct {
	Summary string `json:"summary"`
}

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
