package queries_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/freight"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeeCalculator struct{ mock.Mock }

func (m *MockFeeCalculator) ComputeFee(d delivery.Delivery) (decimal.Decimal, error) {
	args := m.Called(d)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFeeCalculator) IsFree(d delivery.Delivery) (bool, error) {
	args := m.Called(d)
	return args.Bool(0), args.Error(1)
}

type MockLabelGenerator struct{ mock.Mock }

func (m *MockLabelGenerator) GenerateLabel(d delivery.Delivery) (string, error) {
	args := m.Called(d)
	return args.String(0), args.Error(1)
}

func (m *MockLabelGenerator) GenerateSummary(d delivery.Delivery) (string, error) {
	args := m.Called(d)
	return args.String(0), args.Error(1)
}

type MockCodeLister struct{ mock.Mock }

func (m *MockCodeLister) Codes() []freight.Code {
	args := m.Called()
	return args.Get(0).([]freight.Code)
}

func newDelivery(t *testing.T, weightKg string, code string) delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery("Fulano", "Rua A, 123", decimal.RequireFromString(weightKg), code)
	require.NoError(t, err)
	return d
}
