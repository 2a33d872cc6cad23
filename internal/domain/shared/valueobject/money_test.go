package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("85000.50", USD)
	require.NoError(t, err)
	assert.Equal(t, "85000.5 USD", m.String())

	_, err = NewMoneyFromString("not-a-number", USD)
	assert.Error(t, err)
}

func TestMoney_LessThan(t *testing.T) {
	low, _ := NewMoneyFromFloat(50000, USD)
	high, _ := NewMoneyFromFloat(120000, USD)

	less, err := low.LessThan(high)
	require.NoError(t, err)
	assert.True(t, less)

	less, err = high.LessThan(low)
	require.NoError(t, err)
	assert.False(t, less)
}

func TestMoney_LessThan_CurrencyMismatch(t *testing.T) {
	usd, _ := NewMoneyFromFloat(100, USD)
	eur, _ := NewMoneyFromFloat(100, EUR)

	_, err := usd.LessThan(eur)
	assert.Error(t, err)
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyFromString("75000", USD)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"75000","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_UnmarshalJSON_DefaultsCurrency(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"10"}`), &m))
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestMoney_Zero(t *testing.T) {
	z := Zero(USD)
	assert.True(t, z.IsZero())
	assert.False(t, z.IsNegative())
}
