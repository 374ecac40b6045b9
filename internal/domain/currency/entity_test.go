package currency

import (
	"testing"

	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency(t *testing.T) {
	c, err := New("eur", "€", "Euro")
	require.NoError(t, err)

	assert.Equal(t, "EUR", c.Code, "code is stored upper-cased")
	assert.Equal(t, "€", c.Symbol)
	assert.NotEmpty(t, c.ID)
}

func TestNewCurrencyValidation(t *testing.T) {
	cases := []struct {
		name      string
		code      string
		symbol    string
		currName  string
		wantField string
	}{
		{"code too short", "EU", "€", "Euro", "code"},
		{"code too long", "EURO", "€", "Euro", "code"},
		{"code with digits", "E1R", "€", "Euro", "code"},
		{"empty symbol", "EUR", " ", "Euro", "symbol"},
		{"empty name", "EUR", "€", "", "name"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.code, c.symbol, c.currName)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.wantField)
		})
	}
}
