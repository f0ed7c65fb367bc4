package layout_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kayit-app/kayit-api/internal/domain/layout"
)

func TestFormatMoney_MonedaLocal(t *testing.T) {
	cases := []struct {
		amount string
		code   string
		want   string
	}{
		{"1500000", "XOF", "1 500 000 FCFA"},
		{"1500000", "XAF", "1 500 000 FCFA"},
		{"250", "XOF", "250 FCFA"},
		{"0", "XOF", "0 FCFA"},
		{"-45000", "XOF", "-45 000 FCFA"},
		{"1500000", "xof", "1 500 000 FCFA"}, // el código se normaliza
	}
	for _, tc := range cases {
		got := layout.FormatMoney(decimal.RequireFromString(tc.amount), tc.code)
		assert.Equal(t, tc.want, got, "importe %s %s", tc.amount, tc.code)
	}
}

// TestFormatMoney_AgrupacionConEspacioDuro: la agrupación usa U+00A0, nunca
// el espacio ordinario, para que el visor no parta el importe en dos líneas.
func TestFormatMoney_AgrupacionConEspacioDuro(t *testing.T) {
	got := layout.FormatMoney(decimal.NewFromInt(1234567), "XOF")
	assert.Contains(t, got, " ", "los grupos de miles se separan con espacio duro")
	assert.NotContains(t, strings.TrimSuffix(got, " FCFA"), " ",
		"ningún espacio ordinario dentro del número")
}

func TestFormatMoney_ISOReconocido(t *testing.T) {
	got := layout.FormatMoney(decimal.NewFromInt(1250), "EUR")
	assert.True(t, strings.HasSuffix(got, "EUR"), "el código ISO hace de etiqueta: %q", got)
	assert.Contains(t, got, "250", "los dígitos del importe deben sobrevivir: %q", got)
}

// TestFormatMoney_CodigoDesconocido: un código no reconocido degrada al
// formato plano importe + código en vez de fallar.
func TestFormatMoney_CodigoDesconocido(t *testing.T) {
	assert.Equal(t, "980 QQQ", layout.FormatMoney(decimal.NewFromInt(980), "QQQ"))
	assert.Equal(t, "980 ??", layout.FormatMoney(decimal.NewFromInt(980), "??"))
}

func TestFormatMoney_Determinista(t *testing.T) {
	amount := decimal.NewFromInt(987654321)
	first := layout.FormatMoney(amount, "XOF")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, layout.FormatMoney(amount, "XOF"),
			"misma entrada, misma salida")
	}
}
