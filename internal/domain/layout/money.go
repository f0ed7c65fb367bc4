package layout

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Familia de monedas locales: sin decimales, agrupación por espacio duro y
// etiqueta fija. El mercado objetivo no usa subdivisiones del franco CFA.
var localCurrencies = map[string]bool{
	"XOF": true,
	"XAF": true,
}

const (
	localCurrencyLabel = "FCFA"
	nbsp               = "\u00a0"
)

// Printer propio del paquete: nada de mutar el locale global.
var frPrinter = message.NewPrinter(language.French)

// FormatMoney renderiza un importe para mostrar en el documento.
//
//   - Moneda local (XOF/XAF): entero agrupado de a miles con espacio duro y
//     la etiqueta FCFA — p. ej. 1500000 → "1 500 000 FCFA".
//   - Código ISO reconocido: agrupación del locale francés, cero decimales,
//     código como etiqueta.
//   - Código desconocido: degrada a "<importe> <código>" en vez de fallar.
//
// Determinista y sin efectos secundarios.
func FormatMoney(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	if localCurrencies[code] {
		return groupThousands(amount.StringFixed(0)) + " " + localCurrencyLabel
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(0) + " " + code
	}

	f, _ := amount.Round(0).Float64()
	return frPrinter.Sprintf("%v %v", number.Decimal(f, number.MaxFractionDigits(0)), unit)
}

// groupThousands inserta un espacio duro cada tres dígitos desde la derecha.
// Ej: "1500000" → "1 500 000".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(nbsp)
		}
		b.WriteByte(s[i])
	}
	return sign + b.String()
}
