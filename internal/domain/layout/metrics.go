package layout

import "github.com/kayit-app/kayit-api/internal/domain/document"

// Métricas de avance de Helvetica (milésimas de em, tabla AFM estándar).
// El motor mide texto antes de que exista ningún objeto PDF, así que no
// puede apoyarse en el medidor del escritor de salida.
var helveticaWidths = map[rune]int{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889, '&': 667,
	'\'': 191, '(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333,
	'.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556, '5': 556, '6': 556,
	'7': 556, '8': 556, '9': 556,
	':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556,
	'h': 556, 'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556,
	'o': 556, 'p': 556, 'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
	'À': 667, 'Â': 667, 'Ç': 722, 'É': 667, 'È': 667, 'Ê': 667, 'Î': 278,
	'Ô': 778, 'Û': 722,
	'à': 556, 'â': 556, 'ç': 500, 'é': 556, 'è': 556, 'ê': 556, 'ë': 556,
	'î': 278, 'ï': 278, 'ô': 556, 'ö': 556, 'ù': 556, 'û': 556, 'ü': 556,
	'€': 556, '°': 400, '’': 222, '–': 556, '№': 834,
}

const (
	// Ancho por defecto para glifos fuera de la tabla.
	defaultGlyphWidth = 556
	// Conversión puntos tipográficos → milímetros.
	ptToMM = 25.4 / 72.0
	// Helvetica-Bold es algo más ancha que la regular; con un único juego
	// de métricas se compensa con un factor fijo.
	boldWidthFactor = 1.08
)

// TextWidth mide s en milímetros para el tamaño (en puntos) y estilo dados.
func TextWidth(s string, size float64, style document.FontStyle) float64 {
	units := 0
	for _, r := range s {
		w, ok := helveticaWidths[r]
		if !ok {
			w = defaultGlyphWidth
		}
		units += w
	}
	width := float64(units) / 1000.0 * size * ptToMM
	if style == document.StyleBold {
		width *= boldWidthFactor
	}
	return width
}
