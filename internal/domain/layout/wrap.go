package layout

import (
	"strings"

	"github.com/kayit-app/kayit-api/internal/domain/document"
)

// WrapText parte s en líneas que caben en maxWidth milímetros para el tamaño
// y estilo dados. Ajuste voraz por palabras; una palabra más ancha que la
// columna se parte por runas. Los saltos de línea explícitos se respetan.
func WrapText(s string, maxWidth, size float64, style document.FontStyle) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		current := ""
		for _, word := range words {
			if TextWidth(word, size, style) > maxWidth {
				// Palabra más ancha que la columna: volcar la línea en
				// curso y partir la palabra por runas.
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				chunks := breakWord(word, maxWidth, size, style)
				lines = append(lines, chunks[:len(chunks)-1]...)
				// El último trozo sigue admitiendo palabras detrás.
				current = chunks[len(chunks)-1]
				continue
			}

			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if TextWidth(candidate, size, style) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// breakWord trocea una palabra por runas de modo que cada trozo quepa en
// maxWidth. Siempre avanza al menos una runa por trozo.
func breakWord(word string, maxWidth, size float64, style document.FontStyle) []string {
	var chunks []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && TextWidth(string(runes[start:end+1]), size, style) <= maxWidth {
			end++
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end
	}
	return chunks
}
