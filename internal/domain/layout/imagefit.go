package layout

import "errors"

// ErrImageOmitted señala que una imagen no puede encajarse (sin dimensiones
// intrínsecas). Es recuperable: la sección omite la imagen y el documento
// sigue siendo producible.
var ErrImageOmitted = errors.New("layout: imagen sin dimensiones intrínsecas, se omite")

// FitImage calcula el tamaño de render de una imagen de dimensiones
// intrínsecas (width × height) píxeles dentro de una caja delimitadora,
// preservando exactamente la relación de aspecto. Primero restringe por
// maxWidth; si maxHeight > 0 y la altura resultante lo supera, recalcula
// desde la restricción de altura.
func FitImage(width, height int, maxWidth, maxHeight float64) (float64, float64, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, ErrImageOmitted
	}

	ratio := float64(width) / float64(height)
	w := maxWidth
	h := w / ratio
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
		w = h * ratio
	}
	return w, h, nil
}
