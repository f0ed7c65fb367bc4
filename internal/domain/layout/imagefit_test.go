package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayit-app/kayit-api/internal/domain/layout"
)

func TestFitImage_RestriccionPorAncho(t *testing.T) {
	w, h, err := layout.FitImage(100, 50, 35, 25)
	require.NoError(t, err)
	assert.InDelta(t, 35, w, 1e-9)
	assert.InDelta(t, 17.5, h, 1e-9)
}

// TestFitImage_RecalculoPorAltura: si la altura derivada del ancho excede el
// máximo, se recalcula desde la restricción de altura.
func TestFitImage_RecalculoPorAltura(t *testing.T) {
	w, h, err := layout.FitImage(50, 100, 35, 25)
	require.NoError(t, err)
	assert.InDelta(t, 25, h, 1e-9)
	assert.InDelta(t, 12.5, w, 1e-9)
}

func TestFitImage_PreservaRelacionDeAspecto(t *testing.T) {
	cases := []struct{ iw, ih int }{
		{100, 50}, {50, 100}, {640, 480}, {3, 7}, {1, 1},
	}
	for _, tc := range cases {
		w, h, err := layout.FitImage(tc.iw, tc.ih, 40, 25)
		require.NoError(t, err)
		assert.InDelta(t, float64(tc.iw)/float64(tc.ih), w/h, 1e-9,
			"relación de aspecto de %dx%d", tc.iw, tc.ih)
		assert.LessOrEqual(t, w, 40.0)
		assert.LessOrEqual(t, h, 25.0)
	}
}

func TestFitImage_SinAlturaMaxima(t *testing.T) {
	// maxHeight == 0 significa sin restricción vertical.
	w, h, err := layout.FitImage(50, 200, 35, 0)
	require.NoError(t, err)
	assert.InDelta(t, 35, w, 1e-9)
	assert.InDelta(t, 140, h, 1e-9)
}

// TestFitImage_SinDimensiones: una imagen sin dimensiones intrínsecas se
// señala como omisible, no como error fatal.
func TestFitImage_SinDimensiones(t *testing.T) {
	for _, dims := range [][2]int{{0, 50}, {50, 0}, {0, 0}, {-1, 50}} {
		_, _, err := layout.FitImage(dims[0], dims[1], 35, 25)
		assert.ErrorIs(t, err, layout.ErrImageOmitted, "dimensiones %v", dims)
	}
}
