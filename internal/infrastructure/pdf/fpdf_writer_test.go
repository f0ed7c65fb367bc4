package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayit-app/kayit-api/internal/domain/document"
	"github.com/kayit-app/kayit-api/internal/infrastructure/pdf"
)

// pngDePrueba genera un PNG real mínimo para las primitivas de imagen.
func pngDePrueba(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{R: 37, G: 99, B: 235, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func documentoBase() *document.Document {
	d := &document.Document{Width: 210, Height: 297}
	p := d.AddPage()
	p.Add(
		document.Text{X: 20, Y: 30, Content: "FACTURE", Size: 32, Style: document.StyleBold, Color: document.Color{R: 37, G: 99, B: 235}},
		document.Text{X: 190, Y: 40, Content: "Échéance : 31/08/2026", Size: 9, Align: document.AlignRight, Color: document.Color{R: 100, G: 116, B: 139}},
		document.Line{X1: 20, Y1: 50, X2: 190, Y2: 50, Width: 0.5, Color: document.Color{R: 226, G: 232, B: 240}},
		document.Rect{X: 20, Y: 60, W: 170, H: 10, Fill: document.Color{R: 248, G: 250, B: 252}},
		document.Rect{X: 90, Y: 80, W: 100, H: 14, Fill: document.Color{R: 248, G: 250, B: 252}, Radius: 2},
	)
	return d
}

func TestWrite_ProduceCabeceraPDF(t *testing.T) {
	data, err := pdf.NewFPDFWriter().Write(context.Background(), documentoBase())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el artefacto empieza por la cabecera PDF")
	assert.Greater(t, len(data), 500, "un documento con contenido no puede ser trivialmente pequeño")
}

func TestWrite_MultiPagina(t *testing.T) {
	d := documentoBase()
	p2 := d.AddPage()
	p2.Add(document.Text{X: 20, Y: 30, Content: "page 2", Size: 10})

	data, err := pdf.NewFPDFWriter().Write(context.Background(), d)
	require.NoError(t, err)
	// gofpdf escribe el recuento de páginas en el catálogo.
	assert.Contains(t, string(data), "/Count 2")
}

func TestWrite_ConImagen(t *testing.T) {
	d := documentoBase()
	d.Pages[0].Add(document.Image{
		X: 20, Y: 100, W: 35, H: 17.5,
		Data: pngDePrueba(t), Format: "png",
	})

	data, err := pdf.NewFPDFWriter().Write(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

// TestWrite_ImagenRotada: el sello de firma lleva una rotación leve; la
// transformación no debe dejar el escritor en estado de error.
func TestWrite_ImagenRotada(t *testing.T) {
	d := documentoBase()
	d.Pages[0].Add(document.Image{
		X: 150, Y: 220, W: 40, H: 20,
		Data: pngDePrueba(t), Format: "png", Rotation: -3,
	})

	_, err := pdf.NewFPDFWriter().Write(context.Background(), d)
	assert.NoError(t, err)
}

func TestWrite_AcentosFranceses(t *testing.T) {
	d := &document.Document{Width: 210, Height: 297}
	d.AddPage().Add(document.Text{X: 20, Y: 30, Content: "PAYÉE : Échéance dépassée à Nîmes", Size: 10})

	data, err := pdf.NewFPDFWriter().Write(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWrite_DocumentoVacio(t *testing.T) {
	d := &document.Document{Width: 210, Height: 297}
	d.AddPage()

	data, err := pdf.NewFPDFWriter().Write(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "una página vacía sigue siendo un PDF válido")
}
