// Package pdf serializa el modelo de documento (páginas de primitivas
// absolutas en mm) a bytes PDF usando gofpdf. Es el único paquete que conoce
// la librería de PDF; el motor de maquetación nunca la importa.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/kayit-app/kayit-api/internal/domain/document"
)

// FPDFWriter implementa billing.DocumentWriter sobre gofpdf.
type FPDFWriter struct{}

// NewFPDFWriter construye el escritor.
func NewFPDFWriter() *FPDFWriter { return &FPDFWriter{} }

// Write vuelca cada página del documento tal cual: sin auto-paginación — el
// motor ya decidió los saltos de página.
func (w *FPDFWriter) Write(_ context.Context, doc *document.Document) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("") // UTF-8 → cp1252 (fuentes core)

	for pi, page := range doc.Pages {
		pdf.AddPage()
		for i, prim := range page.Prims {
			switch pr := prim.(type) {
			case document.Text:
				drawText(pdf, tr, pr)
			case document.Line:
				pdf.SetDrawColor(int(pr.Color.R), int(pr.Color.G), int(pr.Color.B))
				pdf.SetLineWidth(pr.Width)
				pdf.Line(pr.X1, pr.Y1, pr.X2, pr.Y2)
			case document.Rect:
				pdf.SetFillColor(int(pr.Fill.R), int(pr.Fill.G), int(pr.Fill.B))
				if pr.Radius > 0 {
					pdf.RoundedRect(pr.X, pr.Y, pr.W, pr.H, pr.Radius, "1234", "F")
				} else {
					pdf.Rect(pr.X, pr.Y, pr.W, pr.H, "F")
				}
			case document.Image:
				drawImage(pdf, pr, fmt.Sprintf("img-%d-%d", pi, i))
			}
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf: dibujar documento: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar documento: %w", err)
	}
	return buf.Bytes(), nil
}

func drawText(pdf *gofpdf.Fpdf, tr func(string) string, t document.Text) {
	pdf.SetFont("Helvetica", string(t.Style), t.Size)
	pdf.SetTextColor(int(t.Color.R), int(t.Color.G), int(t.Color.B))

	s := tr(t.Content)
	x := t.X
	switch t.Align {
	case document.AlignCenter:
		x -= pdf.GetStringWidth(s) / 2
	case document.AlignRight:
		x -= pdf.GetStringWidth(s)
	}
	pdf.Text(x, t.Y, s)
}

func drawImage(pdf *gofpdf.Fpdf, img document.Image, name string) {
	opts := gofpdf.ImageOptions{ImageType: imageType(img.Format)}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))

	if img.Rotation != 0 {
		pdf.TransformBegin()
		pdf.TransformRotate(img.Rotation, img.X+img.W/2, img.Y+img.H/2)
		pdf.ImageOptions(name, img.X, img.Y, img.W, img.H, false, opts, 0, "")
		pdf.TransformEnd()
		return
	}
	pdf.ImageOptions(name, img.X, img.Y, img.W, img.H, false, opts, 0, "")
}

func imageType(format string) string {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return "PNG"
	}
}
