// Package document define el modelo del documento renderizado: una secuencia
// ordenada de páginas, cada una con primitivas de dibujo posicionadas de
// forma absoluta en coordenadas de página (milímetros). El modelo no sabe
// nada de PDF; la serialización vive en internal/infrastructure/pdf.
package document

// Color RGB de 8 bits por canal.
type Color struct {
	R, G, B uint8
}

// ParseHex interpreta un color "#rrggbb". Devuelve false si el formato no es
// válido; el llamador decide el color de reserva.
func ParseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	var c Color
	channels := []*uint8{&c.R, &c.G, &c.B}
	for i, ch := range channels {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		*ch = hi<<4 | lo
	}
	return c, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Align es la alineación horizontal de un texto respecto a su coordenada X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// FontStyle estilo tipográfico (Helvetica en todo el documento).
type FontStyle string

const (
	StyleNormal FontStyle = ""
	StyleBold   FontStyle = "B"
	StyleItalic FontStyle = "I"
)

// Primitive es una instrucción de dibujo absoluta dentro de una página.
type Primitive interface {
	primitive()
}

// Text es una corrida de texto con baseline en (X, Y).
type Text struct {
	X, Y    float64
	Content string
	Size    float64 // puntos
	Style   FontStyle
	Color   Color
	Align   Align
}

// Line es una regla entre dos puntos.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// Rect es un rectángulo relleno, con esquinas redondeadas si Radius > 0.
type Rect struct {
	X, Y, W, H float64
	Fill       Color
	Radius     float64
}

// Image es una imagen raster encajada en (X, Y, W, H), con rotación
// opcional en grados alrededor de su centro.
type Image struct {
	X, Y, W, H float64
	Data       []byte
	Format     string // "png" o "jpeg"
	Rotation   float64
}

func (Text) primitive()  {}
func (Line) primitive()  {}
func (Rect) primitive()  {}
func (Image) primitive() {}

// Page es una página finalizada: lista ordenada de primitivas.
type Page struct {
	Prims []Primitive
}

// Add agrega primitivas al final de la página.
func (p *Page) Add(prims ...Primitive) {
	p.Prims = append(p.Prims, prims...)
}

// Document es el resultado de un render: se crea por llamada y se descarta
// tras entregarse al adaptador de salida. Dimensiones en milímetros.
type Document struct {
	Width  float64
	Height float64
	Pages  []*Page
}

// AddPage abre una página nueva y la devuelve.
func (d *Document) AddPage() *Page {
	p := &Page{}
	d.Pages = append(d.Pages, p)
	return p
}

// PageCount devuelve el número de páginas generadas.
func (d *Document) PageCount() int { return len(d.Pages) }
