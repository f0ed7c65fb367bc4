// Package layout implementa el motor de maquetación de facturas: cursor de
// página, ajuste de texto e imágenes, tema por plan y los renderers de
// sección que producen el documento paginado. Todo el paquete es puro: sin
// I/O, sin estado compartido entre renders.
package layout

import "github.com/kayit-app/kayit-api/internal/domain/document"

// Geometría de página A4 en milímetros.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	MarginLeft   = 20.0
	MarginRight  = 20.0
	MarginTop    = 20.0
	MarginBottom = 10.0
)

// Pager mantiene el cursor vertical de escritura sobre páginas de tamaño
// fijo. Dos estados: escribiendo (cursor dentro de la página) y paginando
// (se cierra la página actual, se abre otra y el cursor vuelve al margen
// superior). La banda reservada mantiene el contenido fluido fuera de la
// zona del pie fijo y del sello.
type Pager struct {
	doc      *document.Document
	page     *document.Page
	y        float64
	reserved float64
}

// NewPager crea el pager con su primera página ya abierta. Un documento
// siempre tiene al menos una página, aunque quede vacía de contenido.
func NewPager(reserved float64) *Pager {
	doc := &document.Document{Width: PageWidth, Height: PageHeight}
	p := &Pager{doc: doc, reserved: reserved, y: MarginTop}
	p.page = doc.AddPage()
	return p
}

// Y devuelve la posición vertical actual del cursor.
func (p *Pager) Y() float64 { return p.y }

// SetY reposiciona el cursor dentro de la página actual.
func (p *Pager) SetY(y float64) { p.y = y }

// Bottom es el límite inferior del área fluida: área imprimible menos la
// banda reservada.
func (p *Pager) Bottom() float64 { return PageHeight - MarginBottom - p.reserved }

// Advance baja el cursor. Si la posición resultante supera el límite
// inferior, pagina: cierra la página actual y abre una nueva.
func (p *Pager) Advance(h float64) {
	p.y += h
	if p.y > p.Bottom() {
		p.BreakPage()
	}
}

// EnsureSpace comprueba, antes de emitir un bloque indivisible, que queda
// sitio para él. Si no lo hay, pagina ANTES de emitir — así una fila de
// tabla nunca queda partida entre dos páginas. Devuelve true si paginó.
func (p *Pager) EnsureSpace(h float64) bool {
	if p.y+h > p.Bottom() {
		p.BreakPage()
		return true
	}
	return false
}

// BreakPage fuerza un salto de página y resetea el cursor al margen superior.
func (p *Pager) BreakPage() {
	p.page = p.doc.AddPage()
	p.y = MarginTop
}

// Emit agrega primitivas a la página actual.
func (p *Pager) Emit(prims ...document.Primitive) {
	p.page.Add(prims...)
}

// PageCount devuelve cuántas páginas se han abierto hasta ahora.
func (p *Pager) PageCount() int { return p.doc.PageCount() }

// Finalize cierra el ensamblado y devuelve el documento terminado. La última
// página se conserva aunque solo contenga cabeceras.
func (p *Pager) Finalize() *document.Document { return p.doc }
