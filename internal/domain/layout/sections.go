package layout

import (
	"math"
	"strings"
	"time"

	"github.com/kayit-app/kayit-api/internal/domain/document"
	"github.com/kayit-app/kayit-api/internal/domain/entity"
)

// Constantes de maquetación compartidas por ambas plantillas.
const (
	lineStep     = 5.0  // paso entre líneas envueltas dentro de una fila
	minRowHeight = 12.0 // altura mínima de fila de la tabla
	rowPadding   = 8.0  // relleno vertical de fila

	footerY   = PageHeight - 40 // pie fijo de tres columnas
	stampY    = PageHeight - 75 // sello/firma, anclado al fondo de página
	stampMaxW = 40.0
	stampMaxH = 25.0

	// Banda inferior reservada al pie fijo y al sello: el contenido fluido
	// (tabla, totales) nunca baja de PageHeight-60.
	flowReserve = 50.0

	maxNoteLines = 4
)

// Etiquetas del badge de estado (texto visible del documento, en francés).
var statusLabels = map[string]string{
	entity.StatusPaid:    "PAYÉE",
	entity.StatusOverdue: "EN RETARD",
	entity.StatusPending: "EN ATTENTE",
}

// text emite una corrida de texto en la página actual.
func (a *Assembler) text(x, y float64, s string, size float64, style document.FontStyle, c document.Color, al document.Align) {
	a.pager.Emit(document.Text{X: x, Y: y, Content: s, Size: size, Style: style, Color: c, Align: al})
}

// statusBadge emite el estado de la factura con su color fijo (verde/rojo/
// ámbar), independiente del acento del tema.
func (a *Assembler) statusBadge(x, y, size float64) {
	label, ok := statusLabels[a.inv.Status]
	if !ok {
		return
	}
	a.text(x, y, label, size, document.StyleBold, StatusColor(a.inv.Status), document.AlignRight)
}

// ── Cabeceras ─────────────────────────────────────────────────────────────────

// premiumHeader: identidad del emisor (logo + nombre + datos) a la izquierda,
// metadatos de la factura a la derecha y bloque de cliente emparejado en la
// misma cabecera a dos columnas.
func (a *Assembler) premiumHeader() {
	leftY := MarginTop + 5

	if a.caps.ShowLogo {
		if w, h, err := FitImage(a.prof.Logo.Width, a.prof.Logo.Height, 35, 25); err == nil {
			a.pager.Emit(document.Image{
				X: MarginLeft, Y: leftY, W: w, H: h,
				Data: a.prof.Logo.Data, Format: a.prof.Logo.Format,
			})
			leftY += h + 8
		}
	}

	a.text(MarginLeft, leftY+5, a.prof.DisplayName, 16, document.StyleBold, a.theme.Accent, document.AlignLeft)
	leftY += 12

	a.text(MarginLeft, leftY, "ÉMIS PAR :", 8, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	sender := joinLines(a.prof.Address, a.prof.Phone, a.prof.Email)
	senderLines := WrapText(sender, 80, 9, document.StyleNormal)
	for i, ln := range senderLines {
		a.text(MarginLeft, leftY+5+float64(i)*4, ln, 9, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}
	finalLeftY := leftY + 5 + float64(len(senderLines))*4

	rightY := MarginTop + 15
	rightX := PageWidth - MarginRight
	a.text(rightX, rightY, "FACTURE", 32, document.StyleBold, a.theme.Accent, document.AlignRight)
	a.text(rightX, rightY+10, "#"+a.inv.Number, 10, document.StyleBold, a.theme.TextPrimary, document.AlignRight)
	a.text(rightX, rightY+15, "Date : "+formatDateFR(a.inv.Date), 9, document.StyleNormal, a.theme.TextSecondary, document.AlignRight)

	statusY := rightY + 21
	if a.inv.DueDate != "" {
		a.text(rightX, statusY, "Échéance : "+formatDateFR(a.inv.DueDate), 9, document.StyleNormal, a.theme.TextSecondary, document.AlignRight)
		statusY += 6
	}
	a.statusBadge(rightX, statusY, 10)

	clientY := rightY + 45
	clientX := PageWidth/2 + 20
	a.text(clientX, clientY, "FACTURÉ À :", 8, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	a.text(clientX, clientY+6, a.inv.ClientName, 11, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	clientLines := WrapText(joinLines(a.inv.ClientAddress, a.inv.ClientEmail), 70, 9, document.StyleNormal)
	for i, ln := range clientLines {
		a.text(clientX, clientY+11+float64(i)*4, ln, 9, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}
	finalRightY := clientY + 11 + float64(len(clientLines))*4

	a.pager.SetY(math.Max(finalLeftY, finalRightY) + 20)
}

// standardHeader: logo o nombre como encabezado a la izquierda, número/fechas/
// estado a la derecha.
func (a *Assembler) standardHeader() {
	y := a.pager.Y()

	if a.caps.ShowLogo {
		if w, h, err := FitImage(a.prof.Logo.Width, a.prof.Logo.Height, 35, 25); err == nil {
			a.pager.Emit(document.Image{
				X: MarginLeft, Y: y, W: w, H: h,
				Data: a.prof.Logo.Data, Format: a.prof.Logo.Format,
			})
		}
	} else {
		a.text(MarginLeft, y+10, a.prof.DisplayName, 26, document.StyleBold, a.theme.Accent, document.AlignLeft)
		a.text(MarginLeft, y+16, "Gestion de factures", 10, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}

	rightX := PageWidth - MarginRight
	a.text(rightX, y+5, "FACTURE N°", 9, document.StyleBold, a.theme.TextSecondary, document.AlignRight)
	num := a.inv.Number
	if num == "" {
		num = "----"
	}
	a.text(rightX, y+11, num, 14, document.StyleBold, a.theme.TextPrimary, document.AlignRight)
	a.text(rightX, y+17, "Date : "+formatDateFR(a.inv.Date), 10, document.StyleNormal, a.theme.TextSecondary, document.AlignRight)

	statusY := y + 23
	if a.inv.DueDate != "" {
		a.text(rightX, statusY, "Échéance : "+formatDateFR(a.inv.DueDate), 10, document.StyleNormal, a.theme.TextSecondary, document.AlignRight)
		statusY += 6
	}
	a.statusBadge(rightX, statusY, 10)

	a.pager.Advance(40)
}

// clientStrip: franja a dos columnas ÉMIS PAR / FACTURÉ À bajo una regla
// divisoria (solo plantilla estándar; la premium empareja el cliente en la
// cabecera).
func (a *Assembler) clientStrip() {
	y := a.pager.Y()
	a.pager.Emit(document.Line{X1: MarginLeft, Y1: y, X2: PageWidth - MarginRight, Y2: y, Width: 0.1, Color: a.theme.Border})
	a.pager.Advance(15)
	y = a.pager.Y()

	leftX := MarginLeft
	rightX := PageWidth/2 + 10
	a.text(leftX, y, "ÉMIS PAR", 8, document.StyleBold, textMuted, document.AlignLeft)
	a.text(rightX, y, "FACTURÉ À", 8, document.StyleBold, textMuted, document.AlignLeft)
	a.pager.Advance(6)
	y = a.pager.Y()

	a.text(leftX, y, a.prof.DisplayName, 11, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	a.text(leftX, y+6, a.prof.Email, 10, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	a.text(rightX, y, a.inv.ClientName, 11, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	if a.inv.ClientEmail != "" {
		a.text(rightX, y+6, a.inv.ClientEmail, 10, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}
	a.pager.Advance(40)
}

// ── Tabla de líneas ───────────────────────────────────────────────────────────

// tableSpec fija la geometría y el estilo de la tabla por plantilla. Los
// anchos de columna son fracciones fijas del área imprimible; las filas
// nunca se redistribuyen en varias columnas por página.
type tableSpec struct {
	colDesc, colQty, colPrice, colTotal float64
	descWidth                           float64
	descStyle                           document.FontStyle
	descSize, cellSize                  float64
}

func (a *Assembler) tableGeometry() tableSpec {
	if a.caps.Premium {
		ts := tableSpec{
			colDesc:   MarginLeft,
			colPrice:  PageWidth - MarginRight - 75,
			colQty:    PageWidth - MarginRight - 45,
			colTotal:  PageWidth - MarginRight,
			descStyle: document.StyleBold,
			descSize:  9,
			cellSize:  9,
		}
		ts.descWidth = ts.colPrice - ts.colDesc - 10
		return ts
	}
	ts := tableSpec{
		colDesc:   MarginLeft,
		colQty:    PageWidth / 2,
		colPrice:  PageWidth - MarginRight - 60,
		colTotal:  PageWidth - MarginRight,
		descStyle: document.StyleNormal,
		descSize:  10,
		cellSize:  10,
	}
	ts.descWidth = ts.colQty - ts.colDesc - 10
	return ts
}

// tableHeader emite la banda de cabecera de la tabla y avanza el cursor.
func (a *Assembler) tableHeader(ts tableSpec) {
	y := a.pager.Y()
	bandW := PageWidth - MarginLeft - MarginRight

	if a.caps.Premium {
		a.pager.Emit(document.Rect{X: MarginLeft, Y: y, W: bandW, H: 10, Fill: a.theme.Accent})
		ty := y + 6.5
		a.text(ts.colDesc+5, ty, "DESCRIPTION", 9, document.StyleBold, a.theme.TextOnAccent, document.AlignLeft)
		a.text(ts.colPrice, ty, "PRIX UNIT.", 9, document.StyleBold, a.theme.TextOnAccent, document.AlignRight)
		a.text(ts.colQty, ty, "QTÉ", 9, document.StyleBold, a.theme.TextOnAccent, document.AlignCenter)
		a.text(ts.colTotal-5, ty, "TOTAL", 9, document.StyleBold, a.theme.TextOnAccent, document.AlignRight)
		a.pager.Advance(10)
		return
	}

	a.pager.Emit(document.Rect{X: MarginLeft, Y: y, W: bandW, H: 10, Fill: a.theme.Background})
	ty := y + 6.5
	a.text(ts.colDesc+5, ty, "DESCRIPTION", 8, document.StyleBold, textMuted, document.AlignLeft)
	a.text(ts.colQty, ty, "QTÉ", 8, document.StyleBold, textMuted, document.AlignCenter)
	a.text(ts.colPrice, ty, "PRIX UNIT.", 8, document.StyleBold, textMuted, document.AlignRight)
	a.text(ts.colTotal-5, ty, "MONTANT", 8, document.StyleBold, textMuted, document.AlignRight)
	a.pager.Advance(15)
}

// itemsTable emite una fila por línea de factura. La altura de fila depende
// del número de líneas envueltas de la descripción; EnsureSpace garantiza
// que ninguna fila quede partida entre páginas, y la banda de cabecera se
// repite al inicio de cada página de continuación.
func (a *Assembler) itemsTable() {
	ts := a.tableGeometry()
	a.tableHeader(ts)

	for _, item := range a.inv.Items {
		lines := WrapText(item.Description, ts.descWidth, ts.descSize, ts.descStyle)
		if len(lines) == 0 {
			lines = []string{""}
		}
		rowH := math.Max(minRowHeight, float64(len(lines))*lineStep+rowPadding)

		if a.pager.EnsureSpace(rowH) {
			a.tableHeader(ts)
		}

		y := a.pager.Y()
		for i, ln := range lines {
			a.text(ts.colDesc+5, y+6+float64(i)*lineStep, ln, ts.descSize, ts.descStyle, a.theme.TextPrimary, document.AlignLeft)
		}
		a.text(ts.colPrice, y+6, FormatMoney(item.Price, a.inv.Currency), ts.cellSize, document.StyleNormal, a.theme.TextSecondary, document.AlignRight)
		a.text(ts.colQty, y+6, item.Quantity.String(), ts.cellSize, document.StyleNormal, a.theme.TextSecondary, document.AlignCenter)
		a.text(ts.colTotal-5, y+6, FormatMoney(item.LineTotal(), a.inv.Currency), ts.cellSize, document.StyleBold, a.theme.TextPrimary, document.AlignRight)

		a.pager.Advance(rowH)
		ry := a.pager.Y()
		a.pager.Emit(document.Line{X1: MarginLeft, Y1: ry, X2: PageWidth - MarginRight, Y2: ry, Width: 0.5, Color: a.theme.Border})
	}
}

// ── Totales ───────────────────────────────────────────────────────────────────

const (
	totalsHeightPremium  = 27.0 // 5 de aire + línea de subtotal + banda de total
	totalsHeightStandard = 32.0
)

// totalsBlock emite subtotal y total. El importe sale tal cual de
// Invoice.Total: si el llamador rompió la invariante de suma, el documento
// la reproduce fielmente en lugar de corregirla en silencio.
func (a *Assembler) totalsBlock() {
	h := totalsHeightStandard
	if a.caps.Premium {
		h = totalsHeightPremium
	}

	// Chequeo de colisión con el sello: en la última página el paquete
	// totales+sello+pie debe caber completo; si el cursor invadiría la zona
	// del sello, se pagina antes de emitir.
	limit := a.pager.Bottom()
	if a.caps.Signature {
		limit = stampY - 4
	}
	if a.pager.Y()+h > limit {
		a.pager.BreakPage()
	}

	if a.caps.Premium {
		a.premiumTotals()
		return
	}
	a.standardTotals()
}

func (a *Assembler) premiumTotals() {
	total := FormatMoney(a.inv.Total, a.inv.Currency)
	rightX := PageWidth - MarginRight - 5
	summaryX := PageWidth - MarginRight - 90

	a.pager.Advance(5)
	y := a.pager.Y()
	a.text(summaryX, y+5, "Sous-total :", 9, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	a.text(rightX, y+5, total, 9, document.StyleBold, a.theme.TextPrimary, document.AlignRight)

	a.pager.Advance(10)
	y = a.pager.Y()
	a.pager.Emit(document.Rect{X: summaryX - 5, Y: y, W: 95, H: 12, Fill: a.theme.Accent})
	a.text(summaryX, y+8, "TOTAL À PAYER :", 10, document.StyleBold, a.theme.TextOnAccent, document.AlignLeft)
	a.text(rightX, y+8, total, 12, document.StyleBold, a.theme.TextOnAccent, document.AlignRight)
	a.pager.Advance(12)
}

func (a *Assembler) standardTotals() {
	total := FormatMoney(a.inv.Total, a.inv.Currency)
	rightX := PageWidth - MarginRight - 5
	summaryX := PageWidth - MarginRight - 100

	a.pager.Advance(10)
	y := a.pager.Y()
	a.text(summaryX+5, y, "Sous-total", 10, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	a.text(rightX, y, total, 10, document.StyleBold, a.theme.TextPrimary, document.AlignRight)

	a.pager.Advance(8)
	y = a.pager.Y()
	a.pager.Emit(document.Rect{X: summaryX, Y: y, W: 100, H: 14, Fill: a.theme.Background, Radius: 2})
	a.text(summaryX+5, y+10, "Total à payer", 10, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	a.text(rightX, y+10, total, 12, document.StyleBold, a.theme.Accent, document.AlignRight)
	a.pager.Advance(14)
}

// ── Sello, pie y promo ────────────────────────────────────────────────────────

// signatureBlock: sello de dirección con la imagen de firma encajada en
// una caja fija, rotación leve y posición anclada al fondo de la página
// (solo premium). Una firma sin dimensiones se omite sin abortar el render.
func (a *Assembler) signatureBlock() {
	if !a.caps.Signature {
		return
	}

	centerX := PageWidth - MarginRight - stampMaxW/2
	a.text(centerX, stampY, "LA DIRECTION", 8, document.StyleBold, a.theme.TextPrimary, document.AlignCenter)

	sig := a.prof.Signature
	w, h, err := FitImage(sig.Width, sig.Height, stampMaxW, stampMaxH)
	if err != nil {
		return
	}
	a.pager.Emit(document.Image{
		X: centerX - w/2, Y: stampY + 2, W: w, H: h,
		Data: sig.Data, Format: sig.Format, Rotation: -3,
	})
}

// footerBlock: pie fijo de tres columnas (contacto / pago y vencimiento /
// notas envueltas), emitido en la última página.
func (a *Assembler) footerBlock() {
	ruleColor := a.theme.Border
	if a.caps.Premium {
		ruleColor = a.theme.Accent
	}
	a.pager.Emit(document.Line{X1: MarginLeft, Y1: footerY - 5, X2: PageWidth - MarginRight, Y2: footerY - 5, Width: 0.5, Color: ruleColor})

	a.text(MarginLeft, footerY+5, "NOUS CONTACTER", 8, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	a.text(MarginLeft, footerY+10, a.prof.Email, 7, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	if a.prof.Phone != "" {
		a.text(MarginLeft, footerY+14, a.prof.Phone, 7, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}

	col2X := MarginLeft + 60
	a.text(col2X, footerY+5, "PAIEMENT", 8, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	payY := footerY + 10
	if a.inv.PaymentMethod != "" {
		a.text(col2X, payY, "Via : "+a.inv.PaymentMethod, 7, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
		payY += 4
	}
	if a.inv.DueDate != "" {
		a.text(col2X, payY, "Échéance : "+formatDateFR(a.inv.DueDate), 7, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
	}

	col3X := MarginLeft + 120
	a.text(col3X, footerY+5, "NOTES", 8, document.StyleBold, a.theme.TextPrimary, document.AlignLeft)
	if a.inv.Notes != "" {
		lines := WrapText(a.inv.Notes, PageWidth-col3X-MarginRight, 7, document.StyleNormal)
		if len(lines) > maxNoteLines {
			lines = lines[:maxNoteLines]
		}
		for i, ln := range lines {
			a.text(col3X, footerY+10+float64(i)*4, ln, 7, document.StyleNormal, a.theme.TextSecondary, document.AlignLeft)
		}
	}
}

// promoFooter: líneas promocionales del plan gratuito, centradas al pie.
func (a *Assembler) promoFooter() {
	if !a.caps.PromoFooter {
		return
	}
	a.text(PageWidth/2, PageHeight-15, "Créé gratuitement avec Kayit", 10, document.StyleNormal, textMuted, document.AlignCenter)
	a.text(PageWidth/2, PageHeight-11, "Passez en Pro pour retirer ce message", 8, document.StyleNormal, textMuted, document.AlignCenter)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDateFR formatea una fecha ISO al formato francés dd/mm/aaaa. Si la
// cadena no parsea se muestra tal cual.
func formatDateFR(s string) string {
	for _, l := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// joinLines une los fragmentos no vacíos con saltos de línea.
func joinLines(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
