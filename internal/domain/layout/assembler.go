package layout

import (
	"github.com/kayit-app/kayit-api/internal/domain/document"
	"github.com/kayit-app/kayit-api/internal/domain/entity"
)

// Assembler orquesta los renderers de sección en el orden fijo de la
// plantilla seleccionada. Cada llamada a BuildDocument crea su propio
// Assembler y su propio Pager: no hay estado compartido entre renders
// concurrentes.
type Assembler struct {
	inv   *entity.Invoice
	prof  *entity.BusinessProfile
	theme Theme
	caps  Capabilities
	pager *Pager
}

// BuildDocument construye el documento paginado de una factura con la
// plantilla que corresponde al plan del perfil (premium ⇔ business).
func BuildDocument(inv *entity.Invoice, prof *entity.BusinessProfile) (*document.Document, error) {
	return BuildDocumentWithCapabilities(inv, prof, ResolveCapabilities(prof))
}

// BuildDocumentWithCapabilities permite al llamador sobreescribir la
// política de plantilla (p. ej. un override administrativo). Las anomalías
// estructurales del input (items vacíos, total inconsistente) no se validan
// aquí: se confía en el formulario de edición upstream.
func BuildDocumentWithCapabilities(inv *entity.Invoice, prof *entity.BusinessProfile, caps Capabilities) (*document.Document, error) {
	a := &Assembler{
		inv:   inv,
		prof:  prof,
		theme: ResolveTheme(prof),
		caps:  caps,
		pager: NewPager(flowReserve),
	}

	if a.caps.Premium {
		a.premiumHeader()
		a.itemsTable()
		a.totalsBlock()
		a.signatureBlock()
		a.footerBlock()
	} else {
		a.standardHeader()
		a.clientStrip()
		a.itemsTable()
		a.totalsBlock()
		a.footerBlock()
		a.promoFooter()
	}

	return a.pager.Finalize(), nil
}
