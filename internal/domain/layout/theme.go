package layout

import (
	"github.com/kayit-app/kayit-api/internal/domain/document"
	"github.com/kayit-app/kayit-api/internal/domain/entity"
)

// Paleta fija. Solo el acento es personalizable (plan business con color de
// marca); el resto es idéntico para todos los planes.
var (
	defaultAccent = document.Color{R: 37, G: 99, B: 235}    // #2563eb
	textPrimary   = document.Color{R: 15, G: 23, B: 42}     // #0f172a
	textSecondary = document.Color{R: 100, G: 116, B: 139}  // #64748b
	textMuted     = document.Color{R: 148, G: 163, B: 184}  // #94a3b8
	textOnAccent  = document.Color{R: 255, G: 255, B: 255}  // #ffffff
	background    = document.Color{R: 248, G: 250, B: 252}  // #f8fafc
	borderColor   = document.Color{R: 226, G: 232, B: 240}  // #e2e8f0
)

// Colores del badge de estado. Mapeo fijo, independiente del acento del tema.
var statusColors = map[string]document.Color{
	entity.StatusPaid:    {R: 16, G: 185, B: 129}, // #10b981 verde
	entity.StatusOverdue: {R: 239, G: 68, B: 68},  // #ef4444 rojo
	entity.StatusPending: {R: 245, G: 158, B: 11}, // #f59e0b ámbar
}

// Theme es la paleta resuelta para un perfil concreto.
type Theme struct {
	Accent        document.Color
	TextPrimary   document.Color
	TextSecondary document.Color
	TextOnAccent  document.Color
	Background    document.Color
	Border        document.Color
}

// ResolveTheme deriva la paleta del perfil. El color de marca solo se honra
// con plan business y si es un "#rrggbb" válido; en cualquier otro caso el
// acento es el azul por defecto.
func ResolveTheme(p *entity.BusinessProfile) Theme {
	accent := defaultAccent
	if p.Plan == entity.PlanBusiness && p.BrandColor != "" {
		if c, ok := document.ParseHex(p.BrandColor); ok {
			accent = c
		}
	}
	return Theme{
		Accent:        accent,
		TextPrimary:   textPrimary,
		TextSecondary: textSecondary,
		TextOnAccent:  textOnAccent,
		Background:    background,
		Border:        borderColor,
	}
}

// Capabilities concentra todas las decisiones dependientes del plan en un
// único objeto de política, en lugar de repartir condicionales de plan por
// cada renderer.
type Capabilities struct {
	Premium     bool // plantilla premium (business)
	ShowLogo    bool // el logo se renderiza si existe
	Signature   bool // bloque de sello/firma disponible
	PromoFooter bool // líneas promocionales del plan gratuito
}

// ResolveCapabilities deriva la política de plantilla del perfil.
func ResolveCapabilities(p *entity.BusinessProfile) Capabilities {
	premium := p.Plan == entity.PlanBusiness
	return Capabilities{
		Premium:     premium,
		ShowLogo:    p.Logo != nil && (premium || p.Plan != entity.PlanStarter),
		Signature:   premium && p.Signature != nil,
		PromoFooter: p.Plan == entity.PlanStarter,
	}
}

// StatusColor devuelve el color fijo del badge para un estado de factura.
func StatusColor(status string) document.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return textSecondary
}
