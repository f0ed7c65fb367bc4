package entity

// Planes de suscripción. El plan decide la plantilla del documento y las
// funciones de marca disponibles.
const (
	PlanStarter  = "starter"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// ImageRef es una imagen raster ya decodificada lo suficiente como para
// exponer sus dimensiones intrínsecas en píxeles.
type ImageRef struct {
	Data   []byte
	Format string // "png" o "jpeg"
	Width  int
	Height int
}

// BusinessProfile es el contexto de marca del emisor. El render nunca lo muta.
type BusinessProfile struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Plan        string `json:"plan"`
	BrandColor  string `json:"brandColor,omitempty"` // solo se honra con plan business
	DefaultNote string `json:"defaultNote,omitempty"`

	Logo      *ImageRef `json:"-"`
	Signature *ImageRef `json:"-"`
}
