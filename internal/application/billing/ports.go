package billing

import (
	"context"
	"errors"
	"sync"

	"github.com/kayit-app/kayit-api/internal/domain/document"
)

// DocumentWriter serializa un documento paginado en un artefacto binario
// descargable (PDF).
type DocumentWriter interface {
	Write(ctx context.Context, doc *document.Document) ([]byte, error)
}

// PreviewHandle es una referencia revocable a un artefacto en memoria,
// apta para incrustar en una superficie de vista previa. El llamador debe
// liberarla exactamente una vez: al cerrar la vista previa o al desmontar
// el componente, lo que ocurra primero.
type PreviewHandle struct {
	ID  string
	URL string

	release func()
	once    sync.Once
}

// NewPreviewHandle construye el handle; release revoca el artefacto.
func NewPreviewHandle(id, url string, release func()) *PreviewHandle {
	return &PreviewHandle{ID: id, URL: url, release: release}
}

// Release revoca el handle. Idempotente: llamadas repetidas no hacen nada.
func (h *PreviewHandle) Release() {
	h.once.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}

// PreviewStore almacena artefactos en memoria bajo handles revocables.
type PreviewStore interface {
	Put(name string, data []byte) (*PreviewHandle, error)
}

// ShareRequest es la carga que se entrega a la capacidad de compartir de la
// plataforma: el artefacto serializado más título y texto legibles.
type ShareRequest struct {
	FileName string
	Title    string
	Caption  string
	Data     []byte
}

// Platform abstrae la capacidad de compartir dependiente de plataforma.
type Platform interface {
	// CanShare indica si la plataforma puede recibir el artefacto.
	CanShare() bool
	// Share entrega el artefacto y espera la interacción del usuario.
	// Devuelve ErrShareCancelled si el usuario aborta (resultado normal,
	// no un fallo) y ErrShareUnsupported si la carga no es aceptada.
	Share(ctx context.Context, req ShareRequest) error
}

// Errores de la vía de compartir.
var (
	ErrShareCancelled   = errors.New("billing: compartir cancelado por el usuario")
	ErrShareUnsupported = errors.New("billing: la plataforma no acepta el contenido")
)

// AdminPredicate decide si un email tiene privilegios de administrador.
// Se inyecta desde la raíz de composición; nunca se cablea en un componente.
type AdminPredicate func(email string) bool
