// Package preview sirve artefactos PDF en memoria bajo handles revocables:
// el análogo de los blob URL del navegador. Cada Put registra los bytes con
// un id aleatorio; Release los revoca y las peticiones posteriores reciben
// 404. Nada se persiste.
package preview

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

type blob struct {
	name string
	data []byte
}

// Server implementa billing.PreviewStore sobre un servidor Fiber en proceso.
type Server struct {
	app  *fiber.App
	log  *logger.Logger
	addr string

	mu    sync.Mutex
	blobs map[string]blob
}

// NewServer construye el servidor de vista previa (no escucha todavía).
func NewServer(addr string, log *logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "kayit-preview",
		DisableStartupMessage: true,
	})

	s := &Server{
		app:   app,
		log:   log,
		addr:  addr,
		blobs: make(map[string]blob),
	}
	app.Get("/preview/:id", s.handleGet)
	return s
}

func (s *Server) handleGet(c *fiber.Ctx) error {
	s.mu.Lock()
	b, ok := s.blobs[c.Params("id")]
	s.mu.Unlock()

	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "vista previa no disponible")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", b.name))
	return c.Send(b.data)
}

// Put registra el artefacto y devuelve su handle revocable.
func (s *Server) Put(name string, data []byte) (*billing.PreviewHandle, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.blobs[id] = blob{name: name, data: data}
	s.mu.Unlock()

	url := fmt.Sprintf("http://%s/preview/%s", s.addr, id)
	release := func() {
		s.mu.Lock()
		delete(s.blobs, id)
		s.mu.Unlock()
		s.log.Debug().Str("id", id).Msg("vista previa revocada")
	}
	return billing.NewPreviewHandle(id, url, release), nil
}

// Len devuelve cuántos artefactos siguen registrados.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

// App expone la aplicación Fiber (tests).
func (s *Server) App() *fiber.App { return s.app }

// Listen bloquea sirviendo vistas previas hasta Shutdown.
func (s *Server) Listen() error { return s.app.Listen(s.addr) }

// Shutdown apaga el servidor respetando el contexto.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
