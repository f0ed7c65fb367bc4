// Package share implementa la capacidad de compartir dependiente de
// plataforma. En escritorio la entrega es el visor del sistema (xdg-open /
// open); si no existe ninguno, la plataforma no soporta compartir y el caso
// de uso degrada a descarga directa.
package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

// DesktopPlatform implementa billing.Platform sobre el opener del sistema.
type DesktopPlatform struct {
	log *logger.Logger
	dir string // directorio temporal donde se materializa el artefacto
}

// NewDesktopPlatform construye la plataforma de escritorio.
func NewDesktopPlatform(log *logger.Logger) *DesktopPlatform {
	return &DesktopPlatform{log: log, dir: os.TempDir()}
}

// CanShare indica si hay un opener disponible en el sistema.
func (p *DesktopPlatform) CanShare() bool { return p.openerPath() != "" }

func (p *DesktopPlatform) openerPath() string {
	for _, candidate := range []string{"xdg-open", "open"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}

// Share materializa el artefacto en disco y lo entrega al opener. La
// cancelación del contexto (usuario que aborta la espera) se traduce a
// ErrShareCancelled; cualquier otro fallo del opener a ErrShareUnsupported
// para que el caso de uso haga fallback a descarga.
func (p *DesktopPlatform) Share(ctx context.Context, req billing.ShareRequest) error {
	opener := p.openerPath()
	if opener == "" {
		return billing.ErrShareUnsupported
	}

	path := filepath.Join(p.dir, req.FileName)
	if err := os.WriteFile(path, req.Data, 0o644); err != nil {
		return fmt.Errorf("%w: escribir artefacto temporal: %v", billing.ErrShareUnsupported, err)
	}

	p.log.Debug().Str("título", req.Title).Str("archivo", path).Msg("entregando artefacto a la plataforma")

	cmd := exec.CommandContext(ctx, opener, path)
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return billing.ErrShareCancelled
		}
		return fmt.Errorf("%w: %v", billing.ErrShareUnsupported, err)
	}
	return nil
}
