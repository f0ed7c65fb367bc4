package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kayit-app/kayit-api/internal/domain"
	"github.com/kayit-app/kayit-api/internal/domain/entity"
	"github.com/kayit-app/kayit-api/internal/domain/layout"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

// ExportUseCase es el adaptador de salida del motor de render: convierte el
// documento ensamblado en un archivo descargable, un handle de vista previa
// o una invocación de compartir con fallback a descarga directa.
type ExportUseCase struct {
	writer   DocumentWriter
	preview  PreviewStore
	platform Platform
	isAdmin  AdminPredicate
	log      *logger.Logger
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
// preview y platform pueden ser nil si la operación no se ofrece.
func NewExportUseCase(
	writer DocumentWriter,
	preview PreviewStore,
	platform Platform,
	isAdmin AdminPredicate,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		writer:   writer,
		preview:  preview,
		platform: platform,
		isAdmin:  isAdmin,
		log:      log,
	}
}

// RenderOptions opciones privilegiadas de render.
type RenderOptions struct {
	// ForceTemplate fuerza la plantilla ("premium" o "standard") ignorando
	// el plan. Solo disponible para administradores.
	ForceTemplate string
}

// FileName deriva el nombre del artefacto descargable a partir del número
// de factura, con un nombre genérico si el número está en blanco.
func FileName(inv *entity.Invoice) string {
	num := strings.TrimSpace(inv.Number)
	if num == "" {
		return "Facture.pdf"
	}
	num = strings.ReplaceAll(num, "/", "-")
	return fmt.Sprintf("Facture-%s.pdf", num)
}

// RenderFile genera el PDF de la factura y devuelve bytes + nombre de
// archivo.
func (uc *ExportUseCase) RenderFile(
	ctx context.Context,
	inv *entity.Invoice,
	prof *entity.BusinessProfile,
) ([]byte, string, error) {
	return uc.RenderFileAs(ctx, inv, prof, RenderOptions{})
}

// RenderFileAs genera el PDF aplicando opciones privilegiadas. Forzar la
// plantilla exige que el email del perfil pase el predicado de administrador.
func (uc *ExportUseCase) RenderFileAs(
	ctx context.Context,
	inv *entity.Invoice,
	prof *entity.BusinessProfile,
	opts RenderOptions,
) ([]byte, string, error) {
	caps := layout.ResolveCapabilities(prof)

	if opts.ForceTemplate != "" {
		if uc.isAdmin == nil || !uc.isAdmin(prof.Email) {
			return nil, "", fmt.Errorf("%w: forzar plantilla requiere privilegios de administrador", domain.ErrForbidden)
		}
		switch opts.ForceTemplate {
		case "premium":
			caps.Premium = true
			caps.Signature = prof.Signature != nil
			caps.ShowLogo = prof.Logo != nil
			caps.PromoFooter = false
		case "standard":
			caps.Premium = false
			caps.Signature = false
		default:
			return nil, "", fmt.Errorf("%w: plantilla desconocida %q", domain.ErrInvalidInput, opts.ForceTemplate)
		}
	}

	doc, err := layout.BuildDocumentWithCapabilities(inv, prof, caps)
	if err != nil {
		return nil, "", fmt.Errorf("export: ensamblar documento: %w", err)
	}

	data, err := uc.writer.Write(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: serializar documento: %w", err)
	}

	return data, FileName(inv), nil
}

// RenderPreview genera el PDF y lo registra como handle de vista previa
// revocable. El llamador es responsable de liberar el handle.
func (uc *ExportUseCase) RenderPreview(
	ctx context.Context,
	inv *entity.Invoice,
	prof *entity.BusinessProfile,
) (*PreviewHandle, error) {
	data, name, err := uc.RenderFile(ctx, inv, prof)
	if err != nil {
		return nil, err
	}
	handle, err := uc.preview.Put(name, data)
	if err != nil {
		return nil, fmt.Errorf("export: registrar vista previa: %w", err)
	}
	return handle, nil
}

// ShareOutcome describe cómo terminó una invocación de compartir.
type ShareOutcome struct {
	// Delivered: la plataforma aceptó el artefacto.
	Delivered bool
	// FallbackData/FallbackName: artefacto para descarga directa cuando la
	// plataforma no soporta compartir. Vacíos si el usuario canceló — una
	// cancelación intencionada no dispara descarga.
	FallbackData []byte
	FallbackName string
}

// Share intenta entregar el documento a la capacidad de compartir de la
// plataforma. Nunca devuelve la cancelación del usuario como error: es un
// resultado normal. Solo un fallo de render/serialización produce error.
func (uc *ExportUseCase) Share(
	ctx context.Context,
	inv *entity.Invoice,
	prof *entity.BusinessProfile,
) (*ShareOutcome, error) {
	data, name, err := uc.RenderFile(ctx, inv, prof)
	if err != nil {
		return nil, err
	}

	req := ShareRequest{
		FileName: name,
		Title:    strings.TrimSpace("Facture " + inv.Number),
		Caption:  "Voici la facture de " + inv.ClientName,
		Data:     data,
	}

	if uc.platform == nil || !uc.platform.CanShare() {
		return &ShareOutcome{FallbackData: data, FallbackName: name}, nil
	}

	switch err := uc.platform.Share(ctx, req); {
	case err == nil:
		return &ShareOutcome{Delivered: true}, nil
	case errors.Is(err, ErrShareCancelled):
		uc.log.Debug().Str("factura", inv.Number).Msg("compartir cancelado por el usuario")
		return &ShareOutcome{}, nil
	default:
		// Carga no soportada o entrega fallida: degradar a descarga directa.
		uc.log.Warn().Err(err).Str("factura", inv.Number).Msg("compartir no disponible, fallback a descarga")
		return &ShareOutcome{FallbackData: data, FallbackName: name}, nil
	}
}
