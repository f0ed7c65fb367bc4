package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"

	// Decodificadores registrados para extraer dimensiones intrínsecas.
	_ "image/jpeg"
	_ "image/png"

	"github.com/kayit-app/kayit-api/internal/domain/entity"
)

// LoadInvoice lee la factura desde un archivo JSON. Llega ya validada por la
// capa CRUD; aquí no se re-valida.
func LoadInvoice(path string) (*entity.Invoice, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer factura: %w", err)
	}
	var inv entity.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("parsear factura %s: %w", path, err)
	}
	return &inv, nil
}

// LoadProfile lee el perfil de negocio y, si se indican, el logo y la firma
// con sus dimensiones intrínsecas ya resueltas.
func LoadProfile(path, logoPath, signaturePath string) (*entity.BusinessProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer perfil: %w", err)
	}
	var prof entity.BusinessProfile
	if err := json.Unmarshal(raw, &prof); err != nil {
		return nil, fmt.Errorf("parsear perfil %s: %w", path, err)
	}

	if logoPath != "" {
		if prof.Logo, err = loadImageRef(logoPath); err != nil {
			return nil, fmt.Errorf("logo: %w", err)
		}
	}
	if signaturePath != "" {
		if prof.Signature, err = loadImageRef(signaturePath); err != nil {
			return nil, fmt.Errorf("firma: %w", err)
		}
	}
	return &prof, nil
}

// loadImageRef decodifica lo justo de la imagen para conocer formato y
// dimensiones intrínsecas; los bytes viajan intactos hasta el PDF.
func loadImageRef(path string) (*entity.ImageRef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", path, err)
	}
	return &entity.ImageRef{
		Data:   raw,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
