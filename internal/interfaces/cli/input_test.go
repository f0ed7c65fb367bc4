package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayit-app/kayit-api/internal/domain/entity"
)

func escribirArchivo(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInvoice(t *testing.T) {
	path := escribirArchivo(t, "facture.json", `{
		"number": "2026-042",
		"clientName": "Librairie Fall",
		"date": "2026-08-20",
		"status": "pending",
		"currency": "XOF",
		"items": [
			{"description": "Impression catalogue", "quantity": "3", "price": "25000"}
		],
		"total": "75000"
	}`)

	inv, err := LoadInvoice(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-042", inv.Number)
	assert.Equal(t, entity.StatusPending, inv.Status)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].LineTotal().Equal(decimal.NewFromInt(75000)))
	assert.True(t, inv.Total.Equal(inv.ItemsTotal()))
}

func TestLoadInvoice_JSONInvalido(t *testing.T) {
	path := escribirArchivo(t, "facture.json", "{pas du json")
	_, err := LoadInvoice(path)
	assert.ErrorContains(t, err, "parsear factura")
}

func TestLoadInvoice_ArchivoInexistente(t *testing.T) {
	_, err := LoadInvoice(filepath.Join(t.TempDir(), "nada.json"))
	assert.ErrorContains(t, err, "leer factura")
}

func TestLoadProfile_ConLogo(t *testing.T) {
	profPath := escribirArchivo(t, "profil.json", `{
		"displayName": "Studio Kane",
		"email": "studio@kane.sn",
		"plan": "business",
		"brandColor": "#7c3aed"
	}`)

	// Logo PNG real de 6x3 para que DecodeConfig resuelva las dimensiones.
	img := image.NewRGBA(image.Rect(0, 0, 6, 3))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	logoPath := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(logoPath, buf.Bytes(), 0o644))

	prof, err := LoadProfile(profPath, logoPath, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PlanBusiness, prof.Plan)
	require.NotNil(t, prof.Logo)
	assert.Equal(t, "png", prof.Logo.Format)
	assert.Equal(t, 6, prof.Logo.Width)
	assert.Equal(t, 3, prof.Logo.Height)
	assert.Nil(t, prof.Signature)
}

func TestLoadProfile_ImagenCorrupta(t *testing.T) {
	profPath := escribirArchivo(t, "profil.json", `{"displayName": "X", "plan": "pro"}`)
	logoPath := escribirArchivo(t, "logo.png", "ceci n'est pas une image")

	_, err := LoadProfile(profPath, logoPath, "")
	assert.ErrorContains(t, err, "logo")
}
