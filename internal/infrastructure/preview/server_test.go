package preview_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayit-app/kayit-api/internal/infrastructure/preview"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

func nuevoServidor() *preview.Server {
	return preview.NewServer("127.0.0.1:7420", logger.Nop())
}

func TestServer_PutYGet(t *testing.T) {
	srv := nuevoServidor()
	contenido := []byte("%PDF-1.4 contenido de prueba")

	handle, err := srv.Put("Facture-2026-001.pdf", contenido)
	require.NoError(t, err)
	assert.NotEmpty(t, handle.ID)
	assert.Equal(t, "http://127.0.0.1:7420/preview/"+handle.ID, handle.URL)
	assert.Equal(t, 1, srv.Len())

	req := httptest.NewRequest(http.MethodGet, "/preview/"+handle.ID, nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inline")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Facture-2026-001.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, contenido, body)
}

// TestServer_ReleaseRevoca: tras liberar el handle, el artefacto desaparece
// y las peticiones posteriores reciben 404 — como un blob URL revocado.
func TestServer_ReleaseRevoca(t *testing.T) {
	srv := nuevoServidor()

	handle, err := srv.Put("Facture.pdf", []byte("datos"))
	require.NoError(t, err)

	handle.Release()
	assert.Zero(t, srv.Len())

	req := httptest.NewRequest(http.MethodGet, "/preview/"+handle.ID, nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ReleaseIdempotente(t *testing.T) {
	srv := nuevoServidor()

	h1, err := srv.Put("a.pdf", []byte("a"))
	require.NoError(t, err)
	_, err = srv.Put("b.pdf", []byte("b"))
	require.NoError(t, err)

	h1.Release()
	h1.Release()
	h1.Release()
	assert.Equal(t, 1, srv.Len(), "liberar dos veces no toca los demás artefactos")
}

func TestServer_HandleDesconocido(t *testing.T) {
	srv := nuevoServidor()

	req := httptest.NewRequest(http.MethodGet, "/preview/no-existe", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestServer_HandlesIndependientes: cada Put recibe un id propio; dos
// artefactos idénticos no comparten handle.
func TestServer_HandlesIndependientes(t *testing.T) {
	srv := nuevoServidor()

	h1, err := srv.Put("x.pdf", []byte("mismo contenido"))
	require.NoError(t, err)
	h2, err := srv.Put("x.pdf", []byte("mismo contenido"))
	require.NoError(t, err)

	assert.NotEqual(t, h1.ID, h2.ID)
	assert.Equal(t, 2, srv.Len())
}
