package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayit-app/kayit-api/internal/domain/document"
	"github.com/kayit-app/kayit-api/internal/domain/layout"
)

func TestPager_PrimeraPaginaAbierta(t *testing.T) {
	p := layout.NewPager(0)
	assert.Equal(t, 1, p.PageCount(), "el documento nace con una página abierta")
	assert.Equal(t, layout.MarginTop, p.Y())
	assert.Equal(t, layout.PageHeight-layout.MarginBottom, p.Bottom())
}

func TestPager_BandaReservada(t *testing.T) {
	p := layout.NewPager(50)
	assert.Equal(t, 237.0, p.Bottom(), "área fluida = 297 - 10 - 50")
}

func TestPager_AdvancePagina(t *testing.T) {
	p := layout.NewPager(0)
	p.Advance(200)
	require.Equal(t, 1, p.PageCount())
	assert.Equal(t, 220.0, p.Y())

	// Superar el límite inferior cierra la página y resetea el cursor.
	p.Advance(100)
	assert.Equal(t, 2, p.PageCount())
	assert.Equal(t, layout.MarginTop, p.Y())
}

// TestPager_EnsureSpace: el chequeo pagina ANTES de emitir, de modo que un
// bloque indivisible nunca queda partido entre dos páginas.
func TestPager_EnsureSpace(t *testing.T) {
	p := layout.NewPager(50)
	p.SetY(230)

	assert.True(t, p.EnsureSpace(20), "20mm no caben entre 230 y 237: debe paginar")
	assert.Equal(t, 2, p.PageCount())
	assert.Equal(t, layout.MarginTop, p.Y(), "el cursor queda listo para emitir arriba")

	assert.False(t, p.EnsureSpace(20), "con página fresca sobra sitio")
	assert.Equal(t, 2, p.PageCount())
}

func TestPager_EmitSobrePaginaActual(t *testing.T) {
	p := layout.NewPager(0)
	p.Emit(document.Text{Content: "page 1"})
	p.BreakPage()
	p.Emit(document.Text{Content: "page 2"}, document.Line{})

	doc := p.Finalize()
	require.Equal(t, 2, doc.PageCount())
	assert.Len(t, doc.Pages[0].Prims, 1)
	assert.Len(t, doc.Pages[1].Prims, 2)
}
