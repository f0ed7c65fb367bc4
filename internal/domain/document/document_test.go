package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kayit-app/kayit-api/internal/domain/document"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want document.Color
		ok   bool
	}{
		{"#2563eb", document.Color{R: 37, G: 99, B: 235}, true},
		{"#FF0000", document.Color{R: 255, G: 0, B: 0}, true},
		{"#000000", document.Color{}, true},
		{"2563eb", document.Color{}, false},  // falta el #
		{"#25e", document.Color{}, false},    // forma corta no soportada
		{"#zzzzzz", document.Color{}, false}, // dígitos inválidos
		{"", document.Color{}, false},
	}
	for _, tc := range cases {
		c, ok := document.ParseHex(tc.in)
		assert.Equal(t, tc.ok, ok, "validez de %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, c, "color de %q", tc.in)
		}
	}
}

func TestDocument_AddPage(t *testing.T) {
	d := &document.Document{Width: 210, Height: 297}
	p1 := d.AddPage()
	p1.Add(document.Text{Content: "hola"})
	d.AddPage()

	assert.Equal(t, 2, d.PageCount())
	assert.Len(t, d.Pages[0].Prims, 1)
	assert.Empty(t, d.Pages[1].Prims)
}
