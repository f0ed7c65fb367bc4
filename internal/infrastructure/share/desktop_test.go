package share_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kayit-app/kayit-api/internal/infrastructure/share"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

// CanShare depende del sistema; solo verificamos que la sonda no falla y es
// estable entre llamadas.
func TestDesktopPlatform_CanShareEstable(t *testing.T) {
	p := share.NewDesktopPlatform(logger.Nop())
	first := p.CanShare()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, p.CanShare())
	}
}
