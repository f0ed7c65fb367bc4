// Package cli expone el motor de render como herramienta de línea de
// comandos: render (archivo descargable), preview (handle revocable servido
// en memoria) y share (entrega a la plataforma con fallback a descarga).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	"github.com/kayit-app/kayit-api/pkg/config"
	"github.com/kayit-app/kayit-api/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kayit",
	Short: "Kayit — generación de documentos de factura",
	Long: `Kayit genera la representación imprimible (PDF) de una factura a partir
de su JSON y del perfil de negocio del emisor: plantilla estándar o premium
según el plan, tabla paginada, tema de marca y sello de firma.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
		return nil
	},
}

// Execute ejecuta la CLI. El único fallo visible para el usuario final es
// "génération du document échouée"; el detalle va al log.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Error().Err(err).Msg("comando fallido")
		}
		fmt.Fprintln(os.Stderr, "génération du document échouée :", err)
		os.Exit(1)
	}
}

// adminPredicate construye el predicado de autorización desde la lista
// blanca de configuración. Es la única fuente de privilegio: ningún
// componente cablea emails.
func adminPredicate() billing.AdminPredicate {
	admin := cfg.Admin
	return func(email string) bool { return admin.IsAdmin(email) }
}
