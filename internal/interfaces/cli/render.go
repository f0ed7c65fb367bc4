package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	infrapdf "github.com/kayit-app/kayit-api/internal/infrastructure/pdf"
)

var (
	flagInvoice   string
	flagProfile   string
	flagLogo      string
	flagSignature string
	flagOutDir    string
	flagTemplate  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Genera el PDF descargable de una factura",
	Example: `  # Factura estándar
  kayit render --invoice facture.json --profile profil.json

  # Con logo y firma (plantilla premium si el plan es business)
  kayit render --invoice facture.json --profile profil.json \
      --logo logo.png --signature firma.png -o ./facturas`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagInvoice, "invoice", "", "archivo JSON de la factura (obligatorio)")
	renderCmd.Flags().StringVar(&flagProfile, "profile", "", "archivo JSON del perfil de negocio (obligatorio)")
	renderCmd.Flags().StringVar(&flagLogo, "logo", "", "imagen de logo (png/jpeg)")
	renderCmd.Flags().StringVar(&flagSignature, "signature", "", "imagen de firma/sello (png/jpeg)")
	renderCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "directorio de salida (por defecto OUTPUT_DIR)")
	renderCmd.Flags().StringVar(&flagTemplate, "template", "", "forzar plantilla premium|standard (solo administradores)")
	_ = renderCmd.MarkFlagRequired("invoice")
	_ = renderCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	inv, err := LoadInvoice(flagInvoice)
	if err != nil {
		return err
	}
	prof, err := LoadProfile(flagProfile, flagLogo, flagSignature)
	if err != nil {
		return err
	}

	uc := billing.NewExportUseCase(infrapdf.NewFPDFWriter(), nil, nil, adminPredicate(), log)
	data, name, err := uc.RenderFileAs(cmd.Context(), inv, prof, billing.RenderOptions{
		ForceTemplate: flagTemplate,
	})
	if err != nil {
		return err
	}

	outDir := flagOutDir
	if outDir == "" {
		outDir = cfg.Render.OutputDir
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	log.Info().
		Str("factura", inv.Number).
		Str("archivo", path).
		Int("bytes", len(data)).
		Msg("documento generado")
	cmd.Println(path)
	return nil
}
