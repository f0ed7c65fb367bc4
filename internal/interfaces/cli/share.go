package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	infrapdf "github.com/kayit-app/kayit-api/internal/infrastructure/pdf"
	"github.com/kayit-app/kayit-api/internal/infrastructure/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Comparte la factura vía la plataforma, con fallback a descarga",
	Long: `Entrega el PDF a la capacidad de compartir de la plataforma. Si el
usuario cancela, termina sin error y sin descarga; si la plataforma no
soporta compartir, degrada a descarga directa en el directorio de salida.`,
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&flagInvoice, "invoice", "", "archivo JSON de la factura (obligatorio)")
	shareCmd.Flags().StringVar(&flagProfile, "profile", "", "archivo JSON del perfil de negocio (obligatorio)")
	shareCmd.Flags().StringVar(&flagLogo, "logo", "", "imagen de logo (png/jpeg)")
	shareCmd.Flags().StringVar(&flagSignature, "signature", "", "imagen de firma/sello (png/jpeg)")
	shareCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "directorio del fallback (por defecto OUTPUT_DIR)")
	_ = shareCmd.MarkFlagRequired("invoice")
	_ = shareCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, _ []string) error {
	inv, err := LoadInvoice(flagInvoice)
	if err != nil {
		return err
	}
	prof, err := LoadProfile(flagProfile, flagLogo, flagSignature)
	if err != nil {
		return err
	}

	platform := share.NewDesktopPlatform(log)
	uc := billing.NewExportUseCase(infrapdf.NewFPDFWriter(), nil, platform, adminPredicate(), log)

	outcome, err := uc.Share(cmd.Context(), inv, prof)
	if err != nil {
		return err
	}

	switch {
	case outcome.Delivered:
		log.Info().Str("factura", inv.Number).Msg("factura compartida")
	case outcome.FallbackData != nil:
		outDir := flagOutDir
		if outDir == "" {
			outDir = cfg.Render.OutputDir
		}
		path := filepath.Join(outDir, outcome.FallbackName)
		if err := os.WriteFile(path, outcome.FallbackData, 0o644); err != nil {
			return err
		}
		log.Info().Str("archivo", path).Msg("compartir no disponible, documento descargado")
		cmd.Println(path)
	default:
		// Cancelación del usuario: resultado normal, sin descarga.
		log.Info().Str("factura", inv.Number).Msg("compartir cancelado")
	}
	return nil
}
