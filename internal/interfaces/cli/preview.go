package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kayit-app/kayit-api/internal/application/billing"
	infrapdf "github.com/kayit-app/kayit-api/internal/infrastructure/pdf"
	"github.com/kayit-app/kayit-api/internal/infrastructure/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Sirve la factura como vista previa en memoria",
	Long: `Genera el PDF, lo registra bajo un handle revocable y lo sirve en un
servidor local. El handle se revoca al cerrar (Ctrl+C): el recurso se libera
exactamente una vez, como al cerrar la superficie de vista previa.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagInvoice, "invoice", "", "archivo JSON de la factura (obligatorio)")
	previewCmd.Flags().StringVar(&flagProfile, "profile", "", "archivo JSON del perfil de negocio (obligatorio)")
	previewCmd.Flags().StringVar(&flagLogo, "logo", "", "imagen de logo (png/jpeg)")
	previewCmd.Flags().StringVar(&flagSignature, "signature", "", "imagen de firma/sello (png/jpeg)")
	_ = previewCmd.MarkFlagRequired("invoice")
	_ = previewCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	inv, err := LoadInvoice(flagInvoice)
	if err != nil {
		return err
	}
	prof, err := LoadProfile(flagProfile, flagLogo, flagSignature)
	if err != nil {
		return err
	}

	srv := preview.NewServer(cfg.Preview.Addr(), log)
	uc := billing.NewExportUseCase(infrapdf.NewFPDFWriter(), srv, nil, adminPredicate(), log)

	handle, err := uc.RenderPreview(cmd.Context(), inv, prof)
	if err != nil {
		return err
	}
	defer handle.Release()

	go func() {
		if err := srv.Listen(); err != nil {
			log.Error().Err(err).Msg("servidor de vista previa finalizado")
		}
	}()

	log.Info().Str("url", handle.URL).Msg("vista previa disponible")
	cmd.Println(handle.URL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("cerrando vista previa...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
