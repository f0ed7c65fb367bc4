package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// variables de entorno y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Render  RenderConfig
	Preview PreviewConfig
	Admin   AdminConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// RenderConfig opciones de generación de documentos.
type RenderConfig struct {
	OutputDir string // directorio destino de los PDF descargables
}

// PreviewConfig servidor de vista previa en memoria.
type PreviewConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c PreviewConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AdminConfig lista blanca de administradores. Sustituye al email
// privilegiado cableado en la aplicación original: el predicado se construye
// en la raíz de composición a partir de esta lista.
type AdminConfig struct {
	Emails []string
}

// IsAdmin indica si un email está en la lista blanca (comparación sin
// distinción de mayúsculas).
func (c AdminConfig) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.Emails {
		if strings.ToLower(strings.TrimSpace(e)) == email {
			return true
		}
	}
	return false
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env / config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "kayit"),
		},
		Render: RenderConfig{
			OutputDir: getString(v, "OUTPUT_DIR", "."),
		},
		Preview: PreviewConfig{
			Host: getString(v, "PREVIEW_HOST", "127.0.0.1"),
			Port: getInt(v, "PREVIEW_PORT", 7420),
		},
		Admin: AdminConfig{
			Emails: splitList(getString(v, "ADMIN_EMAILS", "")),
		},
	}

	return cfg, nil
}

// splitList parte una lista separada por comas, descartando vacíos.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
