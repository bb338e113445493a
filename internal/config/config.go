package config

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string
	DBPath        string
	ExportDir     string
	SessionSecret string

	AdminUsername string
	AdminPassword string

	TemplatesGlob string
	StaticDir     string
	// откуда страницы графиков грузят echarts.min.js; для офлайн-установки
	// положить файл в web/static/echarts/ и указать /static/echarts/
	ChartAssetsHost string

	LogLevel string
	LogFile  string

	// выставляется, если SESSION_SECRET не задан и ключ сгенерирован на старте
	GeneratedSecret bool
}

func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_PATH", "database.db")
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("TEMPLATES_GLOB", "web/templates/*.html")
	v.SetDefault("STATIC_DIR", "web/static")
	v.SetDefault("CHART_ASSETS_HOST", "https://go-echarts.github.io/go-echarts-assets/assets/")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	cfg := &Config{
		ServerPort:    v.GetString("SERVER_PORT"),
		DBPath:        v.GetString("DB_PATH"),
		ExportDir:     v.GetString("EXPORT_DIR"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		TemplatesGlob: v.GetString("TEMPLATES_GLOB"),
		StaticDir:     v.GetString("STATIC_DIR"),

		ChartAssetsHost: v.GetString("CHART_ASSETS_HOST"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFile:       v.GetString("LOG_FILE"),
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
		cfg.GeneratedSecret = true
	}

	return cfg
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("config: cannot read random bytes: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
