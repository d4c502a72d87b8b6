package config

import (
	"fmt"
	"strings"
	"time"

	"ggenius-website/internal/domain"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port  string `env:"PORT" env-default:"8000" env-description:"HTTP listen port"`
	Debug bool   `env:"DEBUG" env-default:"false" env-description:"Verbose logging, access log and error detail"`

	StaticDir    string `env:"STATIC_DIR" env-default:"web/static"`
	TemplatesDir string `env:"TEMPLATES_DIR" env-default:"web/templates"`

	SiteName    string `env:"SITE_NAME" env-default:"GGenius"`
	SiteVersion string `env:"SITE_VERSION" env-default:"2.0.0"`
	BuildDate   string `env:"BUILD_DATE" env-default:"2025-06-01"`

	// Comma separated; "*" allows any origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`

	// Contact form rate limiting. A limit of 0 disables it.
	ContactRateLimit         int `env:"CONTACT_RATE_LIMIT" env-default:"10"`
	ContactRateWindowSeconds int `env:"CONTACT_RATE_WINDOW_SECONDS" env-default:"60"`

	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" env-default:"5"`
}

func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	for i, origin := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}
	if cfg.ContactRateLimit < 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must not be negative, got %d", cfg.ContactRateLimit)
	}
	if cfg.ContactRateWindowSeconds <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_WINDOW_SECONDS must be positive, got %d", cfg.ContactRateWindowSeconds)
	}

	return &cfg, nil
}

func (c *Config) ContactRateWindow() time.Duration {
	return time.Duration(c.ContactRateWindowSeconds) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Site builds the display values for the landing page template. It is
// called once at startup, so CurrentYear is the year the process started:
// a process running across New Year keeps showing the old year.
func (c *Config) Site() domain.SiteConfig {
	return domain.SiteConfig{
		SiteName:        c.SiteName,
		SiteVersion:     c.SiteVersion,
		CurrentYear:     time.Now().Year(),
		MetaDescription: "Revolutionary AI platform for Mobile Legends: Bang Bang esports",
		MetaKeywords:    "Mobile Legends, MLBB, esports, AI, artificial intelligence, tournaments, gaming",
		SocialLinks: domain.SocialLinks{
			Discord:   "https://discord.gg/ggenius",
			Telegram:  "https://t.me/ggenius_official",
			Instagram: "https://instagram.com/ggenius.pro",
			YouTube:   "https://youtube.com/@ggenius",
			Twitter:   "https://twitter.com/ggenius_pro",
			Facebook:  "https://facebook.com/ggenius.pro",
		},
	}
}
