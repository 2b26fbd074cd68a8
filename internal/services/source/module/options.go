package module

import (
	"time"

	"scotuspredict/internal/platform/config"
)

// Options controls where source files come from
type Options struct {
	Owner     string
	Repo      string
	Ref       string
	AppPath   string
	ModelPath string
	Token     string
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// FromConfig reads with the CORE_SOURCE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SOURCE_")
	return Options{
		Owner:     c.MayString("OWNER", "Miriam2040"),
		Repo:      c.MayString("REPO", "PredictSupremeCourtDecision"),
		Ref:       c.MayString("REF", "master"),
		AppPath:   c.MayString("APP_PATH", "App.py"),
		ModelPath: c.MayString("MODEL_PATH", "Supreme_Court_Direction_Prediction.ipynb"),
		Token:     c.MayString("TOKEN", ""),
		BaseURL:   c.MayString("BASE_URL", ""),
		Timeout:   c.MayDuration("TIMEOUT", 10*time.Second),
		CacheSize: c.MayInt("CACHE_SIZE", 8),
		CacheTTL:  c.MayDuration("CACHE_TTL", time.Hour),
	}
}
