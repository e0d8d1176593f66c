package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"shrinker image resize"`
	Port    string `env:"PORT" envDefault:"8080"`

	RateLimitMaxRequests   int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitDurationInSec int `env:"RATE_LIMIT_DURATION_IN_SEC" envDefault:"5"`

	// Upload cap for the multipart endpoint, in bytes.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"104857600"`

	// Quality search knobs for size-constrained resizing.
	QualityStart int `env:"QUALITY_START" envDefault:"90"`
	QualityStep  int `env:"QUALITY_STEP" envDefault:"10"`
	QualityFloor int `env:"QUALITY_FLOOR" envDefault:"10"`

	S3Region    string `env:"S3_REGION"`
	S3Bucket    string `env:"S3_BUCKET,required"`
	S3AccessKey string `env:"S3_ACCESS_KEY,required"`
	S3SecretKey string `env:"S3_SECRET_KEY,required"`
	S3Endpoint  string `env:"S3_ENDPOINT,required"`
}

func (c *Config) RateLimitDuration() time.Duration {
	return time.Duration(c.RateLimitDurationInSec) * time.Second
}

func New() *Config {
	conf := &Config{}

	if err := env.Parse(conf); err != nil {
		slog.Error(err.Error())

		panic("Failed to parse config")
	}

	return conf
}
