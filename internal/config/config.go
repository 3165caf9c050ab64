package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/var/run/mysqld/mysqld.sock)
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	SMTPHost  string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort  int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser string `env:"EMAIL_USER,required"`
	EmailPass string `env:"EMAIL_PASS,required"`

	// Unsigned-upload settings handed to the browser client. Images go
	// straight from the browser to the image host; only URLs reach us.
	UploadCloudName string `env:"UPLOAD_CLOUD_NAME" envDefault:"demo"`
	UploadPreset    string `env:"UPLOAD_PRESET" envDefault:"unsigned_preset"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
