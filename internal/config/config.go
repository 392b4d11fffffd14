package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Env  string `env:"APP_ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"8080"`

	DB struct {
		DSN      string `env:"DB_DSN"`
		Host     string `env:"DB_HOST" env-default:"localhost"`
		Port     string `env:"DB_PORT" env-default:"5432"`
		User     string `env:"DB_USER" env-default:"postgres"`
		Password string `env:"DB_PASSWORD" env-default:"postgres"`
		Name     string `env:"DB_NAME" env-default:"fashionstore"`
		SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
	}

	SessionKey string `env:"SESSION_KEY" env-default:"dev-insecure"`
	StorageDir string `env:"STORAGE_DIR" env-default:"uploads"`
	BaseURL    string `env:"BASE_URL" env-default:"http://localhost:8080"`

	// Bootstrap superuser credential, checked before any user lookup.
	AdminUsername string `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" env-default:"admin"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	Seed bool `env:"SEED_DATA" env-default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	return "host=" + c.DB.Host + " user=" + c.DB.User + " password=" + c.DB.Password +
		" dbname=" + c.DB.Name + " port=" + c.DB.Port + " sslmode=" + c.DB.SSLMode
}

func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == ""
}
