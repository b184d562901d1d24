package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// PrefsPath is the local preference database (session, favorites,
	// blog likes, cached profile).
	PrefsPath string `env:"PREFS_PATH" envDefault:"storefront-prefs.db"`

	API Upstream `envPrefix:"API_"`
}

// Upstream points at the mall backend. BaseURL may be overridden per
// environment; the default is the production origin.
type Upstream struct {
	BaseURL        string `env:"BASE_URL" envDefault:"https://api.mallvn.store"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
