package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"marketplace.db"`

	Auth       Auth       `envPrefix:"AUTH_"`
	Storefront Storefront `envPrefix:"STOREFRONT_"`
	Media      Media      `envPrefix:"MEDIA_"`
}

// Auth configures verification of bearer tokens issued at sign-in.
type Auth struct {
	TokenSecret string `env:"TOKEN_SECRET"`
}

// Storefront configures the external e-commerce API that orders and
// categories are pulled from.
type Storefront struct {
	BaseAPIURL string `env:"BASE_API_URL" envDefault:"https://api.jumpseller.com/v1"`
	Login      string `env:"LOGIN"`
	AuthToken  string `env:"AUTH_TOKEN"`
}

// Media configures the image-hosting service used for direct uploads and
// client-side upload signing.
type Media struct {
	BaseAPIURL string `env:"BASE_API_URL" envDefault:"https://api.cloudinary.com/v1_1"`
	CloudName  string `env:"CLOUD_NAME"`
	APIKey     string `env:"API_KEY"`
	APISecret  string `env:"API_SECRET"`
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
