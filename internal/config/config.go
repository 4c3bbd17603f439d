package config

type Config struct {
	Telegram         Telegram
	HTTP             HTTP
	PostgresEndpoint string `env:"POSTGRES_ENDPOINT"`
}

type Telegram struct {
	Timeout int `env:"TIMEOUT" envDefault:"60"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"3000"`
}
