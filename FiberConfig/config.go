package FiberConfig

import (
	"errors"
	"os"
)

// Config holds the process-wide settings read at startup.
type Config struct {
	Port      string
	JWTSecret []byte
}

// LoadConfig reads configuration from the environment. JWT_SECRET has
// no fallback: the original shipped a hard-coded default secret, which
// this rewrite refuses to replicate.
func LoadConfig() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return Config{Port: port, JWTSecret: []byte(secret)}, nil
}
