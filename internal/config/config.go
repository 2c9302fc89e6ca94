// Package config reads runtime configuration from the environment.
// cmd binaries load .env via godotenv before consulting it.
package config

import "os"

// Get returns the environment value for key, or fallback when unset/empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
