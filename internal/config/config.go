// Package config reads service settings from the environment. The
// composition roots load .env first, so these getters see both sources.
package config

import (
	"os"
	"strconv"
)

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt parses key as an integer, returning fallback when the variable is
// unset, empty, or not a number.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
