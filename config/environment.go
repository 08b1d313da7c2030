package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment decides how strictly files referenced by the configuration
// are checked.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

var (
	EnvVar       = ENV_PREFIX + "_ENV"
	Environments = []Environment{EnvDevelopment, EnvProduction}
)

// ParseEnvironment maps a PORTAL_ENV value; empty means production.
func ParseEnvironment(value string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case EnvDevelopment:
		return EnvDevelopment, nil
	case EnvProduction, "":
		return EnvProduction, nil
	}
	return "", fmt.Errorf("invalid %s %q (expected one of %v)", EnvVar, value, Environments)
}

func LoadEnvironment() (Environment, error) {
	return ParseEnvironment(os.Getenv(EnvVar))
}
