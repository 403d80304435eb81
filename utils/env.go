package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type EnvValue interface {
	string | int | bool
}

// GetEnv reads an environment variable, falling back to defaultValue when the
// variable is unset or empty. The target type is inferred from the default.
func GetEnv[V EnvValue](name string, defaultValue V) V {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := parseEnv[V](name, raw)
	if err != nil {
		log.Fatalf("could not parse environment variable: %v", err)
	}
	return value
}

// GetRequiredEnv reads an environment variable and exits the process when it
// is unset or empty.
func GetRequiredEnv[V EnvValue](name string) V {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	value, err := parseEnv[V](name, raw)
	if err != nil {
		log.Fatalf("could not parse environment variable: %v", err)
	}
	return value
}

func parseEnv[V EnvValue](name, raw string) (V, error) {
	var out V
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("%s: %q is not an integer", name, raw)
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return out, fmt.Errorf("%s: %q is not a boolean", name, raw)
		}
		*ptr = parsed
	}
	return out, nil
}
