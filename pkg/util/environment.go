package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// LookupEnvironmentVariable returns the first non-empty value found for the given keys
func LookupEnvironmentVariable(env map[string]string, keys ...string) (string, bool) {
	for _, key := range keys {
		if value := strings.TrimSpace(env[key]); value != "" {
			return value, true
		}
	}

	return "", false
}
