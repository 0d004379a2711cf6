package envar

import "os"

const (
	OpenmouseVerbose     = "OPENMOUSE_VERBOSE"
	OpenmouseIntegration = "OPENMOUSE_INTEGRATION"
)

func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}
