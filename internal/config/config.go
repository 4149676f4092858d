package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable: strings for identifiers and secrets, durations
// for the search tuning knobs.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBUser    string // database username
	DBPass    string // database password (optional)
	DBHost    string // database host address
	DBPort    string // database port number
	DBName    string // database name
	JWTSecret string // secret verifying access tokens issued by the external identity service
	Search    SearchConfig
}

// SearchConfig tunes the itinerary search core.  The connection window
// bounds are deliberately configuration, not constants: route planners
// adjust them per deployment.
type SearchConfig struct {
	MinConnection        time.Duration // minimum time between arrival and onward departure
	MaxConnection        time.Duration // maximum time a passenger is asked to wait
	ConcurrentLegLookups bool          // fan out second-leg lookups per first-leg candidate
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:       must("APP_ENV"),
		Port:      must("APP_PORT"),
		DBUser:    must("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"), // empty allowed
		DBHost:    must("DB_HOST"),
		DBPort:    must("DB_PORT"),
		DBName:    must("DB_NAME"),
		JWTSecret: must("JWT_SECRET"),
		Search: SearchConfig{
			MinConnection:        time.Duration(envInt("SEARCH_MIN_CONNECTION_MIN", 60)) * time.Minute,
			MaxConnection:        time.Duration(envInt("SEARCH_MAX_CONNECTION_MIN", 360)) * time.Minute,
			ConcurrentLegLookups: envBool("SEARCH_CONCURRENT_LEG_LOOKUPS", true),
		},
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
