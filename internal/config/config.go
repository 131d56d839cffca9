package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// RoomTier holds the seeding parameters for one room tier. Every
// tier has a fixed per-night price, a guest capacity and the number
// of rooms to create at startup.
type RoomTier struct {
	Price    float64 // per-night price for every room of this tier
	Capacity int     // guests a room of this tier sleeps
	Quantity int     // rooms of this tier to seed
}

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs, RoomTier structs for the seeded inventory.
type Config struct {
	Env            string   // application environment (e.g. "dev", "prod")
	Port           string   // HTTP port to listen on
	DBUser         string   // database username
	DBPass         string   // database password (optional)
	DBHost         string   // database host address
	DBPort         string   // database port number
	DBName         string   // database name
	JWTSecret      string   // secret used to sign JWTs
	AccessTTLHours int      // access token time-to-live in hours
	BcryptCost     int      // bcrypt cost for password hashing
	Standard       RoomTier // standard tier seeding parameters
	Superior       RoomTier // superior tier seeding parameters
	Suite          RoomTier // suite tier seeding parameters
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. Every room tier
// variable is required: starting with an incomplete inventory definition
// is a configuration error, not something to paper over with defaults.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),                   // environment (dev/test/prod)
		Port:           must("APP_PORT"),                  // port to bind the HTTP server
		DBUser:         must("DB_USER"),                   // database user
		DBPass:         os.Getenv("DB_PASS"),              // database password (empty allowed)
		DBHost:         must("DB_HOST"),                   // database host
		DBPort:         must("DB_PORT"),                   // database port
		DBName:         must("DB_NAME"),                   // database name
		JWTSecret:      must("JWT_SECRET"),                // secret used for signing JWTs
		AccessTTLHours: mustInt("ACCESS_TOKEN_TTL_HOURS"), // TTL for access tokens in hours
		BcryptCost:     mustInt("BCRYPT_COST"),            // bcrypt cost factor
		Standard: RoomTier{
			Price:    mustFloat("ROOM_STANDARD_PRICE"),
			Capacity: mustInt("ROOM_STANDARD_CAPACITY"),
			Quantity: mustInt("ROOM_STANDARD_QUANTITY"),
		},
		Superior: RoomTier{
			Price:    mustFloat("ROOM_SUPERIOR_PRICE"),
			Capacity: mustInt("ROOM_SUPERIOR_CAPACITY"),
			Quantity: mustInt("ROOM_SUPERIOR_QUANTITY"),
		},
		Suite: RoomTier{
			Price:    mustFloat("ROOM_SUITE_PRICE"),
			Capacity: mustInt("ROOM_SUITE_CAPACITY"),
			Quantity: mustInt("ROOM_SUITE_QUANTITY"),
		},
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// mustFloat is like must() but converts the retrieved string into a float.
// If conversion fails, the application logs a fatal error and exits.
func mustFloat(key string) float64 {
	s := must(key)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, s)
	}
	return f
}
