package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// RPC holds the discovery parameters for the backend service.  The three
// values fully determine how the gateway locates the backend: host, port
// and the name the service is published under.  All of them default to
// the conventional local setup and can be overridden per deployment.
type RPC struct {
	Host        string // backend host (default loopback)
	Port        string // backend registry port (default 1099)
	ServiceName string // name the service is bound under
}

// ServerConfig holds everything the backend process needs.
type ServerConfig struct {
	Env    string // application environment (e.g. "dev", "prod")
	RPC    RPC    // where to publish the service
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name
}

// GatewayConfig holds everything the HTTP gateway needs.  The gateway
// never touches the database; it only knows how to reach the backend.
type GatewayConfig struct {
	Env  string // application environment
	Port string // HTTP port to listen on
	RPC  RPC    // where to look the backend up
}

// loadRPC reads the discovery parameters with their conventional defaults.
func loadRPC() RPC {
	return RPC{
		Host:        getenv("RPC_HOST", "localhost"),
		Port:        getenv("RPC_PORT", "1099"),
		ServiceName: getenv("RPC_SERVICE_NAME", "CarRentalService"),
	}
}

// LoadServer reads the backend configuration.  Database variables are
// required and missing values cause the program to exit with a fatal
// log message.
func LoadServer() ServerConfig {
	return ServerConfig{
		Env:    getenv("APP_ENV", "dev"),
		RPC:    loadRPC(),
		DBUser: must("DB_USER"),      // database user
		DBPass: os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost: must("DB_HOST"),      // database host
		DBPort: must("DB_PORT"),      // database port
		DBName: must("DB_NAME"),      // database name
	}
}

// LoadGateway reads the gateway configuration.
func LoadGateway() GatewayConfig {
	return GatewayConfig{
		Env:  getenv("APP_ENV", "dev"),
		Port: must("APP_PORT"), // port to bind the HTTP server
		RPC:  loadRPC(),
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

// getenv returns the variable's value or a default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
