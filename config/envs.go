package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string  // Host IP for the server
	RESTPort        int     // Port for the REST API
	GinMode         string  // Mode for the Gin framework (e.g., release, debug, test)
	GridSize        int     // Default maze dimension (cells per side)
	ObstacleRate    float64 // Default fraction of cells carved into obstacles
	AgentCount      int     // Default number of agents per simulation
	TickMillis      int     // Simulation tick period in milliseconds
	DriftEveryTicks int     // Obstacle drift cadence, in ticks
	RandSeed        int64   // Seed for maze generation; 0 means time-based
	MaxSessions     int     // Upper bound on concurrently running simulations
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		GridSize:        getEnvIntWithDefault("GRID_SIZE", 10),
		ObstacleRate:    getEnvFloatWithDefault("OBSTACLE_RATE", 0.3),
		AgentCount:      getEnvIntWithDefault("AGENT_COUNT", 3),
		TickMillis:      getEnvIntWithDefault("TICK_MILLIS", 200),
		DriftEveryTicks: getEnvIntWithDefault("DRIFT_EVERY_TICKS", 50),
		RandSeed:        int64(getEnvIntWithDefault("RAND_SEED", 0)),
		MaxSessions:     getEnvIntWithDefault("MAX_SESSIONS", 16),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault retrieves the value of an environment variable as an integer
// or returns a default value if not set or unparsable.
func getEnvIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not an integer, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvFloatWithDefault retrieves the value of an environment variable as a float
// or returns a default value if not set or unparsable.
func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not a number, using default %v", key, defaultValue)
		return defaultValue
	}
	return value
}
