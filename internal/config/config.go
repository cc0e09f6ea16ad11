package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"mazepath/internal/logging"
)

// ErrUneven is returned when a pixel dimension is not a multiple of the tile
// size, which would leave a partial tile at the edge.
var ErrUneven = errors.New("dimension is not a multiple of the tile size")

// Config holds the startup configuration. It is fixed for the life of the
// process.
type Config struct {
	Width    int    // Resolution width in pixels
	Height   int    // Resolution height in pixels
	Tile     int    // Side of one cell in pixels
	Seed     int64  // Random seed, 0 or less picks one from the clock
	FPS      int    // Animation ticks per second
	Addr     string // Listen address for the web viewer
	LogLevel string // logrus level name
}

// Defaults returns the built-in configuration, overridden by any MAZE_*
// environment variables. A .env file in the working directory is loaded
// first if present.
func Defaults() Config {
	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return Config{
		Width:    getEnvAsInt("MAZE_WIDTH", 360),
		Height:   getEnvAsInt("MAZE_HEIGHT", 640),
		Tile:     getEnvAsInt("MAZE_TILE", 20),
		Seed:     int64(getEnvAsInt("MAZE_SEED", 0)),
		FPS:      getEnvAsInt("MAZE_FPS", 120),
		Addr:     getEnvWithDefault("MAZE_ADDR", ":8080"),
		LogLevel: getEnvWithDefault("MAZE_LOG_LEVEL", "info"),
	}
}

// Cols returns the number of grid columns.
func (c Config) Cols() int { return c.Width / c.Tile }

// Rows returns the number of grid rows.
func (c Config) Rows() int { return c.Height / c.Tile }

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Width <= 0 {
		result = multierror.Append(result, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.Tile <= 0 {
		result = multierror.Append(result, fmt.Errorf("tile must be positive, got %d", c.Tile))
	} else {
		if c.Width%c.Tile != 0 {
			result = multierror.Append(result, fmt.Errorf("width %d, tile %d: %w", c.Width, c.Tile, ErrUneven))
		}
		if c.Height%c.Tile != 0 {
			result = multierror.Append(result, fmt.Errorf("height %d, tile %d: %w", c.Height, c.Tile, ErrUneven))
		}
	}
	if c.FPS <= 0 {
		result = multierror.Append(result, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	return result.ErrorOrNil()
}

// getEnvAsInt returns the integer value of an environment variable, or the
// default if it is unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logging.Log.Warnf("environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
