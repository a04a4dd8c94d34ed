// Package config loads engine settings from the process environment and an
// optional .env file in the working directory. Explicit CLI flags are bound
// elsewhere and take precedence over anything loaded here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fableshell/internal/logger"
)

// Environment variable names recognized by the engine.
const (
	EnvLogLevel = "FABLE_LOG_LEVEL"
	EnvLogFile  = "FABLE_LOG_FILE"
	EnvTheme    = "FABLE_THEME"
	EnvPrompt   = "FABLE_PROMPT"
	EnvNoColor  = "FABLE_NO_COLOR"
)

// Settings holds the resolved engine configuration.
type Settings struct {
	LogLevel string
	LogFile  string
	Theme    string
	Prompt   string
	NoColor  bool
}

// Load resolves settings with precedence: process environment > .env file >
// defaults. A missing .env file is not an error; a malformed one is logged
// and skipped.
func Load() *Settings {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path, for tests.
func LoadFrom(envFile string) *Settings {
	fileVars := map[string]string{}
	if data, err := os.ReadFile(envFile); err == nil {
		parsed, err := godotenv.Unmarshal(string(data))
		if err != nil {
			logger.Warn("Ignoring malformed env file", "path", envFile, "error", err)
		} else {
			fileVars = parsed
		}
	}

	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v, ok := fileVars[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	noColor, _ := strconv.ParseBool(get(EnvNoColor, "false"))

	return &Settings{
		LogLevel: get(EnvLogLevel, ""),
		LogFile:  get(EnvLogFile, ""),
		Theme:    get(EnvTheme, "default"),
		Prompt:   get(EnvPrompt, "> "),
		NoColor:  noColor,
	}
}
