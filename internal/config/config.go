package config

import (
	"os"

	"github.com/akim-muto/shutdown-task/internal/log"
	"github.com/joho/godotenv"
)

const (
	// Output file, relative to the working directory
	DefaultOutputFile = "args_output.txt"
	// First line of a newly created log file
	DefaultHeader = "=== ログファイル作成 ==="

	OutputFileEnv = "ARGSLOG_OUTPUT"
	HeaderEnv     = "ARGSLOG_HEADER"
	LogLevelEnv   = "LOG_LEVEL"
)

type Config struct {
	OutputFile string
	Header     string
}

// Load reads an optional .env file and then the environment. Unset or empty
// variables fall back to the defaults. The shared logger's level is reset
// from LOG_LEVEL, which .env may have just set.
func Load() Config {
	err := godotenv.Load()
	log.GetLogger().SetLevel(log.ParseLevel(os.Getenv(LogLevelEnv)))
	if err != nil {
		log.GetLogger().Debugf("No .env file loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() Config {
	return Config{
		OutputFile: getenv(OutputFileEnv, DefaultOutputFile),
		Header:     getenv(HeaderEnv, DefaultHeader),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
