package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/unchain-tech/unchain-portal/config"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// LevelFor maps the number of -v flags to a log level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// LoadLogging configures the global logger from the zeroconfig file named by
// PORTAL_LOG_CONFIG, or falls back to a console logger on stderr.
func LoadLogging(verbosity int) {
	path := os.Getenv(config.LogConfigEnv)
	if path == "" {
		log.Logger = ConsoleLogger(os.Stderr, LevelFor(verbosity))
		return
	}

	logger, err := Compile(path)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Str("path", path).
			Msg(config.LogConfigEnv + " is not usable, see go.mau.fi/zeroconfig documentation")
		panic(err)
	}
	log.Logger = *logger
}

func ConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Compile reads a zeroconfig YAML file and builds the logger it describes.
func Compile(path string) (*zerolog.Logger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Compile()
}
