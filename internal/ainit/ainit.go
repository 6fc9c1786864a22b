package ainit

import (
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lthummus/adminguard/internal/config"
)

const (
	defaultLogMaxSizeMB  = 50
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 30
)

var consoleWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

func init() {
	var revision string
	if info, ok := debug.ReadBuildInfo(); ok {
		for i := range info.Settings {
			if info.Settings[i].Key == "vcs.revision" {
				revision = info.Settings[i].Value
				break
			}
		}
	}

	log.Logger = log.Output(consoleWriter)
	log.Info().
		Str("arch", runtime.GOARCH).
		Str("os", runtime.GOOS).
		Str("go_version", strings.TrimPrefix(runtime.Version(), "go")).
		Str("git_commit", revision).
		Msg("hello world")
	if !config.IsProductionMode() || config.IsDebugLoggingEnabled() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Warn().Str("environment", os.Getenv("ENVIRONMENT")).Msg("starting with debug logging enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Info().Str("environment", os.Getenv("ENVIRONMENT")).Msg("starting in production mode")
	}
}

func Loaded() bool {
	return true
}

// fileWriter returns a rotating writer for the configured log file, or nil if file logging is off.
func fileWriter() io.Writer {
	file := viper.GetString(config.KeyLogFile)
	if file == "" {
		return nil
	}

	maxSize := viper.GetInt(config.KeyLogMaxSizeMB)
	if maxSize == 0 {
		maxSize = defaultLogMaxSizeMB
	}

	maxBackups := viper.GetInt(config.KeyLogMaxBackups)
	if maxBackups == 0 {
		maxBackups = defaultLogMaxBackups
	}

	maxAge := viper.GetInt(config.KeyLogMaxAgeDays)
	if maxAge == 0 {
		maxAge = defaultLogMaxAgeDays
	}

	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

// ConfigureFileLogging adds a JSON log file next to the console output when `log.file` is set. It has to run after the
// config has been read.
func ConfigureFileLogging() {
	config.Lock.RLock()
	w := fileWriter()
	config.Lock.RUnlock()

	if w == nil {
		return
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter, w))
	log.Info().Str("log_file", viper.GetString(config.KeyLogFile)).Msg("logging to file")
}
