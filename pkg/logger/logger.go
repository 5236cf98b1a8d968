package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger configuration.
type Config struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_in_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Targets    string `yaml:"targets"` // "console", "file" or "console,file"
}

var globalLogger zerolog.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

// InitGlobalLogger replaces the default console logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, 2)

	if strings.Contains(cfg.Targets, "console") || cfg.Targets == "" {
		writers = append(writers, zerolog.NewConsoleWriter())
	}

	if strings.Contains(cfg.Targets, "file") && cfg.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyValues ...interface{}) {
	globalLogger.Debug().Fields(keyValues).Msg(msg)
}

func Info(msg string, keyValues ...interface{}) {
	globalLogger.Info().Fields(keyValues).Msg(msg)
}

func Warn(msg string, keyValues ...interface{}) {
	globalLogger.Warn().Fields(keyValues).Msg(msg)
}

func Error(msg string, keyValues ...interface{}) {
	globalLogger.Error().Fields(keyValues).Msg(msg)
}

func Fatal(msg string, keyValues ...interface{}) {
	globalLogger.Fatal().Fields(keyValues).Msg(msg)
}
