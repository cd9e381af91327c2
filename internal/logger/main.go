// Package logger sets up the global zerolog logger.
//
// Generated passwords are never handed to the logger; callers log lengths,
// counts and scores only.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init the zerolog logger.
// Depending on the config it enables the console writer, the file writer, both or none.
func Init(cfg Log) error {
	if cfg.Level == "" {
		return ErrLevelIsEmpty
	}

	logLevel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.Level))
	}

	var (
		writers []io.Writer
		stack   bool
	)

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg, os.Stderr))
	}

	if cfg.File.Enabled {
		w, err := newRollingFile(cfg.File)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}

	mw := zerolog.MultiLevelWriter(writers...)

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = zerolog.New(mw).With().Timestamp().Stack().Logger()
	case cfg.ReportCaller:
		log.Logger = zerolog.New(mw).With().Timestamp().Caller().Logger()
	default:
		log.Logger = zerolog.New(mw).With().Timestamp().Logger()
	}

	return nil
}

// NewConsoleWriter returns a writer for out, pretty printed if configured.
func NewConsoleWriter(cfg Log, out io.Writer) io.Writer {
	if !cfg.Console.Pretty {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    false,
		TimeFormat: zerolog.TimeFieldFormat,
	}
}

// newRollingFile uses lumberjack to create a size-rotated log file.
func newRollingFile(cfg File) (io.Writer, error) {
	if cfg.Name == "" {
		return nil, ErrFileNameIsEmpty
	}

	if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint: mnd
		return nil, errors.Wrapf(err, "can't create log directory %s", cfg.Path)
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.Path, cfg.Name),
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  false,
		Compress:   false,
	}, nil
}
