package logger

import "errors"

var (
	// ErrLevelIsEmpty is returned if Log.Level was not defined.
	ErrLevelIsEmpty = errors.New("config log.level can not be empty")

	// ErrFileNameIsEmpty is returned if file logging is enabled without a file name.
	ErrFileNameIsEmpty = errors.New("config log.file.name can not be empty")
)
