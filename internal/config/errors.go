package config

import "errors"

var (
	// ErrNegativeLength is returned if generator.length is below zero.
	ErrNegativeLength = errors.New("generator.length can not be negative")

	// ErrCountTooSmall is returned if generator.count is below one.
	ErrCountTooSmall = errors.New("generator.count must be at least 1")

	// ErrEmptyLogLevel is returned if log.level was set to an empty value.
	ErrEmptyLogLevel = errors.New("log.level can not be empty")
)
