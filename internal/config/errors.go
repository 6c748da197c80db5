package config

import "errors"

var (
	ErrInvalidServerConfigs  = errors.New("invalid server configs")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
	ErrInvalidAuthConfigs    = errors.New("invalid auth configs")
)
