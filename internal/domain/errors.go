package domain

import "errors"

// Domain errors.
var (
	ErrElevationRequired = errors.New("administrator privileges required")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNoBaseDir         = errors.New("base directory could not be resolved")
)
