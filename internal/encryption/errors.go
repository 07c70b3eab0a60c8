package encryption

import "errors"

var (
	// ErrSameOutput is returned when the derived output path equals the input path.
	ErrSameOutput = errors.New("output path equals input path")
	// ErrEmptyKeyFile is returned when the key file holds no key material.
	ErrEmptyKeyFile = errors.New("key file is empty")
)
