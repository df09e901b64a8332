package services

import "errors"

var (
	// ErrJobNotFound is returned by operations that need an existing job.
	ErrJobNotFound = errors.New("job not found")
	// ErrInvalidResume is returned for resume files of an unsupported type.
	ErrInvalidResume = errors.New("resume must be a .pdf, .doc or .docx file")
)
