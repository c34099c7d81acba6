package services

import "errors"

var (
	// ErrSchemaMismatch means the loaded artifact disagrees with the compiled
	// feature schema. It is only returned at startup.
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrInvalidArtifact means the artifact could not be parsed or failed
	// JSON Schema validation.
	ErrInvalidArtifact = errors.New("invalid model artifact")

	// ErrClassification means a scorer did not produce a valid probability.
	ErrClassification = errors.New("classification failed")

	// ErrUnreadablePDF means the bytes are not a PDF the parser can open.
	ErrUnreadablePDF = errors.New("unreadable PDF")

	// ErrNoText means a document yielded no extractable text.
	ErrNoText = errors.New("no text content found")
)
