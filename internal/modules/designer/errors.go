package designer

import "errors"

var (
	ErrInvalidColor    = errors.New("designer: invalid garment color")
	ErrFileTooLarge    = errors.New("designer: image exceeds the size limit")
	ErrUnsupportedType = errors.New("designer: unsupported file type")
	ErrDecodeFailed    = errors.New("designer: image could not be decoded")
	ErrEmptyDesign     = errors.New("designer: scene has no layer to export")
	ErrUploadFailed    = errors.New("designer: design upload failed")

	// ErrSuperseded means the scene was reinitialized while an async step
	// (decode, upload) was in flight; the stale result was discarded.
	ErrSuperseded = errors.New("designer: scene changed while the request was in flight")
)
