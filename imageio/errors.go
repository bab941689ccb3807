package imageio

import "fmt"

// ImageError reports a failure of the underlying image decoder, encoder or
// file system, keeping the original error reachable through Unwrap.
type ImageError struct {
	Op   string
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// LossyFormatWarning is returned next to a successful save in a format whose
// compression can destroy the hidden bits. It is advisory: the file is still
// written.
type LossyFormatWarning struct {
	Format Format
}

func (w *LossyFormatWarning) String() string {
	return fmt.Sprintf("lossy format detected: %s; steganography works best with lossless formats like PNG", w.Format)
}

func lossyWarning(f Format) *LossyFormatWarning {
	if !f.Lossy() {
		return nil
	}
	return &LossyFormatWarning{Format: f}
}
