package display

import (
	"errors"
	"fmt"
)

// AssetMissingError reports a font or image that could not be loaded.
// Callers fall back to a built-in asset.
type AssetMissingError struct {
	Asset string
	Path  string
	Err   error
}

func (e *AssetMissingError) Error() string {
	msg := fmt.Sprintf("%s asset missing", e.Asset)
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AssetMissingError) Unwrap() error {
	return e.Err
}

// AsAssetMissingError attempts to unwrap an error into an AssetMissingError.
func AsAssetMissingError(err error) (*AssetMissingError, bool) {
	var aErr *AssetMissingError
	if errors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}
