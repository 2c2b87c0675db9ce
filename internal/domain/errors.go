package domain

import "errors"

// Domain errors.
var (
	ErrBundleNotFound  = errors.New("resource bundle not found")
	ErrMalformedBundle = errors.New("resource bundle is malformed")
	ErrMissingResource = errors.New("missing resource")
	ErrUnknownSource   = errors.New("unknown bundle source")
)

var codes = map[error]string{
	ErrBundleNotFound:  "bundle_not_found",
	ErrMalformedBundle: "malformed_bundle",
	ErrMissingResource: "missing_resource",
	ErrUnknownSource:   "unknown_source",
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for target, code := range codes {
		if errors.Is(err, target) {
			return code
		}
	}
	return ""
}
