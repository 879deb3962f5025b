package source

import "errors"

// ErrNoLicenseServer is returned when the stream metadata has no license server for the active DRM system.
var ErrNoLicenseServer = errors.New("no license server found")
