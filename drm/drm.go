// Package drm resolves the DRM system used for license acquisition.
package drm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lineup-cli/lineup/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownSystem is returned for a DRM name that is not supported.
var ErrUnknownSystem = errors.New("unknown drm system")

// System identifies a DRM scheme by its display name and its EME key system.
type System struct {
	Name      string
	KeySystem string
}

func (s System) String() string {
	return s.Name
}

var (
	Widevine  = System{Name: "Widevine", KeySystem: "com.widevine.alpha"}
	PlayReady = System{Name: "PlayReady", KeySystem: "com.microsoft.playready"}
)

// Systems lists every supported DRM system.
func Systems() []System {
	return []System{Widevine, PlayReady}
}

// Parse finds a system by name or key system, case-insensitively.
func Parse(name string) (System, error) {
	name = strings.TrimSpace(name)
	system, ok := lo.Find(Systems(), func(s System) bool {
		return strings.EqualFold(s.Name, name) || strings.EqualFold(s.KeySystem, name)
	})
	if !ok {
		return System{}, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return system, nil
}

// Resolver returns the active DRM system.
type Resolver interface {
	Resolve() (System, error)
}

// Static always resolves to the wrapped system.
type Static System

// Resolve implements Resolver.
func (s Static) Resolve() (System, error) {
	return System(s), nil
}

// Configured resolves the system from the drm.system setting on every call.
type Configured struct{}

// Resolve implements Resolver.
func (Configured) Resolve() (System, error) {
	return Parse(viper.GetString(key.DRMSystem))
}
