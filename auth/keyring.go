// Package auth persists provider session cookies in the system keyring.
//
// Sessions are established outside lineup (for example by logging in with a browser) and
// only replayed here.
package auth

import (
	"errors"

	"github.com/lineup-cli/lineup/constant"
	"github.com/samber/mo"
	"github.com/zalando/go-keyring"
)

// service is the keyring service name; the provider id is used as the account.
const service = constant.Lineup + "-session"

// SetSession stores the Cookie header value for a provider.
func SetSession(providerID, cookie string) error {
	return keyring.Set(service, providerID, cookie)
}

// GetSession returns the stored Cookie header value for a provider, if any.
func GetSession(providerID string) (mo.Option[string], error) {
	cookie, err := keyring.Get(service, providerID)
	if errors.Is(err, keyring.ErrNotFound) {
		return mo.None[string](), nil
	}
	if err != nil {
		return mo.None[string](), err
	}
	return mo.Some(cookie), nil
}

// DeleteSession removes the stored session of a provider.
func DeleteSession(providerID string) error {
	err := keyring.Delete(service, providerID)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
