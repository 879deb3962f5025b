// Package source defines the provider contract and the normalized channel, stream and guide models.
package source

import "context"

// Source defines the capabilities every provider must expose to the host.
type Source interface {
	// Name returns the human readable provider name.
	Name() string

	// ID returns the unique identifier of the provider.
	ID() string

	// Channels returns the channels the current session is entitled to, in catalog order.
	Channels(ctx context.Context) ([]*Channel, error)

	// StreamInfo returns the manifest and license data of a channel.
	// An entitlement refusal is reported as a Denied result, not as an error.
	StreamInfo(ctx context.Context, channelID string) (StreamResult, error)

	// EPG returns the program guide of every channel over the configured window.
	EPG(ctx context.Context) (EPG, error)
}
