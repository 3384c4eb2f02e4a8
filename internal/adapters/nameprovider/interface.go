package nameprovider

import (
	"context"
)

type NameProvider interface {
	// Returns the display name of the player with the given uuid
	//
	// Returns domain.ErrNameNotFound if the provider has no name for the player.
	// Returns domain.ErrTemporarilyUnavailable if the provider implementation receives an error believed to be intermittent.
	GetName(ctx context.Context, uuid string) (string, error)
}
