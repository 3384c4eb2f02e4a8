package nameprovider

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amund211/wikistats/internal/domain"
)

type chain struct {
	providers []NameProvider
}

// Tries each provider in order, returning the first name found
func NewChain(providers ...NameProvider) NameProvider {
	return &chain{providers: providers}
}

func (c *chain) GetName(ctx context.Context, uuid string) (string, error) {
	if len(c.providers) == 0 {
		return "", fmt.Errorf("%w: no name providers configured", domain.ErrNameNotFound)
	}

	var errs []error
	for _, provider := range c.providers {
		name, err := provider.GetName(ctx, uuid)
		if err == nil {
			return name, nil
		}
		errs = append(errs, err)
	}

	return "", errors.Join(errs...)
}
