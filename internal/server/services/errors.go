package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// domainError passes domain sentinels through and tags anything else as
// common.ErrorInternal, keeping the cause in the chain.
func domainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrorInternal):
		return err
	default:
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
}
