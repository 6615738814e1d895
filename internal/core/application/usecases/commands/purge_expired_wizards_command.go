package commands

import (
	"errors"
	"time"

	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var ErrPurgeExpiredWizardsCommandIsNotConstructed = errors.New(
	"PurgeExpiredWizardsCommand must be created via NewPurgeExpiredWizardsCommand constructor",
)

// PurgeExpiredWizardsCommand removes the wizards created before a cutoff.
type PurgeExpiredWizardsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeExpiredWizardsCommand creates the command for wizards older than ttl at now.
func NewPurgeExpiredWizardsCommand(now time.Time, ttl time.Duration) (PurgeExpiredWizardsCommand, error) {
	if ttl <= 0 {
		return PurgeExpiredWizardsCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl.String(), "0s (excluded)", "∞")
	}
	return PurgeExpiredWizardsCommand{
		cutoff: now.Add(-ttl),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeExpiredWizardsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredWizardsCommandIsNotConstructed)
}

func (c PurgeExpiredWizardsCommand) Cutoff() time.Time { return c.cutoff }
