package wizard

import (
	"errors"
	"time"

	"enquiry/internal/pkg/errs"
)

// ErrWizardIsAlreadyApplied is returned when a wizard is applied a second time.
var ErrWizardIsAlreadyApplied = errs.NewStateConflictErrorWithCause(
	"apply", "applied", errors.New("the wizard was already used, open a new one"),
)

// transient holds what every wizard record has: it lives for a single user
// action and is purged once older than the configured time to live.
type transient struct {
	createdAt time.Time
	applied   bool
}

func newTransient(now time.Time) transient {
	if now.IsZero() {
		now = time.Now()
	}
	return transient{createdAt: now.UTC()}
}

func (t *transient) CreatedAt() time.Time { return t.createdAt }
func (t *transient) IsApplied() bool { return t.applied }

// IsExpired reports whether the wizard was created before cutoff.
func (t *transient) IsExpired(cutoff time.Time) bool {
	return t.createdAt.Before(cutoff)
}

func (t *transient) ensureOpen() error {
	if t.applied {
		return ErrWizardIsAlreadyApplied
	}
	return nil
}

func (t *transient) markApplied() error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	t.applied = true
	return nil
}
