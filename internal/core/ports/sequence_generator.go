package ports

import "context"

// SequenceGenerator hands out document numbers.
//
// Example:
//
//	number, err := sequences.NextValue(ctx, enquiry.NumberSequenceCode)
//	// number == "ENQ00001"
type SequenceGenerator interface {
	// NextValue returns the next formatted value of the sequence identified by code.
	NextValue(ctx context.Context, code string) (string, error)
}
