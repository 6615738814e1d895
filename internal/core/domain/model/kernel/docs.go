// Package kernel holds the value objects shared by every aggregate of the
// enquiry domain:
//   - UUID: identifier of aggregates and entities
//   - Currency: ISO 4217 company currency deciding the rounding scale of amounts
//
// Monetary amounts and quantities themselves are github.com/shopspring/decimal
// values; Currency.Round is the only place they are rounded.
package kernel
