// Package services provides domain services that orchestrate business operations
// across several aggregates of the enquiry system, for workflows that do not
// belong to a single aggregate root.
//
// The package includes:
//   - EnquiryConfirmer: turns an enquiry into a draft sales order
//   - LineComposer: fills enquiry line defaults from the picked product
//   - SaleTaxes: resolves and checks the taxes used on sale documents
package services
