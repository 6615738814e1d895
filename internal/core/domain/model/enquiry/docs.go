// Package enquiry provides the sale order enquiry aggregate: a pre-sale record
// a user fills with tentative lines and later confirms into sales orders.
//
// The package includes:
//   - Enquiry: the aggregate root holding the header, the lines and the amounts
//   - State: the pending, confirm and cancel lifecycle
//
// Key business rules:
//   - Confirming requires at least one line of any kind
//   - Only a pending enquiry can be confirmed or cancelled
//   - Additional sales orders need the multi orders flag and a confirmed enquiry
//   - Amounts are recomputed from the lines; section and note lines count for nothing
package enquiry
