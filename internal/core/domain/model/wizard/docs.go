// Package wizard provides the two transient line wizards.
//
//   - SaleLineWizard copies every line of one or several sales orders into an
//     enquiry or into another sales order, optionally clearing the target first.
//   - ProductAddWizard adds a catalog product as a new line to one or several
//     quotations.
//
// Wizards are persisted for a single user action: they are applied once and
// purged after a time to live.
package wizard
