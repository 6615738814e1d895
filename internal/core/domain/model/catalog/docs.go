// Package catalog provides the sellable products and the taxes applied to
// enquiry and sales order lines.
//
// Business rules:
//   - Only products flagged as sellable (SaleOK) may be quoted
//   - Only taxes whose scope is TaxUseSale may be put on a sales line
//   - Percent taxes are bounded to [0, 100], fixed taxes must be non-negative
//   - A product's default line description is "[code] name"
package catalog
