// Package saleorder provides the sales order aggregate that enquiries are
// confirmed into and that the line wizards copy lines from and to.
//
// Orders are created in draft state and numbered from the sale.order sequence.
// Draft and sent orders are quotations.
package saleorder
