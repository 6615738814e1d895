// Package orderline provides the line entity shared by enquiries and sales
// orders, and the helpers computing document amounts from lines.
package orderline
