// Package order contains the Order aggregate: the order entity itself, its
// owned Line collection, and the Discount value object.
//
// The aggregate enforces the order lifecycle (open, then shipped exactly once)
// and the inventory consistency contract of shipment: stock for every line is
// validated before any counter is decremented, so a failed shipment never
// leaves inventory partially updated.
package order
