// internal/appnumber/appnumber.go
package appnumber

import "fmt"

// Prefix identifies the admission cycle on every application number.
const Prefix = "SCE25"

// Format renders the application number for the given allocation
// sequence. The first allocation (seq=1) yields SCE2501001; the numeric
// part is 1000+seq zero-padded to five digits, preserving the published
// number format. Sequences are allocated atomically by the store, so
// numbers are unique and strictly increasing in allocation order.
func Format(seq int64) string {
	return fmt.Sprintf("%s%05d", Prefix, 1000+seq)
}
