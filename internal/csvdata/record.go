// Package csvdata decodes the headerless monthly CSV archives the history
// stream reads, following the public Binance USDⓈ-M futures archive schema.
// The decoders take rows already split into fields (the history package
// splits them with encoding/csv): the row shape is a fixed, well-known
// column layout with no quoting or schema-evolution concerns, so there is
// nothing a third-party CSV library in the example corpus would add over
// the standard library here.
package csvdata

import "time"

// Record is anything decoded from a monthly archive row that carries a
// primary timestamp the history stream can order and filter by.
type Record interface {
	DateTime() time.Time
}
