package ooo

import "fmt"

// Tag identifies the reorder-buffer slot of an in-flight producer.
// TagNone means the operand is already resolved. Tags render as "ROB<i>"
// in traces but are plain slot indices internally.
type Tag int

// TagNone denotes "no pending producer".
const TagNone Tag = -1

// Valid reports whether the tag names a producer.
func (t Tag) Valid() bool {
	return t >= 0
}

// String renders the tag for traces.
func (t Tag) String() string {
	if t < 0 {
		return "-"
	}
	return fmt.Sprintf("ROB%d", int(t))
}
