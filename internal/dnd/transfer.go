// Package dnd carries drag-and-drop payloads between board views.
//
// A Transfer is created when a drag starts, filled in by the drag source,
// and read by drop targets as the drag moves over them.
package dnd

// MediaTypePlain is the only payload type the board exchanges.
const MediaTypePlain = "text/plain"

// Effect is the kind of operation a drag permits.
type Effect string

// Effect values.
const (
	EffectNone Effect = "none"
	EffectCopy Effect = "copy"
	EffectMove Effect = "move"
	EffectLink Effect = "link"
)

type entry struct {
	mediaType string
	value     string
}

// Transfer is the payload of one drag operation.
type Transfer struct {
	entries       []entry
	effectAllowed Effect
}

// NewTransfer returns an empty payload that allows no effect.
func NewTransfer() *Transfer {
	return &Transfer{effectAllowed: EffectNone}
}

// SetData stores value under mediaType, replacing an earlier value of the
// same type without changing its declared position.
func (t *Transfer) SetData(mediaType, value string) {
	for i := range t.entries {
		if t.entries[i].mediaType == mediaType {
			t.entries[i].value = value
			return
		}
	}
	t.entries = append(t.entries, entry{mediaType: mediaType, value: value})
}

// GetData returns the value stored under mediaType, or "".
func (t *Transfer) GetData(mediaType string) string {
	for _, e := range t.entries {
		if e.mediaType == mediaType {
			return e.value
		}
	}
	return ""
}

// Types returns the declared media types in the order they were set.
func (t *Transfer) Types() []string {
	types := make([]string, len(t.entries))
	for i, e := range t.entries {
		types[i] = e.mediaType
	}
	return types
}

// ClearData removes every stored value.
func (t *Transfer) ClearData() {
	t.entries = nil
}

// EffectAllowed reports which operation the source permits.
func (t *Transfer) EffectAllowed() Effect {
	return t.effectAllowed
}

// SetEffectAllowed sets the operation the source permits.
func (t *Transfer) SetEffectAllowed(e Effect) {
	t.effectAllowed = e
}

// HasType reports whether the first declared type is mediaType.
func (t *Transfer) HasType(mediaType string) bool {
	return len(t.entries) > 0 && t.entries[0].mediaType == mediaType
}
