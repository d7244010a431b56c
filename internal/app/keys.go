package app

import "github.com/nhle/project-board/internal/keys"

// KeyMap is the board key map; the sub-views share the same instance.
type KeyMap = keys.KeyMap

// DefaultKeyMap returns the default board bindings.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
