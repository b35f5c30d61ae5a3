package component

// Cursor tracks whether the pointer is captured for camera look.
type Cursor struct {
	Captured bool
}

var CursorComponent = NewComponent[Cursor]()
