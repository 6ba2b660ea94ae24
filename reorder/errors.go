package reorder

import "errors"

var (
	// ErrUnmounted is returned for any pointer event delivered after Unmount.
	ErrUnmounted = errors.New("reorder: list is unmounted")
	// ErrNotMounted is returned when pointer events arrive before Mount.
	ErrNotMounted = errors.New("reorder: list is not mounted")
	// ErrAlreadyMounted is returned by a second Mount.
	ErrAlreadyMounted = errors.New("reorder: list is already mounted")
	// ErrDragActive rejects a pointer-down while a drag session is open.
	ErrDragActive = errors.New("reorder: drag already in progress")
	// ErrDuplicateItem is returned by New when two items share an id.
	ErrDuplicateItem = errors.New("reorder: duplicate item")
	// ErrUnknownItem is returned when an id is not part of the list.
	ErrUnknownItem = errors.New("reorder: unknown item")
)
