package ramp

import "errors"

var (
	// ErrUnknownKind is returned when a table is tagged with an entity class
	// the pipeline does not handle.
	ErrUnknownKind = errors.New("table is not area or district data")

	// ErrEmptyCollection is returned when a collection holds neither an
	// areas nor a districts table.
	ErrEmptyCollection = errors.New("collection does not contain area or district data")
)
