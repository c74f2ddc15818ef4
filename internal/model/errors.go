package model

import "errors"

// ErrMissingColumn is the structural precondition failure of the pipeline:
// an input table lacks a column the computation requires. Callers wrap it
// with the column name via fmt.Errorf("%w: NAME", ...).
var ErrMissingColumn = errors.New("missing required column")
