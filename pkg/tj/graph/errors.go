package graph

import "errors"

// ErrDegenerateRange indicates an axis whose maximum is not greater than its minimum.
var ErrDegenerateRange = errors.New("degenerate range")

// ErrEmptyInput indicates a driver was called without data to plot.
var ErrEmptyInput = errors.New("empty input")

// ErrGridTooSmall indicates terminal dimensions that leave no room for the plot area.
var ErrGridTooSmall = errors.New("grid too small")
