// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrTxDone indicates that the unit of work is already committed or rolled back.
	ErrTxDone = errors.New("unit of work already finished")
)
