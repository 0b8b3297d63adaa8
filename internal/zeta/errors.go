package zeta

import "fmt"

// #region pole-error

// PoleError reports evaluation at the pole s = 1. Always fatal to the call;
// callers are expected to special-case it rather than retry.
type PoleError struct {
	S complex128
}

func (e *PoleError) Error() string {
	return fmt.Sprintf("zeta: pole at s = %v", e.S)
}

// #endregion pole-error

// #region invalid-argument-error

// InvalidArgumentError reports a non-finite argument component.
type InvalidArgumentError struct {
	S      complex128
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("zeta: invalid argument %v: %s", e.S, e.Reason)
}

// #endregion invalid-argument-error
