package gost

import "fmt"

// RejectedCurve is returned for a curve the self-test refused to admit.
// It wraps the validator's *curves.CurveError.
type RejectedCurve struct {
	Name string
	Err  error
}

func (r *RejectedCurve) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("gost: curve %s rejected by self-test: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("gost: curve %s rejected by self-test", r.Name)
}

func (r *RejectedCurve) Unwrap() error {
	return r.Err
}

// Is lets errors.Is(err, ErrCurveRejected) match any rejection.
func (r *RejectedCurve) Is(target error) bool {
	return target == ErrCurveRejected
}
