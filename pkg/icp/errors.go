package icp

// CancelledError reports that a CheckSat run was stopped by its context
// before reaching a verdict, distinct from UNSAT: the search state the
// caller gets back (if any) proves nothing about the problem.
type CancelledError struct{}

func (*CancelledError) Error() string { return "icp: search cancelled" }
