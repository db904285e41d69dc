package purge

import (
	"errors"
	"fmt"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// Kind classifies the step a failure happened in.
type Kind string

// Failure kinds. Only archive and vault deletion failures are recoverable.
const (
	KindConnect        Kind = "connect"
	KindListVaults     Kind = "list-vaults"
	KindResolveVault   Kind = "resolve-vault"
	KindListJobs       Kind = "list-jobs"
	KindInitiateJob    Kind = "initiate-job"
	KindDescribeJob    Kind = "describe-job"
	KindFetchInventory Kind = "fetch-inventory"
	KindParseInventory Kind = "parse-inventory"
	KindDeleteArchive  Kind = "delete-archive"
	KindDeleteVault    Kind = "delete-vault"
	KindCanceled       Kind = "canceled"
)

// Fatal reports whether a failure of this kind ends the run with a non-zero
// exit code.
func (k Kind) Fatal() bool {
	switch k {
	case KindDeleteArchive, KindDeleteVault:
		return false
	default:
		return true
	}
}

// Error is a failure of one workflow step.
type Error struct {
	Kind Kind
	Err  error
}

// NewError wraps err as a failure of kind.
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the failure aborts the run.
func (e *Error) Fatal() bool {
	return e.Kind.Fatal()
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsFatal reports whether err aborts the run. Errors that did not come from
// a workflow step are fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	kind, ok := KindOf(err)
	return !ok || kind.Fatal()
}

// Code names the kind of exception behind err for logs: the Glacier error
// code when the service answered, otherwise the Go type of the root cause.
func Code(err error) string {
	if err == nil {
		return ""
	}
	if code := glacier.ErrorCode(err); code != "" {
		return code
	}
	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}
	return fmt.Sprintf("%T", root)
}
