package errors

import (
	stderrors "errors"
	"io/fs"
	"os"
)

// Is reports whether any error in err's chain matches target.
// It is the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It is the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost PlatformError in err's chain.
// Returns CodeUnknown if err is nil or carries no PlatformError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the classification from err's chain.
// Returns ClassificationPermanent for nil and plain errors.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// FromFS converts an error returned by a platform provider into a PlatformError.
// The code is chosen from the fs sentinel found in the chain; op and path are
// attached as context. An error that is already a PlatformError is returned
// with the context added and its code untouched.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := fsys.Stat(name); err != nil {
//	    return errors.FromFS(err, "stat", name)
//	}
func FromFS(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}

	ctx := map[string]interface{}{"op": op, "path": path}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return WithContextMap(err, ctx)
	}

	var code ErrorCode
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		code = CodePermission
	case stderrors.Is(err, fs.ErrClosed):
		code = CodeClosed
	case stderrors.Is(err, os.ErrDeadlineExceeded):
		code = CodeTimeout
	default:
		code = CodeIO
	}
	return WrapWithContext(err, code, op+" "+path, ctx)
}
