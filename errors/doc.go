// Package errors provides the structured error type used across resfs.
//
// Every fallible operation in the module reports a PlatformError carrying an
// ErrorCode, a retry classification, a human-readable message, optional
// context metadata, and the wrapped cause. The package stays compatible with
// the standard library (errors.Is, errors.As, errors.Unwrap), so callers that
// only care about fs.ErrNotExist can keep using it.
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "unknown resource category")
//	err := errors.Newf(errors.CodeInvalidInput, "unknown resource category %q", cat)
//
// # Wrapping platform failures
//
// Raw provider errors (usually *fs.PathError) are converted with FromFS, which
// picks the code from the fs sentinel in the chain:
//
//	f, err := fsys.OpenFile(name, flag, 0o644)
//	if err != nil {
//	    return errors.FromFS(err, "open", name)
//	}
//
// # Context
//
//	err = errors.WithContext(err, "category", "textures")
//
// # Serialization
//
// ToJSON flattens an error for machine-readable output (the CLI uses it for
// --json). The cause chain is excluded.
package errors
