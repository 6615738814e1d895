// Package errs provides the typed errors shared by the enquiry service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...)
// with a struct carrying the offending parameter, so callers can branch with
// errors.Is on the sentinel and still read details with errors.As:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an entity could not be loaded
//   - VersionIsInvalidError: a stored record does not match the expected version
//   - StateConflictError: an operation is not allowed in the current state
//
// The HTTP adapter maps the sentinels to status codes.
package errs
