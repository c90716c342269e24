package errs

import "net/http"

// NewStorageError wraps a persistence-layer failure. The caller-visible
// message is always the generic "DB error"; operation, entity and the
// underlying cause survive only in logs via Full.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		kind:       ErrStorage,
		message:    "DB error",
		Cause:      &ApiErr{kind: ErrStorage, message: operation + " " + entity, Cause: cause},
	}
}
