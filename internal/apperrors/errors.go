package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorageUnavailable indicates that the backing store could not be read.
// Read paths recover by presenting an empty collection while still surfacing this error.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrPersistence indicates that a write to the backing store failed.
// The mutation it guarded must be treated as not having happened.
var ErrPersistence = errors.New("persistence failure")
