package domain

import "errors"

// Sentinel errors produced by repositories and use cases. Delivery maps
// them to HTTP statuses and client messages.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")

	// ErrEmailTaken reports a duplicate user email. The existence query
	// behind it does not filter on the deleted flag, so a soft-deleted
	// user still holds their email.
	ErrEmailTaken = errors.New("email already in use")

	ErrUserFieldsRequired    = errors.New("fullname, email, and password are required")
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrProductFieldsRequired = errors.New("product required fields missing")
)
