package service

import "errors"

// Token rejection reasons. Callers collapse all three into the same external
// 403, but logs and tests need to tell them apart.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

var (
	// ErrMissingCustomer means a cart write arrived without a purchasedBy field.
	ErrMissingCustomer = errors.New("no customer info in payload")
	// ErrInvalidEmail means registration carried no usable email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrNotCartOwner means a cart item belongs to someone else.
	ErrNotCartOwner = errors.New("cart item owned by another customer")
)
