package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for domain errors.
Factories wrap lower-layer errors (e.g. gorm.ErrRecordNotFound);
variables cover frequent static cases.
*/

// ErrNotFound wraps a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the domain forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for illegal status values or transitions.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Gigs ---

// ErrGigNotFound - gig does not exist.
var ErrGigNotFound = New(
	CodeNotFound,
	"gig",
	"Gig not found",
	http.StatusNotFound,
)

// ErrNotGigOwner - caller does not own the gig.
var ErrNotGigOwner = New(
	CodeForbidden,
	"gig",
	"You are not the owner of this gig",
	http.StatusForbidden,
)

// ErrGigNotOpen - operation requires an open gig.
var ErrGigNotOpen = New(
	CodeInvalidStatus,
	"gig",
	"Gig is not open",
	http.StatusConflict,
)

// ErrGigAlreadyAssigned - a freelancer has already been hired for this gig.
var ErrGigAlreadyAssigned = New(
	CodeConflict,
	"gig",
	"Gig has already been assigned",
	http.StatusConflict,
)

// ErrGigStatusTransition - the requested status change is not allowed.
var ErrGigStatusTransition = New(
	CodeInvalidStatus,
	"gig",
	"Status transition not allowed",
	http.StatusConflict,
)

// --- Bids ---

// ErrBidNotFound - bid does not exist.
var ErrBidNotFound = New(
	CodeNotFound,
	"bid",
	"Bid not found",
	http.StatusNotFound,
)

// ErrDuplicateBid - the freelancer already has a bid on this gig.
var ErrDuplicateBid = New(
	CodeAlreadyExists,
	"bid",
	"You have already placed a bid on this gig",
	http.StatusConflict,
)

// ErrOwnGigBid - owners may not bid on their own gigs.
var ErrOwnGigBid = New(
	CodeInvalidOperation,
	"bid",
	"You cannot bid on your own gig",
	http.StatusBadRequest,
)

// --- Notifications ---

// ErrNotificationNotFound - notification does not exist.
var ErrNotificationNotFound = New(
	CodeNotFound,
	"notification",
	"Notification not found",
	http.StatusNotFound,
)

// ErrNotificationAccessDenied - notification belongs to another user.
var ErrNotificationAccessDenied = New(
	CodeForbidden,
	"notification",
	"Access to notification denied",
	http.StatusForbidden,
)

// --- Auth ---

// ErrEmailAlreadyExists - email already in use.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - invalid or expired token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserNotFound - user does not exist.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)
