package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation           = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrDuplicateIdentity    = NewDomainError("DUPLICATE_IDENTITY", "An account with this email already exists")
	ErrApartmentUnavailable = NewDomainError("APARTMENT_UNAVAILABLE", "Apartment is already occupied")
	ErrNotAuthorized        = NewDomainError("NOT_AUTHORIZED", "Not authorized to perform this action")
	ErrIdentityUpdateFailed = NewDomainError("IDENTITY_UPDATE_FAILED", "Failed to update identity record")
	ErrStoreWrite           = NewDomainError("STORE_WRITE_ERROR", "Failed to write to the store")
	ErrStorage              = NewDomainError("STORAGE_ERROR", "Object storage operation failed")
	ErrConcurrencyConflict  = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
)
