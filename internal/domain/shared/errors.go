package shared

// DomainError represents a client-core error with a stable code
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

// Common errors, one per branch of the failure taxonomy
var (
	// ErrUnauthorized maps HTTP 401 on any authenticated call. Fatal to the
	// session: the caller must tear down the credential and all caches.
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "Session expired")
	// ErrForbidden maps HTTP 403. Recoverable; does not end the session.
	ErrForbidden = NewDomainError("FORBIDDEN", "Not allowed to access this resource")
	// ErrRequestFailed maps any other non-2xx response.
	ErrRequestFailed = NewDomainError("REQUEST_FAILED", "Server rejected the request")
	// ErrUnavailable covers transport failures and unparsable responses.
	ErrUnavailable = NewDomainError("UNAVAILABLE", "Could not reach server")
	// ErrValidation is a local required-field failure; no network call is made.
	ErrValidation = NewDomainError("VALIDATION", "Required fields are missing")
)
