package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeValidation          = "VALIDATION_FAILED"
	ErrCodeTableNumberRequired = "TABLE_NUMBER_REQUIRED"
	ErrCodeEmptyOrder          = "EMPTY_ORDER"
	ErrCodeInvalidPayment      = "INVALID_PAYMENT_METHOD"
	ErrCodeInvalidFulfilment   = "INVALID_FULFILMENT"
	ErrCodeInvalidTransition   = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeInvalidCategory     = "INVALID_CATEGORY"
	ErrCodeInvalidMenuItem     = "INVALID_MENU_ITEM"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeSessionNotFound     = "SESSION_NOT_FOUND"
	ErrCodeMenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	ErrCodeItemUnavailable     = "ITEM_UNAVAILABLE"
	ErrCodeDuplicateMenuItem   = "DUPLICATE_MENU_ITEM"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrTableNumberRequired  = NewDomainError(ErrCodeTableNumberRequired, "Please enter a table number")
	ErrEmptyOrder           = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrInvalidPaymentMethod = NewDomainError(ErrCodeInvalidPayment, "Payment method must be Cash or Card")
	ErrInvalidFulfilment    = NewDomainError(ErrCodeInvalidFulfilment, "Order type must be dine-in or takeaway")
	ErrInvalidTransition    = NewDomainError(ErrCodeInvalidTransition, "Order status transition not allowed")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidCategory      = NewDomainError(ErrCodeInvalidCategory, "Unknown menu category")
	ErrInvalidMenuItem      = NewDomainError(ErrCodeInvalidMenuItem, "Menu item is invalid")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrSessionNotFound      = NewDomainError(ErrCodeSessionNotFound, "Session not found")
	ErrMenuItemNotFound     = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrItemUnavailable      = NewDomainError(ErrCodeItemUnavailable, "Menu item is not available")
	ErrDuplicateMenuItem    = NewDomainError(ErrCodeDuplicateMenuItem, "Menu item already exists")
)
