package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// SerializationErr represents a failure to encode an event payload before publishing.
type SerializationErr struct {
	domainErr
	cause error
}

// NewSerializationErr creates a new SerializationErr wrapping the given cause.
func NewSerializationErr(message string, cause error) *SerializationErr {
	return &SerializationErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying encoding error.
func (e *SerializationErr) Unwrap() error {
	return e.cause
}

// BrokerErr represents a failure to hand an event off to the message broker.
type BrokerErr struct {
	domainErr
	cause error
}

// NewBrokerErr creates a new BrokerErr wrapping the given cause.
func NewBrokerErr(message string, cause error) *BrokerErr {
	return &BrokerErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying broker error.
func (e *BrokerErr) Unwrap() error {
	return e.cause
}
