package entities

// ValidationResult represents the outcome of validating an SDK configuration document.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a specific validation error.
type ValidationError struct {
	// Field is the instance location ("/sdk_package_name") or struct field name.
	Field   string
	Message string
}

// AddError records an error and marks the result invalid.
func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
	r.Valid = false
}
