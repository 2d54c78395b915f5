package validation

// Validator checks a struct against its validate tags and returns a map of
// field name to human-readable message, or nil when the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
