package usecasecontract

// IValidator covers field-level validation done inside usecases as
// defense-in-depth behind the request-binding layer.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateUsername(username string) error
	ValidatePasswordStrength(password string) error
}
