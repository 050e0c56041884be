package usecase

// TokenIssuer signs a time-limited bearer token asserting an email.
type TokenIssuer interface {
	Generate(email string) (string, error)
}
