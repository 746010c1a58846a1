package models

// User is the identity provider's view of an account. The service passes it
// through without interpreting anything beyond id and email.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Token is an access token issued by the identity provider.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
