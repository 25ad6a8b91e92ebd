package dto

type SignupRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries the identity asserted by the client after a
// Google sign-in. IDToken is optional; when present and a client ID is
// configured the server verifies it instead of trusting the claimed email.
type GoogleSignInRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	GooglePhotoURL string `json:"googlePhotoUrl"`
	IDToken        string `json:"idToken"`
}
