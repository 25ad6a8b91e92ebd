package googleauth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// Identity is the subset of a verified Google ID token this app consumes.
type Identity struct {
	Email   string
	Name    string
	Picture string
}

// Verifier validates Google ID tokens against the configured OAuth client ID.
type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify checks the token signature, audience and expiry and returns the
// identity Google asserted. The claimed email must be verified by Google.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google token has no email claim")
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return nil, errors.New("google email is not verified")
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &Identity{
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
