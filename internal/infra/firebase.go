// README: Firebase Admin bootstrap; verifies caller ID tokens for the user routes.
package infra

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseToken is the subset of a verified ID token the rest of the service
// consumes: the account UID plus any custom claims.
type FirebaseToken struct {
	UID    string
	Claims map[string]interface{}
}

// TokenVerifier checks a raw bearer token string. The auth middleware depends
// on this interface so tests can substitute a canned verifier.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error)
}

// adminVerifier verifies tokens through the Firebase Admin SDK.
type adminVerifier struct {
	auth *auth.Client
}

// NewFirebaseVerifier bootstraps the Admin SDK for projectID
// (ATLAS_FIREBASE_PROJECT_ID). projectID must be non-empty so token audiences
// are checked against the right project. credentialsFile, when given,
// overrides application-default credentials as the service-account source.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project id is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &adminVerifier{auth: client}, nil
}

func (v *adminVerifier) VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error) {
	tok, err := v.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	return &FirebaseToken{UID: tok.UID, Claims: tok.Claims}, nil
}
