package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusworks/campus/pkg/sdk"
)

// ErrLoginRequired is returned when a protected surface is reached without an
// authenticated session. It is the CLI's redirect to the login entry point
// and deliberately not a notification.
var ErrLoginRequired = errors.New("not logged in; run `campusctl auth login`")

// AccessDeniedError is returned when the session's role lacks the feature a
// surface requires.
type AccessDeniedError struct {
	Role    sdk.Role
	Feature sdk.Feature
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: role %q has no access to %s", e.Role, e.Feature)
}

// Require resolves a pending restore, then returns the authenticated user or
// ErrLoginRequired. Protected surfaces must not render anything while the
// session is still restoring; this call is the point where they block.
func Require(ctx context.Context, session *sdk.Session) (*sdk.User, error) {
	if session.State() == sdk.SessionRestoring {
		if err := session.Restore(ctx); err != nil {
			if sdk.IsAuthRejection(err) {
				// Stale credential discarded; silent redirect to login.
				return nil, ErrLoginRequired
			}
			// Transport failure: the stored credential survives, this
			// invocation cannot proceed.
			return nil, err
		}
	}

	switch session.State() {
	case sdk.SessionAuthenticated:
		return session.CurrentUser(), nil
	default:
		return nil, ErrLoginRequired
	}
}

// RequireFeature is Require plus a capability check against the fixed
// role-to-feature table. Hiding a surface from navigation is not enough;
// direct access has to be denied here too.
func RequireFeature(ctx context.Context, session *sdk.Session, feature sdk.Feature) (*sdk.User, error) {
	user, err := Require(ctx, session)
	if err != nil {
		return nil, err
	}
	if !sdk.CapabilitiesFor(user.Role).Has(feature) {
		return nil, &AccessDeniedError{Role: user.Role, Feature: feature}
	}
	return user, nil
}
