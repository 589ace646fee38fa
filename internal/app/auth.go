package app

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"coursehub/pkg/api"
	"coursehub/pkg/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// RegistrationDetails is what the user submits on the signup form. The
// details travel with the pending verification and are only sent to the
// backend; they are never persisted client-side.
type RegistrationDetails struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// PendingRegistration is the bundle carried from the signup form to the
// verification step. The account does not exist until VerifyAndRegister
// succeeds, so the original details ride along.
type PendingRegistration struct {
	Details RegistrationDetails
}

// Login authenticates and saves the session. An unverified account comes
// back as *UnverifiedError carrying the email so the caller can route to the
// verification step instead of showing a generic failure.
func (a *App) Login(ctx context.Context, email, password string) (domain.Session, error) {
	v := newValidationError()
	email = strings.TrimSpace(email)
	if email == "" {
		v.add("email", "Email is required")
	}
	if password == "" {
		v.add("password", "Password is required")
	} else if len(password) < 6 {
		v.add("password", "Password must be at least 6 characters")
	}
	if err := v.orNil(); err != nil {
		return domain.Session{}, err
	}

	sess, err := a.api.Login(ctx, email, password)
	if err != nil {
		if isUnverified(err) {
			return domain.Session{}, &UnverifiedError{Email: email}
		}
		return domain.Session{}, err
	}
	if err := a.sessions.Set(sess); err != nil {
		return domain.Session{}, err
	}
	a.log.Info("logged in", "userId", sess.UserID, "role", sess.Role)
	return sess, nil
}

func isUnverified(err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Kind != api.KindAuth && apiErr.Kind != api.KindPermission {
		return false
	}
	if strings.EqualFold(apiErr.Code, "ACCOUNT_UNVERIFIED") {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "not verified") ||
		strings.Contains(strings.ToLower(apiErr.Message), "verify your email")
}

// Register runs phase one of the two-phase signup: field validation, then a
// one-time code mailed to the address. The returned pending bundle must be
// handed to VerifyAndRegister; nothing is created server-side yet.
func (a *App) Register(ctx context.Context, details RegistrationDetails, confirmPassword string) (PendingRegistration, error) {
	v := newValidationError()
	name := strings.TrimSpace(details.Name)
	switch {
	case name == "":
		v.add("name", "Full name is required")
	case len(name) < 2:
		v.add("name", "Name must be at least 2 characters")
	case !namePattern.MatchString(name):
		v.add("name", "Name can only contain letters and spaces")
	}
	email := strings.TrimSpace(details.Email)
	switch {
	case email == "":
		v.add("email", "Email is required")
	case !emailPattern.MatchString(email):
		v.add("email", "Please enter a valid email address")
	}
	switch {
	case details.Password == "":
		v.add("password", "Password is required")
	case len(details.Password) < 6:
		v.add("password", "Password must be at least 6 characters")
	case len(details.Password) > 50:
		v.add("password", "Password must be less than 50 characters")
	}
	switch {
	case confirmPassword == "":
		v.add("confirmPassword", "Please confirm your password")
	case confirmPassword != details.Password:
		v.add("confirmPassword", "Passwords do not match")
	}
	if details.Role == "" {
		details.Role = domain.RoleStudent
	}
	if err := v.orNil(); err != nil {
		return PendingRegistration{}, err
	}

	details.Name = name
	details.Email = email
	if err := a.api.SendRegistrationOTP(ctx, details.Name, details.Email, details.Password, details.Role); err != nil {
		return PendingRegistration{}, err
	}
	a.log.Info("registration otp sent", "email", details.Email)
	return PendingRegistration{Details: details}, nil
}

// VerifyAndRegister completes signup with the emailed code and saves the
// resulting session.
func (a *App) VerifyAndRegister(ctx context.Context, pending PendingRegistration, otp string) (domain.Session, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		v := newValidationError()
		v.add("otp", "OTP is required")
		return domain.Session{}, v
	}
	d := pending.Details
	sess, err := a.api.VerifyAndRegister(ctx, d.Name, d.Email, d.Password, d.Role, otp)
	if err != nil {
		return domain.Session{}, err
	}
	if err := a.sessions.Set(sess); err != nil {
		return domain.Session{}, err
	}
	a.log.Info("account verified and created", "userId", sess.UserID)
	return sess, nil
}

// ResendOTP re-mails the verification code for a pending registration.
func (a *App) ResendOTP(ctx context.Context, email string) error {
	return a.api.ResendOTP(ctx, email)
}

// Logout clears the stored session. No backend call is involved.
func (a *App) Logout() error {
	sess, ok := a.sessions.Current()
	if ok {
		a.log.Info("logged out", "userId", sess.UserID)
	}
	return a.sessions.Clear()
}

// Current returns the live session, if any.
func (a *App) Current() (domain.Session, bool) {
	return a.sessions.Current()
}

// Forgot-password is a strict three-step flow: request a code, verify it,
// then set the new password. Each step validates its own inputs.

func (a *App) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailPattern.MatchString(email) {
		v := newValidationError()
		v.add("email", "Please enter a valid email address")
		return v
	}
	return a.api.ForgotPassword(ctx, email)
}

func (a *App) VerifyResetOTP(ctx context.Context, email, otp string) error {
	if strings.TrimSpace(otp) == "" {
		v := newValidationError()
		v.add("otp", "OTP is required")
		return v
	}
	return a.api.VerifyOTP(ctx, email, strings.TrimSpace(otp))
}

func (a *App) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	v := newValidationError()
	if newPassword == "" {
		v.add("newPassword", "Password is required")
	} else if len(newPassword) < 6 {
		v.add("newPassword", "Password must be at least 6 characters")
	}
	if err := v.orNil(); err != nil {
		return err
	}
	return a.api.ResetPassword(ctx, email, otp, newPassword)
}
