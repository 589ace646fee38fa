package api

import (
	"context"
	"net/http"

	"coursehub/pkg/domain"
)

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (r authResponse) session() domain.Session {
	return domain.Session{
		UserID: r.User.ID,
		Name:   r.User.Name,
		Email:  r.User.Email,
		Role:   r.User.Role,
		Token:  r.Token,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", nil, payload, &resp); err != nil {
		return domain.Session{}, err
	}
	return resp.session(), nil
}

// SendRegistrationOTP starts the two-phase signup: the backend mails a
// one-time code and holds nothing else, so the caller must keep the details
// for VerifyAndRegister.
func (c *Client) SendRegistrationOTP(ctx context.Context, name, email, password string, role domain.Role) error {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	return c.doJSON(ctx, http.MethodPost, "/otp/send-otp", nil, payload, nil)
}

// VerifyAndRegister completes signup: the account only materializes when the
// code checks out server-side.
func (c *Client) VerifyAndRegister(ctx context.Context, name, email, password string, role domain.Role, otp string) (domain.Session, error) {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
		"otp":      otp,
	}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/otp/verify-and-register", nil, payload, &resp); err != nil {
		return domain.Session{}, err
	}
	return resp.session(), nil
}

func (c *Client) ResendOTP(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/otp/resend", nil, payload, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", nil, payload, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	payload := map[string]string{"email": email, "otp": otp}
	return c.doJSON(ctx, http.MethodPost, "/auth/verify-otp", nil, payload, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	payload := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", nil, payload, nil)
}
