package gateway

import (
	"context"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// loginPayload is the wire shape of the upstream login endpoint's data field.
type loginPayload struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

var _ ports.CredentialVerifier = (*Client)(nil)

// Verify exchanges credentials against the upstream login endpoint.
// Rejected credentials surface as an unauthorized error.
func (c *Client) Verify(ctx context.Context, creds ports.Credentials) (ports.Grant, error) {
	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}

	var data loginPayload
	if err := c.Post(ctx, "/auth/login", body, &data); err != nil {
		return ports.Grant{}, err
	}

	return ports.Grant{
		User: domainauth.User{
			ID:    data.User.ID,
			Email: data.User.Email,
			Role:  domainauth.Role(data.User.Role),
		},
		AccessToken: data.AccessToken,
	}, nil
}
