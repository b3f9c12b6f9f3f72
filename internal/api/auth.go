package api

import "context"

// Login exchanges credentials for a token pair plus the identity snapshot.
func (c *Client) Login(ctx context.Context, email, password string) (Identity, string, string, error) {
	in := map[string]string{"email": email, "password": password}
	var out loginResponse
	if err := c.do(ctx, "POST", "/api/auth/login/", in, &out); err != nil {
		return Identity{}, "", "", err
	}
	return out.User, out.Access, out.Refresh, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, "POST", "/api/auth/register/", in, nil)
}
