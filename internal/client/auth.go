package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	PID      int64  `json:"pid"`
	Password string `json:"password"`
}

// LoginResult carries the session token and the role the server resolved
// for the account.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges credentials for a bearer token. The token is not stored
// on the client; pass it back via WithToken.
func (c *Client) Login(ctx context.Context, pid int64, password string) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{PID: pid, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
