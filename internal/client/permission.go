package client

import (
	"context"
	"net/http"
	"net/url"
)

// PermissionService answers yes/no authorization questions for the current
// principal. A denial is a plain false, never an error; errors mean the
// question itself could not be asked.
type PermissionService struct {
	c *Client
}

func (s *PermissionService) Check(ctx context.Context, action, scope string) (bool, error) {
	q := url.Values{
		"action": {action},
		"scope":  {scope},
	}
	var allowed bool
	if err := s.c.do(ctx, http.MethodGet, "/api/permission/check", q, nil, &allowed); err != nil {
		return false, err
	}
	return allowed, nil
}
