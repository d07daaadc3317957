package markus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAllUsers returns every user in the MarkUs instance.
func (c *Client) GetAllUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, jsonPath(BuildPath(Collection("users"))), &users); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// NewUser adds a user to the MarkUs database.
func (c *Client) NewUser(ctx context.Context, user NewUser) (*Response, error) {
	params := url.Values{}
	params.Set("user_name", user.UserName)
	params.Set("type", user.Type)
	params.Set("first_name", user.FirstName)
	params.Set("last_name", user.LastName)
	if user.SectionName != "" {
		params.Set("section_name", user.SectionName)
	}
	if user.GraceCredits != "" {
		params.Set("grace_credits", user.GraceCredits)
	}

	return c.Do(ctx, http.MethodPost, BuildPath(Collection("users")), FormBody(params))
}
