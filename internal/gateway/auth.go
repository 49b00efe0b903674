package gateway

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// Login аутентифицирует оператора и возвращает bearer-токен
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.doRequest(ctx, "POST", c.adminURL+"/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp loginResponse
	if err := c.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	if !loginResp.Success || loginResp.AccessToken == "" {
		if loginResp.Message != "" {
			return "", fmt.Errorf("вход отклонен: %s", loginResp.Message)
		}
		return "", fmt.Errorf("вход отклонен сервером")
	}

	return loginResp.AccessToken, nil
}
