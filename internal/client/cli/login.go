package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	// Токен вводится скрытно: он дает полный доступ к записям пользователя
	accessToken, err := c.io.ReadPassword("API access token: ")
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if accessToken == "" {
		return fmt.Errorf("access token must not be empty")
	}

	if err := c.authService.Login(ctx, username, accessToken); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Logged in")

	return nil
}
