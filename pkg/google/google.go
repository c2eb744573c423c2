package google

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type ItfGoogle interface {
	GetUserExchangeToken(c *fiber.Ctx, code string) ([]byte, error)
	GetConfig() *oauth2.Config
}

type googleProvider struct {
	config *oauth2.Config
}

func New() ItfGoogle {
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" {
		redirectURL = "http://localhost:3000/api/v1/auth/callback-gl"
	}

	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
		Endpoint:     google.Endpoint,
	}

	return &googleProvider{config: oauthConfig}
}

func (g *googleProvider) GetUserExchangeToken(c *fiber.Ctx, code string) ([]byte, error) {
	token, err := g.config.Exchange(c.Context(), code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + url.QueryEscape(token.AccessToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			fmt.Printf("Error closing body: %v", err)
		}
	}(resp.Body)

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (g *googleProvider) GetConfig() *oauth2.Config {
	return g.config
}
