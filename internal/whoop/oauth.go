package whoop

import "golang.org/x/oauth2"

// https://developer.whoop.com/docs/developing/oauth

func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"read:recovery",
			"read:cycles",
			"read:workout",
			"read:sleep",
			"read:profile",
			"read:body_measurement",
			"offline",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  BaseURL + "/oauth/oauth2/auth",
			TokenURL: BaseURL + "/oauth/oauth2/token",
		},
	}
}
