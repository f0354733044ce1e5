package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/autosphere/storefront/lib/codeverifier"
	"github.com/autosphere/storefront/lib/myhttpclient"
)

type OAuthProvider struct {
	ClientID    string
	Secret      string
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	Scopes      string
}

func GoogleProvider(clientID string, secret string) OAuthProvider {
	return OAuthProvider{
		ClientID:    clientID,
		Secret:      secret,
		AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:    "https://oauth2.googleapis.com/token",
		UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		Scopes:      "openid email profile",
	}
}

type ComposeAuthURLRequest struct {
	CompletionURL string
	State         string
}

type GetTokenRequest struct {
	RedirectURI  string
	Code         string
	CodeVerifier string
}

type GetTokenResponse struct {
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	AccessToken  string `json:"access_token"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

type UserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

//go:generate mockgen -source=oauth_client.go -package auth -destination oauth_client_mock.go OAuthClient
type OAuthClient interface {
	ComposeAuthURL(c context.Context, req ComposeAuthURLRequest) (string, string, error)
	GetAccessToken(c context.Context, req GetTokenRequest) (GetTokenResponse, error)
	GetUserInfo(c context.Context, accessToken string) (UserInfo, error)
}

type oauthClient struct {
	provider   OAuthProvider
	httpSender myhttpclient.HTTPSender
}

func NewOAuthClient(provider OAuthProvider, httpSender myhttpclient.HTTPSender) *oauthClient {
	return &oauthClient{
		provider:   provider,
		httpSender: httpSender,
	}
}

// ComposeAuthURL returns the url to send the user to and the code verifier to keep for the token exchange.
func (oc oauthClient) ComposeAuthURL(c context.Context, req ComposeAuthURLRequest) (string, string, error) {
	u, err := url.Parse(oc.provider.AuthURL)
	if err != nil {
		return "", "", err
	}

	verifier, err := codeverifier.NewVerifier()
	if err != nil {
		return "", "", fmt.Errorf("error creating code verifier: %s", err)
	}

	method, challenge, err := verifier.CreateChallenge()
	if err != nil {
		return "", "", err
	}

	u.RawQuery = url.Values{
		"client_id":             []string{oc.provider.ClientID},
		"code_challenge":        []string{challenge},
		"code_challenge_method": []string{method},
		"redirect_uri":          []string{req.CompletionURL},
		"response_type":         []string{"code"},
		"scope":                 []string{oc.provider.Scopes},
		"state":                 []string{req.State},
	}.Encode()

	return u.String(), verifier.Value, nil
}

func (oc oauthClient) GetAccessToken(c context.Context, req GetTokenRequest) (GetTokenResponse, error) {
	requestBody := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {oc.provider.ClientID},
		"client_secret": {oc.provider.Secret},
		"redirect_uri":  {req.RedirectURI},
		"code":          {req.Code},
		"code_verifier": {req.CodeVerifier},
	}.Encode()

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	httpRespCode, respBody, err := oc.httpSender.Send(c, http.MethodPost, oc.provider.TokenURL, headers, []byte(requestBody))
	if err != nil {
		return GetTokenResponse{}, fmt.Errorf("error getting token: %s", err)
	}
	if httpRespCode != http.StatusOK {
		return GetTokenResponse{}, fmt.Errorf("error getting token: %d", httpRespCode)
	}

	resp := GetTokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return GetTokenResponse{}, fmt.Errorf("error parsing token response: %s", err)
	}

	return resp, nil
}

func (oc oauthClient) GetUserInfo(c context.Context, accessToken string) (UserInfo, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+accessToken)

	httpRespCode, respBody, err := oc.httpSender.Send(c, http.MethodGet, oc.provider.UserInfoURL, headers, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("error getting user-info: %s", err)
	}
	if httpRespCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("error getting user-info: %d", httpRespCode)
	}

	resp := UserInfo{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return UserInfo{}, fmt.Errorf("error parsing user-info response: %s", err)
	}
	if resp.Email == "" {
		return UserInfo{}, fmt.Errorf("user-info response without email")
	}

	return resp, nil
}
