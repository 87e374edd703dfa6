package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

// tokenSaver wraps an oauth2.TokenSource so refreshed tokens are written back
// to disk and survive restarts.
type tokenSaver struct {
	config    *oauth2.Config
	token     *oauth2.Token
	tokenFile string
	mu        sync.Mutex
}

func (ts *tokenSaver) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	newToken, err := ts.config.TokenSource(context.Background(), ts.token).Token()
	if err != nil {
		return nil, err
	}

	if newToken.AccessToken != ts.token.AccessToken {
		log.Println("Token refreshed, saving to file")
		ts.token = newToken
		if err := saveToken(ts.tokenFile, newToken); err != nil {
			log.Printf("Warning: failed to save refreshed token: %v", err)
		}
	}

	return newToken, nil
}

// getToken loads the cached OAuth token, preferring any token that carries a
// refresh token even if expired; only with no usable cache does it start the
// device authorization flow.
func getToken(config *oauth2.Config, tokenFile string) (*oauth2.Token, error) {
	tok, err := tokenFromFile(tokenFile)
	if err == nil {
		if tok.RefreshToken != "" {
			log.Printf("Loaded token from file (expires: %v)", tok.Expiry)
			return tok, nil
		}
		if tok.Valid() {
			return tok, nil
		}
	}

	log.Println("No cached token, starting device authorization...")
	tok, err = getTokenFromDeviceFlow(config)
	if err != nil {
		return nil, err
	}

	if err := saveToken(tokenFile, tok); err != nil {
		log.Printf("Warning: failed to save token: %v", err)
	}
	return tok, nil
}

func getTokenFromDeviceFlow(config *oauth2.Config) (*oauth2.Token, error) {
	ctx := context.Background()

	resp, err := config.DeviceAuth(ctx, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("unable to start device authorization: %w", err)
	}

	fmt.Printf("Visit %s and enter code %s to authorize.\n", resp.VerificationURI, resp.UserCode)
	fmt.Println("Waiting for authorization to complete... (Ctrl+C to cancel)")

	tok, err := config.DeviceAccessToken(ctx, resp, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("device authorization did not complete: %w. Ensure your OAuth client is created as 'TVs and Limited Input devices' and the YouTube Data API v3 is enabled", err)
	}

	return tok, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("unable to create token directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
