package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/keyring"
	"github.com/julianstephens/energycoach/internal/logger"
)

// ErrNotAuthorized means no OAuth token is cached and no login was requested.
var ErrNotAuthorized = errors.New("calendar access not authorized, run 'energycoach calendar --login'")

const authTimeout = 5 * time.Minute

// LoadConfig reads a Google client secrets file and pins its redirect to the
// local callback port.
func LoadConfig(path string) (*oauth2.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", path, err)
	}
	cfg, err := google.ConfigFromJSON(b, gcal.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file: %w", err)
	}
	cfg.RedirectURL = localRedirect(cfg.RedirectURL)
	return cfg, nil
}

func localRedirect(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || (u.Hostname() != "localhost" && u.Hostname() != "127.0.0.1") {
		return fmt.Sprintf("http://localhost:%s/oauth2callback", constants.OAuthRedirectPort)
	}
	u.Host = net.JoinHostPort(u.Hostname(), constants.OAuthRedirectPort)
	return u.String()
}

// LoadToken returns the cached OAuth token.
func LoadToken() (*oauth2.Token, error) {
	raw, err := keyring.GetSecret(constants.OAuthKeyringUser)
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal([]byte(raw), tok); err != nil {
		return nil, fmt.Errorf("cached token is corrupt: %w", err)
	}
	return tok, nil
}

func SaveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return keyring.SetSecret(constants.OAuthKeyringUser, string(data))
}

// Authorizer obtains a fresh token interactively.
type Authorizer func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)

// HTTPClient returns a client that signs requests with the cached token,
// refreshing it as needed and writing refreshed tokens back to the keyring.
// When nothing is cached, authorize is used if non-nil.
func HTTPClient(ctx context.Context, cfg *oauth2.Config, authorize Authorizer) (*http.Client, error) {
	tok, err := LoadToken()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Ignoring cached calendar token", "error", err)
		}
		if authorize == nil {
			return nil, ErrNotAuthorized
		}
		tok, err = authorize(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := SaveToken(tok); err != nil {
			logger.Warn("Could not cache calendar token", "error", err)
		}
	}
	src := &savingTokenSource{base: cfg.TokenSource(ctx, tok), last: tok}
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, src)), nil
}

type savingTokenSource struct {
	base oauth2.TokenSource
	mu   sync.Mutex
	last *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || tok.AccessToken != s.last.AccessToken || tok.RefreshToken != s.last.RefreshToken {
		if err := SaveToken(tok); err != nil {
			logger.Warn("Could not cache refreshed calendar token", "error", err)
		}
		s.last = tok
	}
	return tok, nil
}

// WebAuthorizer runs the authorization code flow through a local callback
// server, printing the consent URL to out.
func WebAuthorizer(out io.Writer) Authorizer {
	return func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
		codeCh := make(chan string, 1)
		errCh := make(chan error, 1)

		listener, err := net.Listen("tcp", "localhost:"+constants.OAuthRedirectPort)
		if err != nil {
			return nil, fmt.Errorf("failed to start listener on port %s: %w", constants.OAuthRedirectPort, err)
		}

		server := &http.Server{
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				code := r.URL.Query().Get("code")
				if code == "" {
					http.Error(w, "Authorization code not found", http.StatusBadRequest)
					select {
					case errCh <- errors.New("authorization code not found in redirect URL"):
					default:
					}
					return
				}
				fmt.Fprint(w, "Authentication successful! You can close this window.")
				select {
				case codeCh <- code:
				default:
				}
			}),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				select {
				case errCh <- fmt.Errorf("HTTP server error: %w", err):
				default:
				}
			}
		}()
		defer server.Shutdown(context.Background())

		authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
		fmt.Fprintf(out, "Open the following URL in your browser to grant calendar access:\n%s\n", authURL)

		ctx, cancel := context.WithTimeout(ctx, authTimeout)
		defer cancel()

		select {
		case code := <-codeCh:
			tok, err := cfg.Exchange(ctx, code)
			if err != nil {
				return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
			}
			return tok, nil
		case err := <-errCh:
			return nil, err
		case <-ctx.Done():
			return nil, fmt.Errorf("authorization timed out: %w", ctx.Err())
		}
	}
}
