// Package oauth provides the OAuth callback server and browser
// utilities used by the Google sign-in flow.
package oauth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"html"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"
)

// CallbackServer handles the OAuth redirect callback. It starts a
// local HTTP server to receive the authorization code.
type CallbackServer struct {
	mu            sync.Mutex
	port          int
	expectedState string
	codeChan      chan string
	errChan       chan error
	server        *http.Server
	listener      net.Listener
}

// NewCallbackServer creates a new OAuth callback server. The
// expectedState is used to validate the callback matches the request.
func NewCallbackServer(port int, expectedState string) *CallbackServer {
	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		codeChan:      make(chan string, 1),
		errChan:       make(chan error, 1),
	}
}

// Start starts the callback server on the configured port. If port is
// 0, a random available port will be chosen.
func (s *CallbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	// Store the actual port (important when port was 0)
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case s.errChan <- err:
			default:
			}
		}
	}()

	return nil
}

// handleCallback processes the OAuth callback request.
func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		errDesc := r.URL.Query().Get("error_description")
		s.errChan <- fmt.Errorf("oauth error: %s - %s", errParam, errDesc)
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, resultHTML(fmt.Sprintf("Sign-in failed: %s", html.EscapeString(errDesc)), ""))
		return
	}

	state := r.URL.Query().Get("state")
	if state != s.expectedState {
		s.errChan <- fmt.Errorf("state mismatch: expected %s, got %s", s.expectedState, state)
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, resultHTML("Sign-in failed: invalid state parameter", ""))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		s.errChan <- fmt.Errorf("no authorization code received")
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, resultHTML("Sign-in failed: no code received", ""))
		return
	}

	select {
	case s.codeChan <- code:
	default:
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, resultHTML("Signed in to PakUni!", "You can close this window and return to the terminal."))
}

// WaitForCode blocks until the authorization code is received or the
// timeout elapses.
func (s *CallbackServer) WaitForCode(timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case code := <-s.codeChan:
		return code, nil
	case err := <-s.errChan:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("timeout waiting for authorization callback")
	}
}

// Stop shuts down the callback server.
func (s *CallbackServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Port returns the port the server is listening on.
func (s *CallbackServer) Port() int {
	return s.port
}

// RedirectURI returns the redirect URI for this callback server.
func (s *CallbackServer) RedirectURI() string {
	return fmt.Sprintf("http://localhost:%d/callback", s.port)
}

func resultHTML(title, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>PakUni - Sign In</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #F3F6F4;
        }
        .container {
            text-align: center;
            background: white;
            padding: 48px 64px;
            border-radius: 16px;
            border: 1px solid #C8D6CC;
            box-shadow: 0 4px 24px rgba(0,0,0,0.08);
        }
        h1 {
            color: #14532D;
            margin: 0 0 8px 0;
            font-size: 24px;
            font-weight: 600;
        }
        p {
            color: #6B7280;
            margin: 0;
            font-size: 16px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <p>%s</p>
    </div>
</body>
</html>`, title, message)
}

// OpenBrowser opens the default browser to the given URL.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}

// GenerateCodeVerifier generates a random PKCE code verifier.
func GenerateCodeVerifier() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateCodeChallenge generates a PKCE code challenge from a
// verifier.
func GenerateCodeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
