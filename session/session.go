// Package session holds the authenticated user's token, identity and
// permission set. A Session is injected explicitly into every controller;
// there is no ambient global.
package session

import (
	"context"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
)

// Claims mirrors the token payload issued by the backend's login endpoint.
// The token is parsed unverified here: the backend is the verifier on every
// request; the client only reads identity and the capability set out of it.
type Claims struct {
	jwt.StandardClaims
	UserID     int          `json:"user_id"`
	Codigo     string       `json:"codigo"`
	Nombre     string       `json:"nombre"`
	Rol        string       `json:"rol"`
	SuperAdmin bool         `json:"es_superadmin"`
	Permisos   []Permission `json:"permisos"`
}

type Session struct {
	token  string
	claims Claims
}

var _ client.TokenSource = (*Session)(nil)

// Parse builds a Session from an issued token.
func Parse(token string) (*Session, error) {
	var claims Claims
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, errors.Wrap(err, "parsing token claims")
	}
	return &Session{token: token, claims: claims}, nil
}

// Token implements client.TokenSource; a nil session is unauthenticated.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

func (s *Session) Claims() Claims { return s.claims }
func (s *Session) UserID() int    { return s.claims.UserID }
func (s *Session) Codigo() string { return s.claims.Codigo }
func (s *Session) Nombre() string { return s.claims.Nombre }

// LoginResult reports a login attempt; failed credentials are an expected
// failure, not an error.
type LoginResult struct {
	Success bool
	Session *Session
	Message string
}

type loginRequest struct {
	Codigo   string `json:"codigo"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the backend and returns a ready Session.
func Login(ctx context.Context, c *client.Client, codigo, password string) LoginResult {
	codigo = core.CleanString(codigo, true /* lower */)
	env, err := c.Post(ctx, "/login", loginRequest{Codigo: codigo, Password: password})
	if err != nil {
		if terr, ok := err.(*client.TransportError); ok && terr.Envelope != nil && terr.Envelope.Message != "" {
			return LoginResult{Message: terr.Envelope.Message}
		}
		return LoginResult{Message: "error de conexión con el servidor"}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "credenciales inválidas"
		}
		return LoginResult{Message: msg}
	}
	data, err := client.DecodeData[loginResponse](env)
	if err != nil || data.Token == "" {
		return LoginResult{Message: "respuesta de login inválida"}
	}
	sess, err := Parse(data.Token)
	if err != nil {
		return LoginResult{Message: "token de sesión inválido"}
	}
	return LoginResult{Success: true, Session: sess}
}
