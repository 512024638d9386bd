package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/handler/http/response"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	DebugJWT(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
	secret      string
	tokenTTLMin int
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, secret string, tokenTTLMin int) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
		secret:      secret,
		tokenTTLMin: tokenTTLMin,
	}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "email and cnp are required")
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// DebugJWT introspects the supplied bearer token without requiring it to be
// valid. Diagnostic endpoint for chasing signature and TTL mismatches.
func (h *authHandlerImpl) DebugJWT(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	hasBearer := strings.HasPrefix(authHeader, "Bearer ")
	token := ""
	if hasBearer {
		token = strings.TrimSpace(strings.SplitN(authHeader, " ", 2)[1])
	}

	secretSum := sha256.Sum256([]byte(h.secret))

	head, tail := token, token
	if len(token) > 12 {
		head, tail = token[:12], token[len(token)-12:]
	}

	info := map[string]interface{}{
		"has_authorization_header": authHeader != "",
		"has_bearer_prefix":        hasBearer,
		"token_length":             len(token),
		"token_head":               head,
		"token_tail":               tail,
		"secret_len":               len(h.secret),
		"secret_sha256_prefix":     hex.EncodeToString(secretSum[:])[:16],
		"token_ttl_min":            h.tokenTTLMin,
	}

	if token != "" {
		decoded, err := h.jwtService.JWTAuth().Decode(token)
		if err != nil {
			info["decode_ok"] = false
			info["error"] = err.Error()
		} else if payload, err := decoded.AsMap(r.Context()); err != nil {
			info["decode_ok"] = false
			info["error"] = err.Error()
		} else {
			info["decode_ok"] = true
			info["payload"] = payload
		}
	}

	response.OK(w, info)
}
