package auth

import (
	"net/http"
	"os"

	"go-inventory-api/internal/pkg/apperror"
	"go-inventory-api/internal/pkg/response"
	"go-inventory-api/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	gateway Gateway
	flags   session.Store
	logger  *zap.Logger
}

func NewHandler(g Gateway, flags session.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{gateway: g, flags: flags, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	sess, err := h.gateway.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// The gateway never touches the session flag; setting it after a
	// successful login is this caller's job.
	if err := h.flags.Set(c.Request.Context(), true); err != nil {
		h.logger.Error("failed to persist session flag", zap.Error(err))
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	responseData := gin.H{
		"user": AuthResponse{
			ID:    sess.User.UserID,
			Email: sess.User.Email,
			Name:  sess.User.Name,
		},
		"access_token": sess.Token,
	}

	response.Success(c, http.StatusOK, "", responseData)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.flags.Set(c.Request.Context(), false); err != nil {
		h.logger.Error("failed to clear session flag", zap.Error(err))
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Session reports the persisted login flag; clients read it once at
// startup to pick the initial screen.
func (h *Handler) Session(c *gin.Context) {
	loggedIn, err := h.flags.Get(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", SessionStatusResponse{IsLoggedIn: loggedIn})
}
