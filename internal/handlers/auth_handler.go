package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/StudioBelezaApps/salon-crm/internal/config"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/middleware"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/session"
	"github.com/StudioBelezaApps/salon-crm/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Manager
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, sessions: sessions}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "owner",
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Já existe uma conta com este e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, expiresAt, err := h.generateToken(&user, "session", h.sessionTTL())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	h.sessions.SignIn(session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, expiresAt, err := h.generateToken(&user, "session", h.sessionTTL())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	h.sessions.SignIn(session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	})

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "invalid_session", "Sessão inválida.")
		return
	}

	token, expiresAt, err := h.generateToken(&user, "session", h.sessionTTL())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	h.sessions.Refresh(session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	})

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	h.sessions.SignOut(userID)

	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// Callback troca um código de autorização por uma sessão e redireciona para a
// landing autenticada; falha leva ao login com flag de erro.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.config.Server.LoginPath+"?error=auth")
		return
	}

	claims, err := h.parseToken(code, "auth_code")
	if err != nil {
		c.Redirect(http.StatusFound, h.config.Server.LoginPath+"?error=auth")
		return
	}

	sub, _ := claims["sub"].(float64)

	var user models.User
	if err := h.db.First(&user, uint(sub)).Error; err != nil {
		c.Redirect(http.StatusFound, h.config.Server.LoginPath+"?error=auth")
		return
	}

	token, expiresAt, err := h.generateToken(&user, "session", h.sessionTTL())
	if err != nil {
		c.Redirect(http.StatusFound, h.config.Server.LoginPath+"?error=auth")
		return
	}

	h.sessions.SignIn(session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	})

	c.Redirect(http.StatusFound, h.config.Server.LandingPath+"#access_token="+token)
}

// --------- JWT ---------

func (h *AuthHandler) sessionTTL() time.Duration {
	return time.Duration(h.config.JWT.SessionTTLHours) * time.Hour
}

func (h *AuthHandler) generateToken(user *models.User, purpose string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"role":    user.Role,
		"purpose": purpose,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWT.Secret))
	return signed, expiresAt, err
}

func (h *AuthHandler) parseToken(tokenString, purpose string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}
