package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-api/config"
	"recruitment-portal-api/internal/delivery/http/middleware"
	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/auth"
	"recruitment-portal-api/pkg/validation"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
	config *config.Config
}

// NewAuthHandler registers authentication routes
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, tokens: tokens, config: cfg}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/logout", handler.Logout)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PersonNumber string `json:"personNumber" binding:"required,person_number"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView is the identity payload returned by login and /auth/me.
type UserView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func userView(p *domain.Person) UserView {
	return UserView{
		ID:        p.PersonID,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      string(p.Role),
	}
}

// Register godoc
// @Summary      Register an applicant account
// @Description  Creates a new person with role applicant. Username, email and person number must be unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration data"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)...))
		return
	}

	person, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PersonNumber: req.PersonNumber,
		Username:     req.Username,
		Password:     req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":  "Account created successfully",
		"username": person.Username,
	})
}

// Login godoc
// @Summary      Authenticate and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]UserView
// @Failure      401   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)...))
		return
	}

	person, token, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token, int(h.tokens.TTL().Seconds()))
	response.JSON(c, http.StatusOK, gin.H{"user": userView(person)})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Description  Idempotent; succeeds whether or not a session exists.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me godoc
// @Summary      Return the caller identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]UserView
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	person, err := h.authUC.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": userView(person)})
}

// setSessionCookie writes the http-only session cookie. Cross-site frontends
// need SameSite=None with Secure in production; development stays strict.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.config.Production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", h.config.Production, true)
}
