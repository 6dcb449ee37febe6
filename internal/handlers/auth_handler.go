package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensemble-arts/shop-backend/internal/auth"
	"github.com/ensemble-arts/shop-backend/internal/validation"
)

// RegisterAuthRoutes registers signup and login.
func RegisterAuthRoutes(r *gin.Engine, cfg HandlerConfig) {
	log := cfg.logger()
	v := validation.New()
	users := auth.NewStore(cfg.DynamoDBClient, cfg.UsersTable)

	r.POST("/api/auth/register", func(c *gin.Context) {
		var req validation.RegisterRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		u, err := users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
				return
			}
			writeInternal(c, log, err)
			return
		}

		token, err := cfg.Issuer.Issue(auth.Identity{UserID: u.UserID, Email: u.Email})
		if err != nil {
			writeInternal(c, log, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful",
			"token":   token,
			"user":    u.Public(),
		})
	})

	r.POST("/api/auth/login", func(c *gin.Context) {
		var req validation.LoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		u, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrBadCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
				return
			}
			writeInternal(c, log, err)
			return
		}

		token, err := cfg.Issuer.Issue(auth.Identity{UserID: u.UserID, Email: u.Email})
		if err != nil {
			writeInternal(c, log, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    u.Public(),
		})
	})
}
