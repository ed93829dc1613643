package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventorypro/dashboard/internal/domain/identity"
)

const userContextKey = "stub_user"

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role"`
	AdminKey string `json:"admin_key"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// tokenAuth rejects requests without a valid "Token <token>" header.
func (s *Server) tokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Token ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		user := s.store.authenticate(token)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *userRecord {
	u, _ := c.Get(userContextKey)
	user, _ := u.(*userRecord)
	return user
}

func currentToken(c *gin.Context) string {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Token ")
	return token
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token := s.store.register(req.Username, req.Password, req.Email, req.Role, req.AdminKey)
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username already exists."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token := s.store.login(req.Username, req.Password)
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.store.revoke(currentToken(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, identity.Profile{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	s.store.mu.Lock()
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (s *Server) handleChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	if bcrypt.CompareHashAndPassword(user.Hash, []byte(req.OldPassword)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update password"})
		return
	}

	s.store.mu.Lock()
	user.Hash = hash
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func (s *Server) handleListUsers(c *gin.Context) {
	if currentUser(c).Role != identity.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
		return
	}

	s.store.mu.Lock()
	out := make([]identity.User, 0, len(s.store.users))
	for _, u := range s.store.users {
		out = append(out, identity.User{
			Username:   u.Username,
			Email:      u.Email,
			Role:       u.Role,
			DateJoined: u.DateJoined,
		})
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, out)
}
