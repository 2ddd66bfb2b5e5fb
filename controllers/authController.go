package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgInvalidCredentials  = "invalid email or password"
	msgAccountInactive     = "This account has been deactivated."
	msgAdminOnly           = "This dashboard is restricted to staff accounts."
	msgFailedToGenToken    = "failed to generate token"
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Login authenticates a staff member and issues a JWT for the dashboard.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if user.Role != models.RoleAdmin && user.Role != models.RoleManager {
		sendErrorResponse(ctx, http.StatusForbidden, msgAdminOnly)
		return
	}

	if user.Status == models.UserStatusInactive {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccountInactive)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString, "user": user})
}

// GetProfile returns the account behind the presented token. The dashboard
// calls this on load to validate a stored session.
func GetProfile(ctx *gin.Context) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	claims := userClaims.(jwt.MapClaims)
	email, ok := claims["email"].(string)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	user, err := findUserByEmail(email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Account no longer exists")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
