package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func onboardingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/users/verify-otp", VerifyOtp)
	router.POST("/admin/users/complete-profile", CompleteProfile)
	return router
}

func seedOnboardingUser(t *testing.T, db *gorm.DB, otp string, expiresAt time.Time) models.User {
	t.Helper()
	user := models.User{
		FirstName:       "Asha",
		LastName:        "Omondi",
		Email:           "asha@example.com",
		Role:            models.RoleCustomer,
		Status:          models.UserStatusInactive,
		OnboardingState: models.OnboardingOtpSent,
		Otp:             otp,
		OtpExpiresAt:    &expiresAt,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestVerifyOtp(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "1234", time.Now().Add(5*time.Minute))
	router := onboardingRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/admin/users/verify-otp", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
		"otp":    "1234",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.True(t, reloaded.Verified)
	assert.Equal(t, models.OnboardingVerified, reloaded.OnboardingState)
	assert.Empty(t, reloaded.Otp)
}

func TestVerifyOtpRejectsExpiredCode(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "1234", time.Now().Add(-time.Minute))
	router := onboardingRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/admin/users/verify-otp", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
		"otp":    "1234",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "expired")

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.False(t, reloaded.Verified)
	assert.Equal(t, models.OnboardingOtpSent, reloaded.OnboardingState)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "1234", time.Now().Add(5*time.Minute))
	router := onboardingRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/admin/users/verify-otp", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
		"otp":    "4321",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.False(t, reloaded.Verified)
}

func TestVerifyOtpRejectsMalformedCode(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "1234", time.Now().Add(5*time.Minute))
	router := onboardingRouter()

	for _, otp := range []string{"123", "12345", "12a4", "one2"} {
		recorder := performJSONRequest(router, http.MethodPost, "/admin/users/verify-otp", map[string]any{
			"userId": user.ID,
			"email":  user.Email,
			"otp":    otp,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "otp %q", otp)
		assert.Contains(t, recorder.Body.String(), "exactly 4 digits")
	}
}

func TestCompleteProfileUnreachableBeforeVerification(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "1234", time.Now().Add(5*time.Minute))
	router := onboardingRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/admin/users/complete-profile", map[string]any{
		"userId":       user.ID,
		"mobileNumber": "0712345678",
		"addressLine1": "1 Market Street",
		"suburb":       "Kilimani",
		"state":        "Nairobi",
		"zipCode":      "00100",
		"country":      "Kenya",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, models.OnboardingOtpSent, reloaded.OnboardingState)
	assert.Equal(t, models.UserStatusInactive, reloaded.Status)
}

func TestCompleteProfileActivatesUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedOnboardingUser(t, db, "", time.Now())
	require.NoError(t, db.Model(&user).Updates(map[string]any{
		"verified":         true,
		"onboarding_state": models.OnboardingVerified,
	}).Error)
	router := onboardingRouter()

	recorder := performJSONRequest(router, http.MethodPost, "/admin/users/complete-profile", map[string]any{
		"userId":       user.ID,
		"mobileNumber": "0712345678",
		"addressLine1": "1 Market Street",
		"suburb":       "Kilimani",
		"state":        "Nairobi",
		"zipCode":      "00100",
		"country":      "Kenya",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, models.OnboardingProfileComplete, reloaded.OnboardingState)
	assert.Equal(t, models.UserStatusActive, reloaded.Status)
	assert.Equal(t, "0712345678", reloaded.MobileNumber)
}
