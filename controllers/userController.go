package controllers

import (
	"log"
	"math"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/Jumah/dukani-admin-api/utils"
	"github.com/gin-gonic/gin"
)

const otpValidity = 10 * time.Minute

var otpPattern = regexp.MustCompile(`^[0-9]{4}$`)

func sendOtpEmail(user models.User, otp string) error {
	emailData := utils.EmailData{
		Name:    user.FirstName,
		Message: "Use the code below to verify your email address. It expires in 10 minutes.",
		Code:    otp,
		LogoURL: "https://www.dukani.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "otp_email.html")
	return utils.SendEmail(user.Email, "Verify your email", emailData, templatePath)
}

func issueOtp(user *models.User) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(otpValidity)
	if result := initializers.DB.Model(user).Updates(map[string]any{
		"otp":            otp,
		"otp_expires_at": expiresAt,
	}); result.Error != nil {
		return result.Error
	}

	return sendOtpEmail(*user, otp)
}

// GetUsers lists users with pagination and role/status/search filters.
func GetUsers(ctx *gin.Context) {
	var users []models.User

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.User{})
	countQuery := initializers.DB.Model(&models.User{})

	if role := ctx.Query("role"); role != "" {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", pattern, pattern, pattern)
		countQuery = countQuery.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", pattern, pattern, pattern)
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"users": users,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func GetUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// CreateUser starts the onboarding flow: the account is stored with a
// temporary password and a 4-digit OTP is emailed for verification.
func CreateUser(ctx *gin.Context) {
	var createData struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Role      string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&createData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if createData.Role == "" {
		createData.Role = models.RoleCustomer
	}
	if !models.IsValidRole(createData.Role) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid role")
		return
	}

	if _, err := findUserByEmail(createData.Email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "user with this email already exists")
		return
	}

	tempPassword, err := utils.GenerateCode(12)
	if err != nil {
		log.Println("Temporary password generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	hashedPassword, err := hashPassword(tempPassword)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	// The account stays inactive until onboarding finishes; CompleteProfile
	// flips it to active.
	user := models.User{
		FirstName:       createData.FirstName,
		LastName:        createData.LastName,
		Email:           createData.Email,
		Password:        hashedPassword,
		Role:            createData.Role,
		Status:          models.UserStatusInactive,
		OnboardingState: models.OnboardingOtpSent,
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := issueOtp(&user); err != nil {
		log.Println("Error issuing OTP:", err)
		// Account exists; the OTP can be resent later.
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User created. A verification code has been sent to their email.",
		"userId":  user.ID,
	})
}

// VerifyOtp checks the emailed 4-digit code and unlocks profile completion.
func VerifyOtp(ctx *gin.Context) {
	var verifyData struct {
		UserID uint   `json:"userId" binding:"required"`
		Email  string `json:"email" binding:"required,email"`
		Otp    string `json:"otp" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&verifyData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if !otpPattern.MatchString(verifyData.Otp) {
		sendErrorResponse(ctx, http.StatusBadRequest, "OTP must be exactly 4 digits")
		return
	}

	var user models.User
	if result := initializers.DB.Where("id = ? AND email = ?", verifyData.UserID, verifyData.Email).First(&user); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	if user.OnboardingState != models.OnboardingOtpSent {
		sendErrorResponse(ctx, http.StatusBadRequest, "User is not awaiting verification")
		return
	}

	if user.Otp == "" || user.Otp != verifyData.Otp {
		sendErrorResponse(ctx, http.StatusBadRequest, "Incorrect verification code")
		return
	}

	if user.OtpExpiresAt == nil || time.Now().After(*user.OtpExpiresAt) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Verification code has expired. Request a new one.")
		return
	}

	if result := initializers.DB.Model(&user).Updates(map[string]any{
		"verified":         true,
		"onboarding_state": models.OnboardingVerified,
		"otp":              "",
		"otp_expires_at":   nil,
	}); result.Error != nil {
		log.Println("OTP verification update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Email verified successfully."})
}

// ResendOtp issues a fresh code for a user stuck at the verification step,
// invalidating any previous one.
func ResendOtp(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	if user.OnboardingState != models.OnboardingOtpSent {
		sendErrorResponse(ctx, http.StatusBadRequest, "User is not awaiting verification")
		return
	}

	if err := issueOtp(&user); err != nil {
		log.Println("Error reissuing OTP:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to send verification code")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "A new verification code has been sent."})
}

// CompleteProfile fills in contact details for a verified user and finishes
// onboarding. Unreachable before successful OTP verification.
func CompleteProfile(ctx *gin.Context) {
	var profileData struct {
		UserID       uint   `json:"userId" binding:"required"`
		MobileNumber string `json:"mobileNumber" binding:"required"`
		AddressLine1 string `json:"addressLine1" binding:"required"`
		Suburb       string `json:"suburb" binding:"required"`
		State        string `json:"state" binding:"required"`
		ZipCode      string `json:"zipCode" binding:"required"`
		Country      string `json:"country"`
	}
	if err := ctx.ShouldBindJSON(&profileData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, profileData.UserID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	if user.OnboardingState != models.OnboardingVerified {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email must be verified before completing the profile")
		return
	}

	if result := initializers.DB.Model(&user).Updates(map[string]any{
		"mobile_number":    profileData.MobileNumber,
		"address_line1":    profileData.AddressLine1,
		"suburb":           profileData.Suburb,
		"state":            profileData.State,
		"zip_code":         profileData.ZipCode,
		"country":          profileData.Country,
		"onboarding_state": models.OnboardingProfileComplete,
		"status":           models.UserStatusActive,
	}); result.Error != nil {
		log.Println("Profile completion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile completed. The account is now active."})
}

func UpdateUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var updateData struct {
		FirstName    string `json:"firstName" binding:"required"`
		LastName     string `json:"lastName" binding:"required"`
		Role         string `json:"role" binding:"required"`
		MobileNumber string `json:"mobileNumber"`
		AddressLine1 string `json:"addressLine1"`
		Suburb       string `json:"suburb"`
		State        string `json:"state"`
		ZipCode      string `json:"zipCode"`
		Country      string `json:"country"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if !models.IsValidRole(updateData.Role) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid role")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	if result := initializers.DB.Model(&user).Updates(map[string]any{
		"first_name":    updateData.FirstName,
		"last_name":     updateData.LastName,
		"role":          updateData.Role,
		"mobile_number": updateData.MobileNumber,
		"address_line1": updateData.AddressLine1,
		"suburb":        updateData.Suburb,
		"state":         updateData.State,
		"zip_code":      updateData.ZipCode,
		"country":       updateData.Country,
	}); result.Error != nil {
		log.Println("User update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User updated successfully."})
}

func UpdateUserStatus(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if statusData.Status != models.UserStatusActive && statusData.Status != models.UserStatusInactive {
		sendErrorResponse(ctx, http.StatusBadRequest, "Status must be active or inactive")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userId).Update("status", statusData.Status)
	if result.Error != nil {
		log.Println("User status update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User status updated successfully."})
}

func DeleteUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	result := initializers.DB.Delete(&models.User{}, userId)
	if result.Error != nil {
		log.Println("User deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted successfully."})
}

func GetUserStats(ctx *gin.Context) {
	var total, active, verified, customers int64

	initializers.DB.Model(&models.User{}).Count(&total)
	initializers.DB.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&active)
	initializers.DB.Model(&models.User{}).Where("verified = ?", true).Count(&verified)
	initializers.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&customers)

	ctx.JSON(http.StatusOK, gin.H{
		"totalUsers":    total,
		"activeUsers":   active,
		"verifiedUsers": verified,
		"customers":     customers,
	})
}
