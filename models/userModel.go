package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleManager  = "manager"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	OnboardingOtpSent         = "otp_sent"
	OnboardingVerified        = "verified"
	OnboardingProfileComplete = "profile_complete"
)

type User struct {
	gorm.Model
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email" gorm:"uniqueIndex"`
	Password        string     `json:"-"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	Verified        bool       `json:"verified"`
	OnboardingState string     `json:"onboardingState"`
	Otp             string     `json:"-"`
	OtpExpiresAt    *time.Time `json:"-"`
	MobileNumber    string     `json:"mobileNumber"`
	AddressLine1    string     `json:"addressLine1"`
	Suburb          string     `json:"suburb"`
	State           string     `json:"state"`
	ZipCode         string     `json:"zipCode"`
	Country         string     `json:"country"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin || role == RoleManager
}
