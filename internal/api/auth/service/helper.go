package authService

import (
	"DentScanGolang/internal/api/auth"
	"DentScanGolang/internal/entity"
)

func GetUserDifferenceData(DbUser entity.User, NewUser auth.UpdateProfileRequest) entity.User {
	// Start with a copy of all existing user data
	result := DbUser

	// Then only override the fields that changed
	if NewUser.Name != "" && NewUser.Name != DbUser.Name {
		result.Name = NewUser.Name
	}

	if NewUser.PhoneNumber != "" && NewUser.PhoneNumber != DbUser.PhoneNumber {
		result.PhoneNumber = NewUser.PhoneNumber
	}

	if NewUser.ClinicName != "" && NewUser.ClinicName != DbUser.ClinicName {
		result.ClinicName = NewUser.ClinicName
	}

	if NewUser.Specialization != "" && NewUser.Specialization != DbUser.Specialization {
		result.Specialization = NewUser.Specialization
	}

	if NewUser.LicenseNumber != "" && NewUser.LicenseNumber != DbUser.LicenseNumber {
		result.LicenseNumber = NewUser.LicenseNumber
	}

	// Make sure we preserve the IsVerified status
	result.IsVerified = DbUser.IsVerified

	return result
}

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}
}

func MakeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PhoneNumber:     user.PhoneNumber,
		Role:            user.Role,
		ClinicName:      user.ClinicName,
		Specialization:  user.Specialization,
		LicenseNumber:   user.LicenseNumber,
		ProfilePhotoURL: user.ProfilePhotoURL,
		IsVerified:      user.IsVerified,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
