package authService

import (
	"context"
	"mime/multipart"
	"time"

	"DentScanGolang/internal/api/auth"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ulid, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newUser := entity.User{
		ID:             ulid,
		Email:          req.Email,
		Name:           req.Name,
		Password:       hashedPassword,
		PhoneNumber:    req.PhoneNumber,
		Role:           string(entity.RoleDoctor),
		ClinicName:     req.ClinicName,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		IsVerified:     false,
	}

	if err := repo.Users.CreateUser(c, newUser); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    ulid,
	}).Info("User registered successfully")

	return nil
}

func (s *userDomainImpl) GetProfile(c context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(user), nil
}

func (s *userDomainImpl) UpdateProfile(c context.Context, user entity.UserLoginData, req auth.UpdateProfileRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	dbUser, err := repo.Users.GetByID(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return err
	}

	updatedUser := GetUserDifferenceData(dbUser, req)

	if err := repo.Users.UpdateProfile(c, updatedUser); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user profile")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User profile updated successfully")

	return nil
}

func (s *userDomainImpl) UpdateProfilePhoto(c context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile photo file")
		return nil, auth.ErrInvalidFileType
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Users.GetByID(c, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return nil, err
	}

	photoURL, err := s.s3Client.UploadFile(photoFile, "profile-photos")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo to S3")
		return nil, auth.ErrFailedToUploadFile
	}

	if err := repo.Users.UpdateProfilePhoto(c, userID, photoURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update profile photo URL")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Profile photo updated successfully")

	return &auth.ProfilePhotoResponse{
		ID:              userID,
		ProfilePhotoURL: photoURL,
	}, nil
}

func (s *userDomainImpl) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByID(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return err
	}

	if err := repo.Users.DeleteUser(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User deleted successfully")

	return nil
}
