package adminService

import (
	"context"

	"DentScanGolang/internal/api/admin"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) ListUsers(c context.Context, search string, page int, limit int) (admin.UserListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return admin.UserListResponse{}, err
	}

	users, err := repo.Users.SearchUsers(c, search, limit, (page-1)*limit)
	if err != nil {
		return admin.UserListResponse{}, err
	}

	total, err := repo.Users.CountUsers(c, search)
	if err != nil {
		return admin.UserListResponse{}, err
	}

	res := admin.UserListResponse{
		Users: make([]admin.UserResponse, 0, len(users)),
		Page:  page,
		Limit: limit,
		Total: total,
	}
	for _, user := range users {
		res.Users = append(res.Users, makeUserResponse(user))
	}

	return res, nil
}

func (s *userDomainImpl) SetUserActive(c context.Context, adminUser entity.UserLoginData, userID string, active bool) (admin.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if adminUser.ID == userID {
		return admin.UserResponse{}, admin.ErrCannotModifySelf
	}

	repo, err := s.authRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return admin.UserResponse{}, err
	}
	defer repo.Rollback()

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return admin.UserResponse{}, err
	}

	if err := repo.Users.SetActive(c, userID, active); err != nil {
		return admin.UserResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return admin.UserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"active":     active,
		"admin_id":   adminUser.ID,
	}).Info("User account status changed")

	user.IsActive = active
	return makeUserResponse(user), nil
}

func makeUserResponse(user entity.User) admin.UserResponse {
	return admin.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role,
		ClinicName:     user.ClinicName,
		Specialization: user.Specialization,
		IsVerified:     user.IsVerified,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
	}
}
