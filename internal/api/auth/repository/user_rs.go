package authRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"DentScanGolang/internal/api/auth"
	"DentScanGolang/internal/entity"
	contextPkg "DentScanGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID              sql.NullString `db:"id"`
	Email           sql.NullString `db:"email"`
	Name            sql.NullString `db:"name"`
	Password        sql.NullString `db:"password"`
	PhoneNumber     sql.NullString `db:"phone_number"`
	Role            sql.NullString `db:"role"`
	ClinicName      sql.NullString `db:"clinic_name"`
	Specialization  sql.NullString `db:"specialization"`
	LicenseNumber   sql.NullString `db:"license_number"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	IsVerified      bool           `db:"is_verified"`
	IsActive        bool           `db:"is_active"`
	CreatedAt       sql.NullTime   `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"password":       user.Password,
		"phone_number":   user.PhoneNumber,
		"role":           user.Role,
		"clinic_name":    user.ClinicName,
		"specialization": user.Specialization,
		"license_number": user.LicenseNumber,
		"is_verified":    user.IsVerified,
		"is_active":      true,
		"created_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" && pqErr.Constraint == "users_email_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Email already exists")
				return auth.ErrEmailAlreadyExists
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")

		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var user UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var user UserDB

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByEmail no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) UpdateProfile(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             user.ID,
		"name":           user.Name,
		"phone_number":   user.PhoneNumber,
		"clinic_name":    user.ClinicName,
		"specialization": user.Specialization,
		"license_number": user.LicenseNumber,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProfile, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfile named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfile execution err")
		return err
	}

	return nil
}

func (r *userRepository) UpdateProfilePhoto(ctx context.Context, id string, photoURL string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                id,
		"profile_photo_url": photoURL,
		"updated_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProfilePhoto, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfilePhoto named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfilePhoto execution err")
		return err
	}

	return nil
}

func (r *userRepository) SetVerified(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"email":      email,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetVerified, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetVerified named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetVerified execution err")
		return err
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser execution err")
		return err
	}

	return nil
}

func (r *userRepository) SearchUsers(ctx context.Context, search string, limit int, offset int) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"search": search,
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(querySearchUsers, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchUsers named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchUsers execution err")
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var user UserDB
		if err := rows.StructScan(&user); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("SearchUsers row scan err")
			return nil, err
		}
		users = append(users, r.makeUser(user))
	}

	return users, rows.Err()
}

func (r *userRepository) CountUsers(ctx context.Context, search string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"search": search,
	}

	query, args, err := sqlx.Named(queryCountUsers, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountUsers named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountUsers execution err")
		return 0, err
	}

	return total, nil
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"is_active":  active,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetActive, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetActive named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetActive execution err")
		return err
	}

	return nil
}

func (r *userRepository) makeUser(user UserDB) entity.User {
	var createdAt, updatedAt time.Time

	if user.CreatedAt.Valid {
		createdAt = user.CreatedAt.Time
	}
	if user.UpdatedAt.Valid {
		updatedAt = user.UpdatedAt.Time
	}

	return entity.User{
		ID:              user.ID.String,
		Email:           user.Email.String,
		Name:            user.Name.String,
		Password:        user.Password.String,
		PhoneNumber:     user.PhoneNumber.String,
		Role:            user.Role.String,
		ClinicName:      user.ClinicName.String,
		Specialization:  user.Specialization.String,
		LicenseNumber:   user.LicenseNumber.String,
		ProfilePhotoURL: user.ProfilePhotoURL.String,
		IsVerified:      user.IsVerified,
		IsActive:        user.IsActive,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
