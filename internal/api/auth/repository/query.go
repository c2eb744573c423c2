package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, password, phone_number, role, clinic_name, specialization, license_number, is_verified, is_active, created_at)
VALUES (:id, :email, :name, :password, :phone_number, :role, :clinic_name, :specialization, :license_number, :is_verified, :is_active, :created_at)`

	queryGetByID = `
SELECT id, email, name, password, phone_number, role, clinic_name, specialization,
       license_number, profile_photo_url, is_verified, is_active, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, password, phone_number, role, clinic_name, specialization,
       license_number, profile_photo_url, is_verified, is_active, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateProfile = `
UPDATE users
SET name = :name,
    phone_number = :phone_number,
    clinic_name = :clinic_name,
    specialization = :specialization,
    license_number = :license_number,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateProfilePhoto = `
UPDATE users
SET profile_photo_url = :profile_photo_url,
    updated_at = :updated_at
WHERE id = :id`

	querySetVerified = `
UPDATE users
SET is_verified = TRUE,
    updated_at = :updated_at
WHERE email = :email`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`

	querySearchUsers = `
SELECT id, email, name, password, phone_number, role, clinic_name, specialization,
       license_number, profile_photo_url, is_verified, is_active, created_at, updated_at
FROM users
WHERE (:search = '' OR name ILIKE '%' || :search || '%' OR email ILIKE '%' || :search || '%')
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryCountUsers = `
SELECT COUNT(id)
FROM users
WHERE (:search = '' OR name ILIKE '%' || :search || '%' OR email ILIKE '%' || :search || '%')`

	querySetActive = `
UPDATE users
SET is_active = :is_active,
    updated_at = :updated_at
WHERE id = :id`
)
