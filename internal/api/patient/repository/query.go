package patientRepository

const (
	queryCreatePatient = `
INSERT INTO patients (id, doctor_id, name, medical_record_number, birth_date, gender, phone_number, notes, created_at)
VALUES (:id, :doctor_id, :name, :medical_record_number, :birth_date, :gender, :phone_number, :notes, :created_at)`

	queryGetPatientByID = `
SELECT id, doctor_id, name, medical_record_number, birth_date, gender, phone_number, notes, created_at, updated_at
FROM patients
    WHERE id = :id`

	queryGetPatientsByDoctorID = `
SELECT id, doctor_id, name, medical_record_number, birth_date, gender, phone_number, notes, created_at, updated_at
FROM patients
    WHERE doctor_id = :doctor_id
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryCountPatientsByDoctorID = `
SELECT COUNT(*) FROM patients
    WHERE doctor_id = :doctor_id`

	queryUpdatePatient = `
UPDATE patients
SET name = :name,
    birth_date = :birth_date,
    gender = :gender,
    phone_number = :phone_number,
    notes = :notes,
    updated_at = :updated_at
WHERE id = :id`

	queryDeletePatient = `
DELETE FROM patients
WHERE id = :id`
)
