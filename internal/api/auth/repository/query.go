package authRepository

const (
	queryCreateUser = `
INSERT INTO users (first_name, last_name, email, password, created_at)
VALUES (:first_name, :last_name, :email, :password, :created_at)
RETURNING id`

	queryGetByEmail = `
SELECT id, first_name, last_name, email, password, created_at
FROM users
    WHERE email = :email
LIMIT 1`
)
