package model

import "time"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldUsername    = "username"
	FieldCreatedDate = "created_date"

	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User is a staff account. CanModify gates client record updates; CanDelete
// is stored for future use and is not consulted anywhere yet.
type User struct {
	ID          string     `db:"id"`
	Username    string     `db:"username"`
	FullName    string     `db:"full_name"`
	Role        string     `db:"role"`
	CanModify   bool       `db:"can_modify"`
	CanDelete   bool       `db:"can_delete"`
	Email       *string    `db:"email"`
	CreatedDate time.Time  `db:"created_date"`
	LastLogin   *time.Time `db:"last_login"`
}
