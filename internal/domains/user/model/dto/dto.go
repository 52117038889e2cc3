package dto

import (
	"cardex/internal/domains/user/model"
	"cardex/shared/constant"
	"cardex/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username  string `json:"username"   validate:"required,max=100"`
	FullName  string `json:"full_name"  validate:"required,max=200"`
	Role      string `json:"role"       validate:"required,oneof=admin manager staff"`
	Email     string `json:"email"      validate:"omitempty,email,max=200"`
	CanModify bool   `json:"can_modify"`
	CanDelete bool   `json:"can_delete"`
}

func (c *CreateUserRequest) ToModel() model.User {
	var email *string
	if c.Email != "" {
		email = &c.Email
	}

	return model.User{
		ID:          uuid.NewString(),
		Username:    c.Username,
		FullName:    c.FullName,
		Role:        c.Role,
		CanModify:   c.CanModify,
		CanDelete:   c.CanDelete,
		Email:       email,
		CreatedDate: timezone.Now(),
	}
}

// UserResponse leaves the capability flags out of the roster payload.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	CreatedDate string `json:"created_date"`
	LastLogin   string `json:"last_login"`
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.FullName = mod.FullName
	r.Role = mod.Role
	r.CreatedDate = mod.CreatedDate.Format(constant.DateTimeFormat)

	if mod.Email != nil {
		r.Email = *mod.Email
	}

	if mod.LastLogin != nil {
		r.LastLogin = mod.LastLogin.Format(constant.DateTimeFormat)
	}
}

type GetUsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.Success = true

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
