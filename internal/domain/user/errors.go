package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserInactive           = errors.New("user account is deactivated")
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrInvalidUserRole        = errors.New("invalid user role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
