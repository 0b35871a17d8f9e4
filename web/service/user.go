package service

import (
	"microblog/database"
	"microblog/database/model"
	"microblog/logger"
	"microblog/util/common"
	"microblog/util/crypto"
	"microblog/web/entity"

	"gorm.io/gorm"
)

const minPasswordLength = 6

// UserService manages the single admin identity: login verification and
// credential changes.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) getUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the given credentials. An unknown username and a
// wrong password produce the same error so usernames cannot be enumerated.
func (s *UserService) Authenticate(username, password string) error {
	user, err := s.getUserByUsername(username)
	if database.IsNotFound(err) {
		return common.NewAuthError("invalid credentials")
	} else if err != nil {
		logger.Warning("authenticate user err:", err)
		return err
	}
	if !crypto.CheckPasswordHash(user.Password, password) {
		return common.NewAuthError("invalid credentials")
	}
	return nil
}

// CountUsers returns the number of user rows. Used by the stats endpoint.
func (s *UserService) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(model.User{}).Count(&count).Error
	return count, err
}

// UpdateProfile verifies the current credentials and applies a username
// and/or password change. Each precondition short-circuits, so no mutation is
// applied once any check fails. Username and password updates are applied
// independently; changing only one leaves the other untouched. Returns the
// effective username.
func (s *UserService) UpdateProfile(form *entity.UpdateProfileForm) (string, error) {
	if form.CurrentUsername == "" || form.CurrentPassword == "" {
		return "", common.NewValidationError("current username and password are required")
	}

	user, err := s.getUserByUsername(form.CurrentUsername)
	if database.IsNotFound(err) {
		return "", common.NewNotFoundError("user not found")
	} else if err != nil {
		return "", err
	}

	if !crypto.CheckPasswordHash(user.Password, form.CurrentPassword) {
		return "", common.NewAuthError("current password is incorrect")
	}

	changeUsername := form.NewUsername != "" && form.NewUsername != form.CurrentUsername
	if changeUsername {
		var count int64
		err = s.db.Model(model.User{}).
			Where("username = ?", form.NewUsername).
			Count(&count).
			Error
		if err != nil {
			return "", err
		}
		if count > 0 {
			return "", common.NewValidationError("username already exists")
		}
	}

	if form.NewPassword != "" {
		if form.ConfirmPassword != "" && form.ConfirmPassword != form.NewPassword {
			return "", common.NewValidationError("passwords do not match")
		}
		if len(form.NewPassword) < minPasswordLength {
			return "", common.NewValidationError("password must be at least 6 characters")
		}
	}

	if changeUsername {
		err = s.db.Model(model.User{}).
			Where("id = ?", user.Id).
			Update("username", form.NewUsername).
			Error
		if err != nil {
			return "", err
		}
	}

	if form.NewPassword != "" {
		hashedPassword, err := crypto.HashPasswordAsBcrypt(form.NewPassword)
		if err != nil {
			return "", err
		}
		err = s.db.Model(model.User{}).
			Where("id = ?", user.Id).
			Update("password", hashedPassword).
			Error
		if err != nil {
			return "", err
		}
	}

	if changeUsername {
		return form.NewUsername, nil
	}
	return form.CurrentUsername, nil
}
