package service

import (
	"testing"

	"microblog/database/model"
	"microblog/util/common"
	"microblog/util/crypto"
	"microblog/web/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	// seeded admin account
	err := service.Authenticate("admin", "password")
	assert.NoError(t, err)

	wrongPass := service.Authenticate("admin", "nope")
	assert.Error(t, wrongPass)
	assert.True(t, common.IsAuthError(wrongPass))

	unknownUser := service.Authenticate("ghost", "password")
	assert.Error(t, unknownUser)
	assert.True(t, common.IsAuthError(unknownUser))

	// same generic message for both failure modes
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestUpdateProfileRequiresCurrentCredentials(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.UpdateProfile(&entity.UpdateProfileForm{})
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	_, err = service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
	})
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "ghost",
		CurrentPassword: "password",
	})
	assert.Error(t, err)
	assert.True(t, common.IsNotFoundError(err))
}

func TestUpdateProfileWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "nope",
		NewUsername:     "other",
	})
	assert.Error(t, err)
	assert.True(t, common.IsAuthError(err))

	// no partial mutation was applied
	err = service.Authenticate("admin", "password")
	assert.NoError(t, err)
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	hash, err := crypto.HashPasswordAsBcrypt("secret123")
	assert.NoError(t, err)
	err = db.Create(&model.User{Username: "taken", Password: hash}).Error
	assert.NoError(t, err)

	_, err = service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "password",
		NewUsername:     "taken",
	})
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// the failed rename did not touch the row
	err = service.Authenticate("admin", "password")
	assert.NoError(t, err)
}

func TestUpdateProfilePasswordRules(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "password",
		NewPassword:     "short",
	})
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	_, err = service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "password",
		NewPassword:     "longenough",
		ConfirmPassword: "different",
	})
	assert.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestUpdateProfileUsernameOnly(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	username, err := service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "password",
		NewUsername:     "editor",
	})
	assert.NoError(t, err)
	assert.Equal(t, "editor", username)

	// password untouched
	err = service.Authenticate("editor", "password")
	assert.NoError(t, err)
	err = service.Authenticate("admin", "password")
	assert.Error(t, err)
}

func TestUpdateProfilePasswordOnly(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	username, err := service.UpdateProfile(&entity.UpdateProfileForm{
		CurrentUsername: "admin",
		CurrentPassword: "password",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "admin", username)

	err = service.Authenticate("admin", "newsecret")
	assert.NoError(t, err)
	err = service.Authenticate("admin", "password")
	assert.Error(t, err)
}
