package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// GetAccount looks an account up by primary key.
func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.First(&account, id).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithUsername(username string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("LOWER(username) = LOWER(?)", username).
		First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := database.C.Order("username ASC").Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}

// SignUp checks username availability before anything else, then creates the
// account in a single write. The username pre-check is case-insensitive; the
// unique index is the backstop for the race it leaves open.
func SignUp(email, password, username string) (models.Account, error) {
	var account models.Account

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := GetAccountWithUsername(username); err == nil {
		return account, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, fmt.Errorf("unable to check username availability: %v", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return account, fmt.Errorf("unable to process password: %v", err)
	}

	account = models.Account{
		Email:        email,
		Username:     username,
		Avatar:       DefaultAvatar(username),
		PasswordHash: hash,
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func SignIn(email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("LOWER(email) = LOWER(?)", email).
		First(&account).Error; err != nil {
		return account, ErrInvalidCredentials
	}
	if !VerifyPassword(account.PasswordHash, password) {
		return account, ErrInvalidCredentials
	}

	return account, nil
}

// UpdateProfile applies a partial update and returns the reloaded record.
func UpdateProfile(account models.Account, fields map[string]any) (models.Account, error) {
	allowed := map[string]bool{"username": true, "avatar": true}
	updates := make(map[string]any)
	for k, v := range fields {
		if allowed[k] {
			updates[k] = v
		}
	}

	if raw, ok := updates["username"].(string); ok {
		username := strings.ToLower(strings.TrimSpace(raw))
		if other, err := GetAccountWithUsername(username); err == nil && other.ID != account.ID {
			return account, ErrUsernameTaken
		}
		updates["username"] = username
	}

	if len(updates) > 0 {
		if err := database.C.Model(&account).Updates(updates).Error; err != nil {
			return account, err
		}
	}

	account, err := GetAccount(account.ID)
	if err == nil {
		PublishEvent(models.UnifiedEvent{
			Type:    models.EventAccountUpdated,
			Payload: account,
		})
	}
	return account, err
}

// DefaultAvatar derives a deterministic placeholder avatar URL from the
// username, same generator the frontend expects.
func DefaultAvatar(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username)
}
