package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrInviteNotFound = errors.New("invite code not found or no longer usable")

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 8

	inviteDefaultUses = 5
	inviteDefaultTTL  = 7 * 24 * time.Hour
)

// GenerateInviteCode samples uniformly from the invite alphabet. Codes are
// shared by humans over trusted channels, so math/rand is enough here.
func GenerateInviteCode(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte(inviteCodeAlphabet[rand.Intn(len(inviteCodeAlphabet))])
	}
	return sb.String()
}

func NewInviteCode(user models.Account) (models.InviteCode, error) {
	invite := models.InviteCode{
		Code:          GenerateInviteCode(inviteCodeLength),
		ExpiresAt:     time.Now().Add(inviteDefaultTTL),
		UsesRemaining: inviteDefaultUses,
		IsActive:      true,
		AccountID:     user.ID,
	}

	if err := database.C.Create(&invite).Error; err != nil {
		return invite, err
	}

	return invite, nil
}

// GetUsableInviteCode resolves a code iff it is active, unexpired, and has
// uses left. Anything else, including a code that never existed, is the same
// not-found answer.
func GetUsableInviteCode(code string) (models.InviteCode, error) {
	var invite models.InviteCode
	if err := database.C.
		Where("code = ?", code).
		Where("is_active = ?", true).
		Where("uses_remaining > ?", 0).
		Where("expires_at > ?", time.Now()).
		First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invite, ErrInviteNotFound
		}
		return invite, err
	}

	return invite, nil
}

// RedeemInviteCode signs the newcomer up and consumes one use of the code in
// the same transaction, so a failed account insert never burns an invite.
func RedeemInviteCode(code, email, password, username string) (models.Account, error) {
	var account models.Account

	invite, err := GetUsableInviteCode(code)
	if err != nil {
		return account, err
	}

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

	err = database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		return tx.Model(&models.InviteCode{}).
			Where("id = ?", invite.ID).
			Update("uses_remaining", gorm.Expr("uses_remaining - 1")).Error
	})
	if err != nil {
		return account, err
	}

	log.Info().Str("code", invite.Code).Uint("account", account.ID).
		Msg("Invite code redeemed.")

	return account, nil
}

// DeactivateDeadInviteCodes flips is_active off for codes that expired or ran
// out of uses. Called by the hourly maintenance job.
func DeactivateDeadInviteCodes() {
	tx := database.C.Model(&models.InviteCode{}).
		Where("is_active = ?", true).
		Where("expires_at <= ? OR uses_remaining <= ?", time.Now(), 0).
		Update("is_active", false)
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when deactivating dead invite codes...")
		return
	}
	if tx.RowsAffected > 0 {
		log.Debug().Int64("affected", tx.RowsAffected).Msg("Deactivated dead invite codes.")
	}
}
