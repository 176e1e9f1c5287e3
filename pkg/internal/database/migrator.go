package database

import (
	"github.com/relaychat/relay/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Channel{},
	&models.Message{},
	&models.Reaction{},
	&models.InviteCode{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
