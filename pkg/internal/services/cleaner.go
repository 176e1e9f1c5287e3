package services

import (
	"github.com/rs/zerolog/log"
)

func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up entire database...")

	DeactivateDeadInviteCodes()

	log.Debug().Msg("Clean up entire database accomplished.")
}
