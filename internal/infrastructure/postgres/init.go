package postgres

import (
	"log"

	"github.com/viaurbana/ooh-campaign-service/internal/config"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/logger"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CampaignConfig) *gorm.DB {
	dsn := cfg.CampaignDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ProposalModel{},
		&models.FaceModel{},
		&models.CriteriaRuleModel{},
		&models.InventorySlotModel{},
		&models.ReservationModel{},
		&models.ApprovalTaskModel{},
		&models.BillingPeriodModel{},
		&logger.DecisionEvent{},
	)

	// Group ids must survive restarts and concurrent batches.
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS reservation_group_seq").Error; err != nil {
		log.Fatalf("failed to create group id sequence: %v\n", err.Error())
	}

	return db
}
