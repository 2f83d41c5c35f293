package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/viaurbana/ooh-campaign-service/internal/config"
	"github.com/viaurbana/ooh-campaign-service/internal/delivery/httpapi"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/kafka"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/logger"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/metrics"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/migrate"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/repository"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/allocation"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/authorization"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/criteria"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.CampaignDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.CampaignDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init event publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	topic := cfg.KafkaService.Topic
	if topic == "" {
		topic = "campaign-events"
	}
	publisher := kafka.NewKafkaPublisher(brokers, topic)

	// Init metrics
	campaignMetrics := metrics.NewCampaignMetrics()

	// Init repositories
	faceRepo := repository.NewDefaultFaceRepository(db)
	criteriaRepo := repository.NewDefaultCriteriaRepository(db)
	slotRepo := repository.NewDefaultSlotRepository(db)
	reservationRepo := repository.NewDefaultReservationRepository(db)
	taskRepo := repository.NewDefaultApprovalTaskRepository(db)
	proposalRepo := repository.NewDefaultProposalRepository(db)
	periodRepo := repository.NewDefaultPeriodRepository(db)

	// Init criteria evaluator
	evaluator := criteria.NewDefaultCriteriaEvaluator(criteriaRepo)

	// Init authorization usecase
	authUsecase := authorization.NewDefaultAuthorizationUsecase(
		faceRepo,
		taskRepo,
		proposalRepo,
		evaluator,
		publisher,
		logger.NewPGDecisionAuditLogger(db),
		campaignMetrics,
	)
	// Init allocation usecase
	allocUsecase := allocation.NewDefaultAllocationUsecase(
		faceRepo,
		slotRepo,
		reservationRepo,
		publisher,
		campaignMetrics,
	)

	// HTTP server
	router := gin.Default()
	handler := httpapi.NewCampaignHandler(authUsecase, allocUsecase, periodRepo)
	handler.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
