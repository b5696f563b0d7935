package routes

import (
	"context"
	"log"
	"strconv"

	_ "gestao_terceiros/docs" // This will be auto-generated
	"gestao_terceiros/internal/adapter/http/handlers"
	repository2 "gestao_terceiros/internal/adapter/persistence/repository"
	"gestao_terceiros/internal/infrastructure/database"
	"gestao_terceiros/internal/infrastructure/mail"
	"gestao_terceiros/internal/infrastructure/storage"
	"gestao_terceiros/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewContractingRequestDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	supplierRepo := repository2.NewSupplierDynamoRepository(ddb)
	bulletinRepo := repository2.NewBulletinDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	eventRepo := repository2.NewEventDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	calendarRepo := repository2.NewPaymentCalendarDynamoRepository(ddb)
	directory := repository2.NewDirectoryDynamoRepository(ddb)

	mailer, err := mail.NewSESMailer(ctx)
	if err != nil {
		log.Fatalf("Mailer not configured: %v", err)
	}
	docStore, err := storage.NewMinioStore(ctx)
	if err != nil {
		log.Fatalf("Document store not configured: %v", err)
	}

	materializerUseCase := usecase.NewMaterializerUseCase(contractRepo, requestRepo, bulletinRepo, proposalRepo, eventRepo, directory, mailer)
	lifecycleUseCase := usecase.NewRequestLifecycleUseCase(requestRepo, directory, materializerUseCase, mailer)
	screeningUseCase := usecase.NewScreeningUseCase(requestRepo, proposalRepo, supplierRepo, directory, mailer)
	bulletinUseCase := usecase.NewBulletinUseCase(bulletinRepo, requestRepo, directory, materializerUseCase, mailer)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, contractRepo, supplierRepo, directory, mailer)
	ledgerUseCase := usecase.NewLedgerUseCase(eventRepo, calendarRepo, contractRepo, requestRepo)
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo, directory)

	requestHandler := handlers.NewContractingRequestHandler(lifecycleUseCase)
	screeningHandler := handlers.NewScreeningHandler(screeningUseCase)
	bulletinHandler := handlers.NewBulletinHandler(bulletinUseCase)
	contractHandler := handlers.NewContractHandler(materializerUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	documentHandler := handlers.NewDocumentHandler(docStore)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractingRoutes(v1, requestHandler, screeningHandler, bulletinHandler, contractHandler)
	addOperationRoutes(v1, orderHandler, ledgerHandler, supplierHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
