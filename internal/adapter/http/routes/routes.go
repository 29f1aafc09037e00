package routes

import (
	_ "catering_portal/docs" // This will be auto-generated
	"catering_portal/internal/adapter/http/handlers"
	repository2 "catering_portal/internal/adapter/persistence/repository"
	"catering_portal/internal/domain/workflow"
	"catering_portal/internal/infrastructure/database"
	"catering_portal/internal/infrastructure/notifications"
	"catering_portal/internal/infrastructure/payments"
	"catering_portal/internal/usecase"
	"catering_portal/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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
		logrus.WithError(err).Fatal("Failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)

	var notifier interfaces.INotificationDispatcher
	natsDispatcher, err := notifications.NewNATSDispatcher(os.Getenv("NATS_URL"))
	if err != nil {
		logrus.WithError(err).Warn("NATS dispatcher not configured; notifications are log-only")
		notifier = notifications.LogDispatcher{}
	} else {
		notifier = natsDispatcher
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logrus.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	validator := workflow.NewValidator(workflow.DefaultTable())

	transitionUseCase := usecase.NewTransitionUseCase(validator, quoteRepo, invoiceRepo, auditRepo, notifier)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, quoteRepo, milestoneRepo)
	reconcilerUseCase := usecase.NewPaymentReconcilerUseCase(invoiceRepo, quoteRepo, milestoneRepo, transitionUseCase)
	paymentUseCase := usecase.NewMilestonePaymentUseCase(milestoneRepo, invoiceRepo, paymentGateway, reconcilerUseCase)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, transitionUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, transitionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, reconcilerUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCateringRoutes(v1, quoteHandler, invoiceHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("recovered", recovered).Error("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
