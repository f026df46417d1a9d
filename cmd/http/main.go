package main

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/delivery/http/routers"
	"careportal-service/internal/app/drivers/database"
	"careportal-service/internal/app/drivers/logger"
	"careportal-service/internal/app/drivers/messaging"
	"careportal-service/internal/app/drivers/storage"
	"careportal-service/internal/app/services/backend"
	appointmentsBackend "careportal-service/internal/app/services/backend/appointments"
	authBackend "careportal-service/internal/app/services/backend/auth"
	chatbotBackend "careportal-service/internal/app/services/backend/chatbot"
	inventoryBackend "careportal-service/internal/app/services/backend/inventory"
	laboratoryBackend "careportal-service/internal/app/services/backend/laboratory"
	patientsBackend "careportal-service/internal/app/services/backend/patients"
	paymentsBackend "careportal-service/internal/app/services/backend/payments"
	prescriptionsBackend "careportal-service/internal/app/services/backend/prescriptions"
	referencesBackend "careportal-service/internal/app/services/backend/references"
	"careportal-service/internal/app/services/core/appointments"
	"careportal-service/internal/app/services/core/auth"
	"careportal-service/internal/app/services/core/chatbot"
	"careportal-service/internal/app/services/core/inventory"
	"careportal-service/internal/app/services/core/laboratory"
	"careportal-service/internal/app/services/core/patients"
	"careportal-service/internal/app/services/core/payments"
	"careportal-service/internal/app/services/core/prescriptions"
	"careportal-service/internal/app/services/shared/events"
	"careportal-service/internal/app/services/shared/locker"
	"careportal-service/internal/app/services/shared/metrics"
	"careportal-service/internal/app/services/shared/redis"
	"careportal-service/internal/app/services/shared/refcache"
	"careportal-service/internal/app/services/shared/session"
	minioStorage "careportal-service/internal/app/services/shared/storage"
	"careportal-service/internal/app/services/shared/viewstate"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/normalize"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, logger)

	rabbitMQConnection, err := messaging.NewRabbitMQ(driverConfig, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, appointment events will be dropped", zap.Error(err))
		rabbitMQConnection = nil
	}

	minioClient := storage.NewMinio(driverConfig, internalConfig, logger)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         logger,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Location:       location,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), internalConfig.App.ShutdownTimeout())
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	logger := bootstrap.Logger

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	backendMetrics := metrics.NewBackendMetrics(registry)
	viewMetrics := metrics.NewViewMetrics(registry)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, logger)
	sessionService := session.NewSessionService(redisRepository)
	viewStateStore := viewstate.NewViewStateStore(
		logger,
		redisRepository,
		lockerService,
		internalConfig.App.ViewStateTTL(),
		internalConfig.App.ViewStateLockTTL(),
	)

	// Events
	var eventPublisher contracts.EventPublisher = events.NewNoopEventPublisher(logger)
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewEventPublisher(logger, bootstrap.RabbitMQ, internalConfig.RabbitMQ.AppointmentEventQueue)
		if err != nil {
			logger.Warn("Event publisher unavailable, appointment events will be dropped", zap.Error(err))
		} else {
			eventPublisher = publisher
		}
	}
	bootstrap.PublisherStop = func() {
		if err := eventPublisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}

	// Backend
	normalizer := normalize.NewNormalizer(logger, bootstrap.Location)
	backendClient := backend.NewClient(
		internalConfig.Backend.BaseUrl,
		internalConfig.App.BackendTimeout(),
		logger,
		backendMetrics,
	)
	referenceBackendClient := referencesBackend.NewReferenceBackendClient(backendClient, normalizer)
	authBackendClient := authBackend.NewAuthBackendClient(backendClient, normalizer)
	appointmentBackendClient := appointmentsBackend.NewAppointmentBackendClient(backendClient, normalizer)
	prescriptionBackendClient := prescriptionsBackend.NewPrescriptionBackendClient(backendClient, normalizer)
	laboratoryBackendClient := laboratoryBackend.NewLaboratoryBackendClient(backendClient, normalizer)
	inventoryBackendClient := inventoryBackend.NewInventoryBackendClient(backendClient, normalizer)
	patientBackendClient := patientsBackend.NewPatientBackendClient(backendClient, normalizer)
	paymentBackendClient := paymentsBackend.NewPaymentBackendClient(backendClient, normalizer)
	chatbotBackendClient := chatbotBackend.NewChatbotBackendClient(backendClient)

	// Reference lists
	referenceCache := refcache.NewReferenceCache(
		logger,
		redisRepository,
		referenceBackendClient,
		time.Duration(internalConfig.Refcache.TTLInMinutes)*time.Minute,
		internalConfig.Backend.ServiceToken,
	)
	refcacheWorker := refcache.NewWorker(logger, internalConfig.Refcache.CronSpec, lockerService, referenceCache)
	refcacheWorker.Start(context.Background())
	bootstrap.RefcacheWorkerStop = refcacheWorker.Stop

	// Storage
	attachmentStorage := minioStorage.NewMinioStorage(bootstrap.Minio, logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(authBackendClient, sessionService, internalConfig, logger)
	appointmentListUsecase := appointments.NewAppointmentListUsecase(
		appointmentBackendClient,
		viewStateStore,
		eventPublisher,
		viewMetrics,
		bootstrap.Location,
		logger,
	)
	bookingUsecase := appointments.NewBookingUsecase(
		appointmentBackendClient,
		referenceCache,
		viewStateStore,
		appointmentListUsecase,
		eventPublisher,
		viewMetrics,
		internalConfig.Backend.AppointmentType,
		bootstrap.Location,
		logger,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionBackendClient, referenceCache, bootstrap.Location, logger)
	laboratoryUsecase := laboratory.NewLaboratoryUsecase(
		laboratoryBackendClient,
		referenceCache,
		attachmentStorage,
		laboratory.AttachmentConfig{
			BucketName: internalConfig.Minio.BucketName,
			MaxSizeMB:  internalConfig.Minio.LabAttachmentMaxUploadSizeInMB,
			URLExpiry:  time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryTimeInHour) * time.Hour,
		},
		bootstrap.Location,
		logger,
	)
	inventoryUsecase := inventory.NewInventoryUsecase(inventoryBackendClient, bootstrap.Location, logger)
	patientUsecase := patients.NewPatientUsecase(patientBackendClient, referenceCache, logger)
	paymentUsecase := payments.NewPaymentUsecase(paymentBackendClient, logger)
	chatbotUsecase := chatbot.NewChatbotUsecase(chatbotBackendClient, logger)

	// Views
	renderer, err := views.NewRenderer(bootstrap.Location)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(logger, authUsecase, internalConfig)

	// Controllers
	base := controllers.NewBase(logger, renderer, sessionService, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, registry, &routers.Controllers{
		Auth:         controllers.NewAuthController(base, authUsecase),
		Appointment:  controllers.NewAppointmentController(base, bookingUsecase, appointmentListUsecase),
		Prescription: controllers.NewPrescriptionController(base, prescriptionUsecase),
		Laboratory:   controllers.NewLaboratoryController(base, laboratoryUsecase),
		Inventory:    controllers.NewInventoryController(base, inventoryUsecase),
		Patient:      controllers.NewPatientController(base, patientUsecase),
		Payment:      controllers.NewPaymentController(base, paymentUsecase),
		Chatbot:      controllers.NewChatbotController(base, chatbotUsecase),
		Health:       controllers.NewHealthController(internalConfig),
	})

	return nil
}
