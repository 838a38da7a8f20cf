package bootstrap

import (
	"careerflow-be/internal/config"
	"careerflow-be/internal/controller"
	"careerflow-be/internal/pkg/logger"
	"careerflow-be/internal/pkg/mailer"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/internal/service"
	"careerflow-be/pkg/assistant"
	"careerflow-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	JobController       controller.IJobController
	CompanyController   controller.ICompanyController
	ContactController   controller.IContactController
	TodoController      controller.ITodoController
	KnowledgeController controller.IKnowledgeController
	ReminderController  controller.IReminderController
	TrashController     controller.ITrashController
	ChatController      controller.IChatController
	LLMConfigController controller.ILLMConfigController
	StatsController     controller.IStatsController
	ActivityController  controller.IActivityController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, uowFactory)

	// 3. Assistant
	// The provider itself is built per request from each user's saved config.
	executor := assistant.NewExecutor(uowFactory)
	dispatcher := assistant.NewDispatcher(executor, cfg.Chat.MaxToolRounds)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, cfg.Auth.TokenTTLHours)
	jobService := service.NewJobService(uowFactory, publisherService)
	companyService := service.NewCompanyService(uowFactory)
	contactService := service.NewContactService(uowFactory)
	todoService := service.NewTodoService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory)
	reminderService := service.NewReminderService(uowFactory)
	trashService := service.NewTrashService(uowFactory, publisherService)
	llmConfigService := service.NewLLMConfigService(uowFactory)
	statsService := service.NewStatsService(uowFactory)
	activityService := service.NewActivityService(uowFactory)

	chatService := service.NewChatService(
		uowFactory,
		dispatcher,
		factory.NewLLMProvider,
		sysLogger,
		cfg.Chat.HistoryLimit,
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		JobController:       controller.NewJobController(jobService, trashService),
		CompanyController:   controller.NewCompanyController(companyService, trashService),
		ContactController:   controller.NewContactController(contactService, trashService),
		TodoController:      controller.NewTodoController(todoService, trashService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService, trashService),
		ReminderController:  controller.NewReminderController(reminderService, trashService),
		TrashController:     controller.NewTrashController(trashService),
		ChatController:      controller.NewChatController(chatService),
		LLMConfigController: controller.NewLLMConfigController(llmConfigService),
		StatsController:     controller.NewStatsController(statsService),
		ActivityController:  controller.NewActivityController(activityService),

		ConsumerService: consumerService,
	}
}
