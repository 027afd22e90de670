package bootstrap

import (
	"time"

	"notekeep-be/internal/config"
	"notekeep-be/internal/controller"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController
	UserController controller.IUserController

	// Shared infrastructure
	Logger logger.ILogger
	Tokens *token.Manager
	DB     *gorm.DB
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokens := token.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		time.Duration(cfg.JWT.ExpiresMinutes)*time.Minute,
	)

	// 2. Services
	authService := service.NewAuthService(uowFactory, tokens, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	userService := service.NewUserService(uowFactory)

	// 3. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		NoteController: controller.NewNoteController(noteService),
		UserController: controller.NewUserController(userService),
		Logger:         sysLogger,
		Tokens:         tokens,
		DB:             db,
	}
}
