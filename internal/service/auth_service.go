package service

import (
	"context"
	"strings"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *token.Manager
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *token.Manager, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Whitespace-only credentials are as empty as the empty string.
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperror.Validation("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, apperror.Validation("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique index on email stays authoritative when
	// two registrations race (the loser gets a Conflict from Create).
	taken, err := uow.UserRepository().Count(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if taken > 0 {
		uow.Rollback()
		return nil, apperror.Conflict("email already registered")
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", apperror.Unauthorized("invalid credentials")
	}

	signed, err := s.tokens.Issue(user.Id, user.Email)
	if err != nil {
		return "", err
	}

	return signed, nil
}
