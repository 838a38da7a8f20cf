package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/pkg/mailer"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	tokenTTLHours int
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, tokenTTLHours int) IAuthService {
	if tokenTTLHours <= 0 {
		tokenTTLHours = 24
	}
	return &authService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		tokenTTLHours: tokenTTLHours,
	}
}

func (s *authService) generateToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Duration(s.tokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, &user); err != nil {
		return nil, err
	}

	// Welcome email is auxiliary; a delivery failure must not fail signup.
	if s.emailService != nil {
		if err := s.emailService.SendWelcome(user.Email, user.FullName); err != nil {
			fmt.Printf("[WARN] Failed to send welcome email to %s: %v\n", user.Email, err)
		}
	}

	token, err := s.generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Id:    user.Id,
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}

func (s *authService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return profileResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ResumeSummary != nil {
		user.ResumeSummary = req.ResumeSummary
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Projects != nil {
		user.Projects = req.Projects
	}
	if req.Education != nil {
		user.Education = req.Education
	}
	if req.WorkAuthorization != nil {
		user.WorkAuthorization = req.WorkAuthorization
	}
	if req.VisaStatus != nil {
		user.VisaStatus = req.VisaStatus
	}
	if req.PreviousCompanies != nil {
		user.PreviousCompanies = req.PreviousCompanies
	}
	if req.LocationPreference != nil {
		user.LocationPreference = req.LocationPreference
	}
	if req.YearsOfExperience != nil {
		user.YearsOfExperience = req.YearsOfExperience
	}
	user.UpdatedAt = time.Now()

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

func profileResponse(user *entity.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:                 user.Id,
		Email:              user.Email,
		FullName:           user.FullName,
		ResumeSummary:      user.ResumeSummary,
		Skills:             user.Skills,
		Projects:           user.Projects,
		Education:          user.Education,
		WorkAuthorization:  user.WorkAuthorization,
		VisaStatus:         user.VisaStatus,
		PreviousCompanies:  user.PreviousCompanies,
		LocationPreference: user.LocationPreference,
		YearsOfExperience:  user.YearsOfExperience,
		CreatedAt:          user.CreatedAt,
	}
}
