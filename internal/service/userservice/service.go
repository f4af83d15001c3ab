package userservice

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/validation"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID int64, userRole string) (string, error)
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo  domain.UserRepository
	TokenSvc  TokenService
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria uma nova instância do UserService.
func NewService(repo domain.UserRepository, tokenSvc TokenService, v *validation.Validator, log logger.Logger) *UserService {
	return &UserService{
		UserRepo:  repo,
		TokenSvc:  tokenSvc,
		validator: v,
		logger:    log.WithComponent("service/user"),
		now:       time.Now,
	}
}

// Register registra um novo usuário com a senha hasheada (bcrypt).
// Email duplicado chega do repositório como ConflictError.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	user, err := s.create(ctx, registration, domain.RoleUser)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// EnsureAdmin cria o administrador inicial quando o email ainda não está cadastrado.
// Um usuário já existente é devolvido sem alterações.
func (s *UserService) EnsureAdmin(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	existing, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(registration.Email))
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			s.logger.Warn("Email do administrador pertence a um usuário comum", map[string]interface{}{"user_id": existing.ID})
		}
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return domain.User{}, err
	}

	admin, err := s.create(ctx, registration, domain.RoleAdmin)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Administrador inicial criado", map[string]interface{}{"user_id": admin.ID})
	return admin, nil
}

func (s *UserService) create(ctx context.Context, registration domain.UserRegistration, role domain.UserRole) (domain.User, error) {
	registration.Email = normalizeEmail(registration.Email)
	if err := s.validator.Struct(registration); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("failed to hash password", err)
	}

	now := s.now().UTC()
	return s.UserRepo.Save(ctx, domain.User{
		Email:        registration.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, login domain.UserLogin) (string, error) {
	if err := s.validator.Struct(login); err != nil {
		return "", apperror.NewUnauthorizedError("invalid credentials")
	}

	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(login.Email))
	if err != nil {
		// Usuário inexistente vira 401 para não revelar quais emails existem.
		if apperror.IsNotFound(err) {
			return "", apperror.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(login.Password)); err != nil {
		return "", apperror.NewUnauthorizedError("invalid credentials")
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", apperror.NewInternalError("failed to generate token", err)
	}

	s.logger.Debug("Login realizado", map[string]interface{}{"user_id": user.ID})
	return tokenString, nil
}
