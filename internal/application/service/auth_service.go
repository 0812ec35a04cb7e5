package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/apperror"
	"github.com/storelinehq/storeline-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	storeRepo    repository.StoreRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Employee     *entity.Employee
	AccessToken  string
	RefreshToken string
}

// Login authenticates an employee and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	employee, err := s.employeeRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, employee.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the employee registration input
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	StoreID   *uuid.UUID
}

// Register creates a new employee account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.Employee, error) {
	existing, err := s.employeeRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	existing, err = s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	role := enum.RoleCashier
	if input.Role != "" {
		parsed, ok := enum.ParseRole(input.Role)
		if !ok {
			return nil, apperror.NewBadRequestError("Invalid role: " + input.Role)
		}
		role = parsed
	}

	if input.StoreID != nil {
		store, err := s.storeRepo.GetByID(ctx, *input.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, apperror.NewNotFoundError("Store")
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		StoreID:   input.StoreID,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	employeeID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile returns the authenticated employee's profile
func (s *AuthService) GetProfile(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	EmployeeID      uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword updates the authenticated employee's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, employee.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	employee.Password = hashedPassword
	return s.employeeRepo.Update(ctx, employee)
}
