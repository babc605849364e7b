package user

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Repository defines the data access methods for users
type Repository interface {
	Create(u *User) error
	GetByEmail(email string) (*User, error)
	GetByID(id int64) (*User, error)
	// FindForLogin resolves a credential to a user of the given role:
	// students match on email or roll number, HODs on email or employee id,
	// security staff on employee id only.
	FindForLogin(role, credential string) (*User, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Register creates a new account with a bcrypt-hashed password. Only the
// fields belonging to the requested role are persisted.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("registration validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		s.logger.Warn("registration rejected: email taken", "email", dto.Email)
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         dto.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch dto.Role {
	case RoleStudent:
		u.RollNumber = dto.RollNumber
		u.Department = dto.Department
	case RoleHOD:
		u.EmployeeID = dto.EmployeeID
		u.Department = dto.Department
	case RoleSecurity:
		u.EmployeeID = dto.EmployeeID
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Authenticate verifies the credential and password for the requested role.
// No session or token is created; the caller receives the user object.
func (s *Service) Authenticate(dto LoginDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindForLogin(dto.Role, dto.Email)
	if err != nil {
		s.logger.Warn("login failed: no matching user", "role", dto.Role)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", u.ID)
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) GetByID(id int64) (*User, error) {
	return s.repo.GetByID(id)
}
