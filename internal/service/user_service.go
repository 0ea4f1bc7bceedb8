package service

import (
	"errors"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/pkg/validator"

	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Admin Cashier"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password"` // optional; blank keeps the current hash
	Role     string `json:"role" validate:"omitempty,oneof=Admin Cashier"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	UpdateUser(id string, req *UpdateUserRequest) (*model.User, error)
	DeleteUser(id string) error
	GetAllUsers() ([]model.User, error)
	GetUserByID(id string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{userRepo: repo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user := &model.User{
		Username: req.Username,
		FullName: req.FullName,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("username %s already exists", req.Username)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id string, req *UpdateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s", id)
		}
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("user %s", id)
		}
		return err
	}
	return s.userRepo.Delete(id)
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s", id)
		}
		return nil, err
	}
	return user, nil
}
