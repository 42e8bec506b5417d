package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/consts"
	"Ecotrace/internal/pkg/minio"
	"Ecotrace/internal/pkg/redis"
	"Ecotrace/internal/pkg/security"
	"Ecotrace/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	SearchUsers(ctx context.Context, keyword string, limit, offset int) ([]*dto.UserDTO, error)
	UpdatePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error
	UpdateUsername(ctx context.Context, id uint64, changeDTO *dto.ChangeUsernameDTO) error
	CancelUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	byUsername, err := s.userRepo.GetUserByUsername(ctx, *regDTO.Username)
	if err != nil {
		return err
	}
	if byUsername != nil {
		return ErrUserUsernameExist
	}

	byEmail, err := s.userRepo.GetUserByEmail(ctx, *regDTO.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		return ErrUserEmailExist
	}

	user := &model.User{}
	if err = copier.Copy(user, &regDTO); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(*regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = &passwordHash

	profile := &model.UserProfile{
		AvatarURL:            consts.DefaultAvatarURL,
		Level:                1,
		DailyCO2Goal:         8.0,
		NotificationsEnabled: true,
	}

	return s.userRepo.CreateUser(ctx, user, profile)
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	user, err := s.findUserByLoginCredentials(ctx, credentialDTO)
	if err != nil {
		return "", err
	}
	if user == nil || user.IsDelete {
		return "", ErrUserNotFound
	}

	if credentialDTO.Password == nil || user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(*credentialDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user)
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, keyword string, limit, offset int) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.SearchUsersByUsername(ctx, keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	userDTOs := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTO, err := s.toUserDTO(user)
		if err != nil {
			return nil, err
		}
		userDTOs = append(userDTOs, userDTO)
	}
	return userDTOs, nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(*changeDTO.OldPassword, *user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	passwordHash, err := security.HashPassword(*changeDTO.NewPassword)
	if err != nil {
		return err
	}
	user.Password = &passwordHash
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) UpdateUsername(ctx context.Context, id uint64, changeDTO *dto.ChangeUsernameDTO) error {
	byUsername, err := s.userRepo.GetUserByUsername(ctx, *changeDTO.Username)
	if err != nil {
		return err
	}
	if byUsername != nil {
		return ErrUserUsernameExist
	}
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	user.Username = changeDTO.Username
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) CancelUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, id)
}

func (s *UserServiceImpl) findUserByLoginCredentials(ctx context.Context, credentialDTO *dto.CredentialDTO) (*model.User, error) {
	if credentialDTO.Username != nil && *credentialDTO.Username != "" {
		return s.userRepo.GetUserByUsername(ctx, *credentialDTO.Username)
	}
	if credentialDTO.Email != nil && *credentialDTO.Email != "" {
		return s.userRepo.GetUserByEmail(ctx, *credentialDTO.Email)
	}
	return nil, ErrMissingLoginCredentials
}

func (s *UserServiceImpl) toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	if err := copier.Copy(userDTO, &user.Profile); err != nil {
		return nil, err
	}
	url := minio.GetPublicURL(user.Profile.AvatarURL)
	userDTO.AvatarURL = &url
	return userDTO, nil
}
