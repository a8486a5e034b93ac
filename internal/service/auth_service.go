package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/model"
	"github.com/adiweb12/Devwatsee/internal/repository"
	"github.com/adiweb12/Devwatsee/pkg/utils"
)

var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("email already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailNotFound     = errors.New("email not found")
	ErrWrongPassword     = errors.New("wrong password")
)

// tempPasswordLength is the size of the generated reset password.
const tempPasswordLength = 8

// Mailer delivers the password-reset mail.
type Mailer interface {
	SendPasswordReset(to, username, tempPassword string) error
}

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *utils.TokenManager
	mailer   Mailer
}

func NewAuthService(userRepo *repository.UserRepository, tokens *utils.TokenManager, mailer Mailer) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens, mailer: mailer}
}

// Signup registers a new member. Username and email must both be free.
func (s *AuthService) Signup(req *dto.SignupRequest) error {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	return s.userRepo.Create(user)
}

// Login verifies the credential pair and issues a bearer token whose subject
// is the user id. Unknown username and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredential
		}
		return "", err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return "", ErrInvalidCredential
	}

	return s.tokens.GenerateForUser(user.ID)
}

// ResetPassword generates a fresh random password for the account behind the
// email, stores its hash and mails the plaintext to the user. The mail send
// is synchronous; a failed send fails the whole operation.
func (s *AuthService) ResetPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	tempPassword, err := utils.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(tempPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(user.Email, user.Username, tempPassword)
}

// GetProfile returns the member's own record.
func (s *AuthService) GetProfile(userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.ProfileResponse{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}

// UpdateProfile sets name and email. The email-uniqueness invariant holds
// under mutation, so a collision with another account is a conflict.
func (s *AuthService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) error {
	taken, err := s.userRepo.ExistsByEmailExcept(req.Email, userID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	err = s.userRepo.Update(userID, map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ChangePassword rotates the member's password after re-verifying the old
// one.
func (s *AuthService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}
