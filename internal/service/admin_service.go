package service

import (
	"crypto/subtle"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/config"
	"github.com/adiweb12/Devwatsee/internal/repository"
	"github.com/adiweb12/Devwatsee/pkg/utils"
)

// AdminService owns the fixed-credential admin identity. There is exactly
// one admin and it is configured, never stored.
type AdminService struct {
	cfg      *config.AdminConfig
	tokens   *utils.TokenManager
	userRepo *repository.UserRepository
}

func NewAdminService(cfg *config.AdminConfig, tokens *utils.TokenManager, userRepo *repository.UserRepository) *AdminService {
	return &AdminService{cfg: cfg, tokens: tokens, userRepo: userRepo}
}

// Login compares against the configured credential pair and issues a token
// whose subject is the admin literal.
func (s *AdminService) Login(req *dto.AdminLoginRequest) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredential
	}

	return s.tokens.Generate(utils.AdminSubject)
}

// ListUsers returns every member's public record.
func (s *AdminService) ListUsers() ([]dto.AdminUserItem, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.AdminUserItem, 0, len(users))
	for i := range users {
		items = append(items, dto.AdminUserItem{
			ID:       users[i].ID,
			Username: users[i].Username,
			Name:     users[i].Name,
			Email:    users[i].Email,
		})
	}
	return items, nil
}
