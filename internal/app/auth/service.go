package auth

import (
	"errors"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the cost of previously stored hashes.
const bcryptCost = 10

type Service interface {
	Register(req RegisterRequest) (*AccountResponse, error)
	Login(req LoginRequest) (*LoginResponse, error)
	Me(userID string) (*user.Public, error)
}

type service struct {
	repo   user.Repository
	tokens *token.Manager
}

func NewService(repo user.Repository, tokens *token.Manager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(req RegisterRequest) (*AccountResponse, error) {
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("이미 등록된 이메일입니다.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	account := &user.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         authz.RoleUser,
	}
	if err := s.repo.Create(account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("이미 등록된 이메일입니다.")
		}
		return nil, apperr.Internal(err)
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (s *service) Login(req LoginRequest) (*LoginResponse, error) {
	account, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("이메일 또는 비밀번호가 올바르지 않습니다.")
		}
		return nil, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("이메일 또는 비밀번호가 올바르지 않습니다.")
	}

	accessToken, err := s.tokens.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginResponse{
		AccessToken: accessToken,
		User:        toAccountResponse(account),
	}, nil
}

func (s *service) Me(userID string) (*user.Public, error) {
	account, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("사용자를 찾을 수 없습니다.")
		}
		return nil, apperr.Internal(err)
	}
	public := account.Public()
	return &public, nil
}
