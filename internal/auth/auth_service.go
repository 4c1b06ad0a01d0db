package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/Kizito57/leave-management-system/internal/auth/errors"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Logout(ctx context.Context, jti string) error
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Authenticate resolves a bearer token to its user: decode, revocation
	// check, credential-store load. Role and approval gating happen after.
	Authenticate(ctx context.Context, token string) (*User, *TokenClaims, error)
}

type service struct {
	repo   Repository
	ledger Ledger
	tokens *TokenIssuer
	logger *zap.Logger
}

func NewService(repo Repository, ledger Ledger, tokens *TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, ledger: ledger, tokens: tokens, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	role := req.Role
	if role == "" {
		role = RoleEmployee
	}
	if role != RoleAdmin && role != RoleEmployee {
		return autherrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &User{
		Email:      req.Email,
		Password:   string(hashed),
		Role:       role,
		IsApproved: false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		return err
	}

	s.logger.Info("user registered, pending admin approval",
		zap.Uint("user_id", user.ID),
		zap.String("role", role),
	)
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// A missing user and a wrong password are indistinguishable to the caller.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsApproved {
		s.logger.Info("login blocked, account not approved", zap.Uint("user_id", user.ID))
		return LoginResponse{}, autherrors.ErrNotApproved
	}

	accessToken, err := s.tokens.IssueAccess(user.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	refreshToken, err := s.tokens.IssueRefresh(user.Email)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
	}, nil
}

func (s *service) Logout(ctx context.Context, jti string) error {
	if err := s.ledger.Revoke(ctx, jti); err != nil {
		s.logger.Error("revoke token failed", zap.String("jti", jti), zap.Error(err))
		return err
	}
	s.logger.Info("token revoked", zap.String("jti", jti))
	return nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error) {
	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return RefreshResponse{}, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return RefreshResponse{}, autherrors.ErrInvalidToken
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return RefreshResponse{}, err
	}
	if revoked {
		return RefreshResponse{}, autherrors.ErrTokenRevoked
	}

	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return RefreshResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsApproved {
		return RefreshResponse{}, autherrors.ErrNotApproved
	}

	accessToken, err := s.tokens.IssueAccess(user.Email)
	if err != nil {
		return RefreshResponse{}, err
	}

	return RefreshResponse{AccessToken: accessToken, Role: user.Role}, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*User, *TokenClaims, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, nil, err
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		return nil, nil, autherrors.ErrTokenRevoked
	}

	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, autherrors.ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, claims, nil
}
