package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/user"
)

const (
	claimSubject   = "sub"
	claimSuperuser = "is_superuser"
	claimExpires   = "exp"
	claimIssuedAt  = "iat"
)

// Service выдает и проверяет bearer токены
type Service struct {
	userRepo UserRepository
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Token выданный токен и его владелец
type Token struct {
	AccessToken string           `json:"accessToken"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	Principal   domain.Principal `json:"-"`
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user username=%q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.Issue(user.Principal())
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%d: %v", user.ID, err)
		return nil, err
	}

	s.logger.Info("Login: user=%d logged in", user.ID)
	return token, nil
}

// Issue подписывает токен HS256 для principal
func (s *Service) Issue(p domain.Principal) (*Token, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		claimSubject:   strconv.FormatInt(p.UserID, 10),
		claimSuperuser: p.IsSuperuser,
		claimIssuedAt:  now.Unix(),
		claimExpires:   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: Issue - sign token: %v", ErrInternal, err)
	}

	return &Token{AccessToken: signed, ExpiresAt: expiresAt, Principal: p}, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(raw string) (domain.Principal, error) {
	parser := jwt.Parser{}
	tok, err := parser.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	sub, _ := claims[claimSubject].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	superuser, _ := claims[claimSuperuser].(bool)

	return domain.Principal{UserID: userID, IsSuperuser: superuser}, nil
}

// HashPassword возвращает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}
