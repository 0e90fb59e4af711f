package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/offlinekit/recordsync/internal/client/storage"
)

// ErrTokenExpired возвращается, когда сохраненный access token истек.
// Синхронизация с таким токеном обречена на 401, поэтому вызывающий
// должен попросить пользователя выполнить login заново.
var ErrTokenExpired = errors.New("access token expired")

// Service хранит API access token между запусками и проверяет его
// годность перед использованием. Выпуск и верификация токена — забота
// сервера; здесь выполняется только чтение exp claim без проверки подписи.
type Service struct {
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает сервис аутентификации.
func NewService(store storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Login сохраняет access token, выданный сервером.
// Из токена извлекается exp claim (без верификации подписи), чтобы CLI
// мог предупредить об истечении до обращения к серверу.
func (s *Service) Login(ctx context.Context, username, accessToken string) error {
	expiresAt := tokenExpiry(accessToken)

	auth := &storage.AuthData{
		Username:    username,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("Logged in", "username", username)

	return nil
}

// Logout удаляет сохраненный токен.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	return nil
}

// AccessToken возвращает сохраненный токен.
// Возвращает storage.ErrAuthNotFound если пользователь не залогинен
// и ErrTokenExpired если exp claim токена в прошлом.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return "", err
	}

	if auth.ExpiresAt > 0 && auth.ExpiresAt <= s.now().Unix() {
		return "", ErrTokenExpired
	}

	return auth.AccessToken, nil
}

// Status возвращает сохраненные данные аутентификации.
func (s *Service) Status(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// tokenExpiry извлекает exp claim из JWT без проверки подписи.
// Возвращает 0, если токен не JWT или не содержит exp.
func tokenExpiry(accessToken string) int64 {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return 0
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return 0
	}

	return expiresAt.Unix()
}
