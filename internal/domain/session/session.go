package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Storage - персистентное хранилище токена. Токен - единственное
// состояние, которое консоль хранит между перезапусками.
type Storage interface {
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	DeleteToken(ctx context.Context) error
}

// Store держит текущий bearer-токен оператора. Единственный экземпляр
// на процесс, внедряется в Route Guard и Backend Gateway явно.
// Чтение синхронное: навигация не должна ждать I/O.
type Store struct {
	mu       sync.RWMutex
	token    string
	cookieID string
	storage  Storage
	log      *slog.Logger
}

// NewStore создает хранилище сессии и поднимает сохраненный токен.
// Истекший токен отбрасывается сразу, а не при первом запросе.
func NewStore(ctx context.Context, storage Storage, log *slog.Logger) (*Store, error) {
	s := &Store{
		storage: storage,
		log:     log.With(slog.String("component", "session")),
	}

	token, err := storage.LoadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки токена: %w", err)
	}
	if token != "" && !expired(token) {
		s.token = token
		s.cookieID = uuid.NewString()
	}

	return s, nil
}

// Token возвращает активный токен. Истекший JWT считается отсутствующим.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || expired(s.token) {
		return "", false
	}
	return s.token, true
}

// SetToken сохраняет токен после успешного логина и возвращает
// идентификатор для cookie браузера, владеющего сессией.
func (s *Store) SetToken(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SaveToken(ctx, token); err != nil {
		return "", fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	s.token = token
	s.cookieID = uuid.NewString()
	return s.cookieID, nil
}

// Clear уничтожает сессию. Серверную инвалидацию токена консоль
// не вызывает - это забота самого API.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.cookieID = ""

	if err := s.storage.DeleteToken(ctx); err != nil {
		s.log.Error("ошибка удаления токена из хранилища", "error", err)
	}
}

// ValidCookie проверяет, принадлежит ли cookie текущей сессии
func (s *Store) ValidCookie(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return id != "" && id == s.cookieID
}

// ExpiresAt возвращает срок действия токена, если он читается как JWT
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tokenExpiry(s.token)
}

// expired сообщает, истек ли токен. Непрозрачные токены (не JWT,
// либо без exp) живут до явного логаута или отказа сервера.
func expired(token string) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return false
	}
	return time.Now().After(exp)
}

func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
