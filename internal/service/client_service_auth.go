package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	uuid       *utils.UUIDGenerator

	now func() time.Time
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		uuid:       utils.NewUUIDGenerator(),
		now:        time.Now,
	}
}

// EstablishSession implements [ClientAuthService].
func (a *clientAuthService) EstablishSession(ctx context.Context, login, password string) (models.Session, error) {
	// L1: логинимся на сервере, токен приходит в заголовке Authorization
	token, err := a.adapter.Login(ctx, login, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	// L2: сохраняем сессию локально вместе с разобранными claims токена
	session := models.Session{
		ID:        a.uuid.Generate(),
		UserID:    token.UserID,
		Token:     token.SignedString,
		ServerURL: a.adapter.BaseURL(),
		ExpiresAt: token.ExpiresAt,
		CreatedAt: a.now(),
	}
	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// RestoreSession implements [ClientAuthService].
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.CurrentSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load persisted session: %w", err)
	}

	if session.Expired(a.now()) {
		return models.Session{}, fmt.Errorf("%w (session_id=%s)", ErrSessionExpired, session.ID)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}
