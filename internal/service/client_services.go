package service

import (
	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	SyncService      ClientSyncService
	ReadStateService ReadStateService
	SyncJob          ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, caller realtime.MethodCaller, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter)
	readStateSvc := NewLocalReadStateService(localStore.SubscriptionRepository)
	syncSvc := NewClientSyncService(localStore, serverAdapter, caller, readStateSvc, log)

	return &ClientServices{
		AuthService:      authSvc,
		SyncService:      syncSvc,
		ReadStateService: readStateSvc,
		SyncJob:          NewClientSyncJob(syncSvc, log),
	}
}
