package main

import (
	"fmt"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/client"
	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/service"
	"github.com/MKhiriev/go-chat-sync/internal/store"
)

// Populated through -ldflags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("chat-sync-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load client config")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	var channel *realtime.Channel
	if cfg.Adapter.RealtimeAddress != "" {
		channel = realtime.NewChannel(cfg.Adapter.RealtimeAddress, log)
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, methodCaller(channel), log)

	app, err := client.NewApp(services, channel, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client stopped with error")
	}
}

// methodCaller keeps a disabled channel out of the services: a typed nil
// inside the interface would defeat the caller == nil checks downstream.
func methodCaller(channel *realtime.Channel) realtime.MethodCaller {
	if channel == nil {
		return nil
	}
	return channel
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
