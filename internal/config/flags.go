package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command-line source of the configuration:
//
//	-a                chat server address (host:port)
//	-ws               legacy websocket URL
//	-d                database DSN
//	-engine           database engine, sqlite3 or pgx
//	-c, -config       path to a JSON config file
//	-login, -password account credentials
//	-request-timeout  outbound request timeout
//	-sync-interval    background sync period
//
// Flags bind straight into the returned [StructuredConfig]; anything not
// given on the command line stays zero for the other sources to fill.
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}
	var serverAddress NetAddress

	flag.Var(&serverAddress, "a", "chat server address, host:port")
	flag.StringVar(&cfg.Adapter.RealtimeAddress, "ws", "", "legacy websocket URL")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	flag.StringVar(&cfg.Storage.DB.Engine, "engine", "", "database engine, sqlite3 or pgx")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "path to a JSON config file")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "path to a JSON config file (alias for -c)")
	flag.StringVar(&cfg.App.Login, "login", "", "account login")
	flag.StringVar(&cfg.App.Password, "password", "", "account password")
	flag.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "outbound request timeout, e.g. 30s")
	flag.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "background sync period, e.g. 5m")

	flag.Parse()

	cfg.Adapter.HTTPAddress = serverAddress.String()
	return cfg
}

// String renders the address as host:port; the zero value renders empty.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host must be "localhost" or a literal IP and
// the port a positive integer.
func (a *NetAddress) Set(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	host := parts[0]
	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
