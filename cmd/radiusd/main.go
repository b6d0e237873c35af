package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nasauth/radius/pkg/config"
	"github.com/nasauth/radius/pkg/dictionaries"
	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/log"
	"github.com/nasauth/radius/pkg/server"
)

// staticCredentials is a stand-in credential store. Real deployments
// plug a SQL-backed implementation built from the database settings.
type staticCredentials map[string]string

func (s staticCredentials) PasswordFor(username string) (string, bool, error) {
	password, ok := s[username]
	return password, ok, nil
}

func main() {
	configPath := flag.String("config", "radiusd.yaml", "Path to the server configuration file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config <file>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger := log.NewLoggerWithLevel(cfg.LogLevel)

	dict, err := buildDictionary(cfg)
	if err != nil {
		logger.Errorf("failed to build dictionary: %v", err)
		os.Exit(1)
	}

	var credentials server.CredentialStore
	if cfg.ValidateByDatabase {
		logger.Infof("validate_by_database is set; using the built-in demo credential store (database %s is not consulted)", cfg.Database.Connection)
		credentials = staticCredentials{
			"alice": "hunter2",
			"bob":   "swordfish",
		}
	}

	srv, err := server.New(server.Config{
		AuthAddr:       cfg.AuthAddr,
		AcctAddr:       cfg.AcctAddr,
		Secrets:        server.NewStaticSecrets(cfg.Secrets()),
		Credentials:    credentials,
		UseCredentials: cfg.ValidateByDatabase,
		UseExternal:    cfg.ValidateByLDAP,
		Dictionary:     dict,
		Logger:         logger,
	})
	if err != nil {
		logger.Errorf("failed to create server: %v", err)
		os.Exit(1)
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

func buildDictionary(cfg *config.Config) (*dictionary.Dictionary, error) {
	dict, err := dictionaries.NewDefault()
	if err != nil {
		return nil, err
	}

	if cfg.DictionaryDir == "" {
		return dict, nil
	}

	source := &dictionary.FileSource{Dir: cfg.DictionaryDir}
	extra, err := source.Load(context.Background())
	if err != nil {
		return nil, err
	}

	if err := dict.Merge(extra); err != nil {
		return nil, err
	}

	return dict, nil
}
