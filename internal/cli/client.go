package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/factory"
	"github.com/mcoot/mockify/internal/model"
	filestorage "github.com/mcoot/mockify/internal/storage/file"
)

// ClientID is the CLI's namespace inside its storage file
const ClientID model.ClientID = "cli"

// newApp opens the storage file and wires the client components against clientCfg
func newApp(c *Config, clientCfg config.Client) (*factory.ClientApp, error) {
	store, err := filestorage.New(c.StorageFile)
	if err != nil {
		return nil, err
	}
	return factory.NewClientApp(clientCfg, store, ClientID, clock.New(), newLogger(c.Verbose)), nil
}

// newLogger logs request failures to stderr only in verbose mode
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
