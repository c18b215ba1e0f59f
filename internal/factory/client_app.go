package factory

import (
	"log/slog"

	"github.com/mcoot/mockify/internal/client"
	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/airouter"
	"github.com/mcoot/mockify/internal/services/auth"
	"github.com/mcoot/mockify/internal/services/interview"
	"github.com/mcoot/mockify/internal/storage"
)

// ClientApp contains the client-side components for one client storage namespace
type ClientApp struct {
	Config       config.Client
	Client       *client.Client
	AIRouter     *airouter.Router
	Auth         *auth.Service
	Bootstrapper *interview.Bootstrapper
}

// NewClientApp wires the client-side components against cfg.APIBaseURL.
// Session state lives in store under clientID.
func NewClientApp(cfg config.Client, store storage.Storage, clientID model.ClientID, clk clock.Clock, logger *slog.Logger, opts ...client.Option) *ClientApp {
	opts = append([]client.Option{client.WithLogger(logger)}, opts...)
	c := client.New(cfg.APIBaseURL, opts...)

	return &ClientApp{
		Config:       cfg,
		Client:       c,
		AIRouter:     airouter.New(c, cfg.AIMode),
		Auth:         auth.New(storage.Scope(store, clientID), clk),
		Bootstrapper: interview.New(c),
	}
}
