package tools

import (
	"context"
	"sync"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

// Deps carries the shared dependencies tool handlers draw on. The platform
// client is created and connected lazily on first use, so the server can
// start and list tools without a reachable platform.
type Deps struct {
	Config *common.Config
	Logger *common.Logger

	once      sync.Once
	client    *xplainable.Client
	clientErr error
}

// NewDeps creates the handler dependencies from loaded configuration.
func NewDeps(cfg *common.Config, logger *common.Logger) *Deps {
	return &Deps{Config: cfg, Logger: logger}
}

// NewDepsWithClient creates dependencies with a pre-built client, skipping
// the lazy connect. Used by tests against a stub platform.
func NewDepsWithClient(cfg *common.Config, logger *common.Logger, client *xplainable.Client) *Deps {
	d := &Deps{Config: cfg, Logger: logger}
	d.once.Do(func() { d.client = client })
	return d
}

// Client returns the shared platform client, connecting on first call.
// The connect error is sticky: once it fails, every later call reports the
// same error until the process restarts.
func (d *Deps) Client() (*xplainable.Client, error) {
	d.once.Do(func() {
		client, err := xplainable.NewClient(
			d.Config.APIKey,
			d.Config.Hostname,
			d.Config.OrgID,
			d.Config.TeamID,
			d.Logger,
		)
		if err != nil {
			d.clientErr = err
			return
		}
		if err := client.Connect(context.Background()); err != nil {
			d.clientErr = err
			return
		}
		d.Logger.Info().Str("hostname", client.Hostname()).Msg("Connected to platform")
		d.client = client
	})
	return d.client, d.clientErr
}
