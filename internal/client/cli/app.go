// Package cli implements the interactive lexico client: an authenticated
// REPL over the backend HTTP API with dictionary management and the two
// learning modes.
package cli

import (
	"bufio"
	"os"

	"github.com/dbellanger/lexico/internal/client/api"
	"github.com/dbellanger/lexico/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}
