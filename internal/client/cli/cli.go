// Package cli реализует командный интерфейс клиента weekendly.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/auth"
	"github.com/iudanet/weekendly/internal/client/data"
	"github.com/iudanet/weekendly/internal/client/engine"
	"github.com/iudanet/weekendly/internal/client/iocli"
	"github.com/iudanet/weekendly/internal/client/netmon"
	"github.com/iudanet/weekendly/internal/client/storage"
	clientsync "github.com/iudanet/weekendly/internal/client/sync"
)

// Cli связывает команды с подсистемами клиента
type Cli struct {
	io          iocli.IO
	engine      *engine.Engine
	monitor     *netmon.Monitor
	authService *auth.Service
	plans       data.Service
	coordinator clientsync.Service
	metadata    storage.MetadataStorage
	apiClient   clientapi.ClientAPI
	logger      *slog.Logger

	// drainCron расписание фоновых drain-проходов агента
	drainCron string
}

// Deps перечисляет зависимости команд
type Deps struct {
	IO          iocli.IO
	Engine      *engine.Engine
	Monitor     *netmon.Monitor
	AuthService *auth.Service
	Plans       data.Service
	Coordinator clientsync.Service
	Metadata    storage.MetadataStorage
	APIClient   clientapi.ClientAPI
	Logger      *slog.Logger
	DrainCron   string
}

// New создает CLI поверх собранных подсистем
func New(deps Deps) *Cli {
	return &Cli{
		io:          deps.IO,
		engine:      deps.Engine,
		monitor:     deps.Monitor,
		authService: deps.AuthService,
		plans:       deps.Plans,
		coordinator: deps.Coordinator,
		metadata:    deps.Metadata,
		apiClient:   deps.APIClient,
		logger:      deps.Logger,
		drainCron:   deps.DrainCron,
	}
}

// Run исполняет команду. Ошибки печатаются в stderr, код выхода 1.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "add":
		err = c.runAdd(ctx, args)
	case "list":
		err = c.runList(ctx)
	case "get":
		err = c.runGet(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "catalog":
		err = c.runCatalog(ctx)
	case "fetch":
		err = c.runFetch(ctx, args)
	case "cache-refresh":
		err = c.engine.HandleControl(ctx, engine.ControlCacheRefresh)
	case "activate":
		err = c.engine.HandleControl(ctx, engine.ControlActivate)
	case "agent":
		err = c.runAgent(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		c.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: weekendly <command> [arguments]")
	c.io.Println()
	c.io.Println("Account:")
	c.io.Println("  register       Create a new account")
	c.io.Println("  login          Authenticate and store the session")
	c.io.Println("  logout         Remove the stored session")
	c.io.Println()
	c.io.Println("Plans:")
	c.io.Println("  add            Add or update a weekend plan")
	c.io.Println("  list           List all local plans")
	c.io.Println("  get <id>       Show plan details")
	c.io.Println("  delete <id>    Delete a plan")
	c.io.Println()
	c.io.Println("Sync & cache:")
	c.io.Println("  sync           Drain the mutation queue now")
	c.io.Println("  status         Show connectivity, auth and queue state")
	c.io.Println("  catalog        Show the activity catalog")
	c.io.Println("  fetch <url>    Run a GET request through the cache engine")
	c.io.Println("  cache-refresh  Re-populate the static cache namespace")
	c.io.Println("  activate       Activate the current cache generation")
	c.io.Println("  agent          Run the background sync agent")
}
