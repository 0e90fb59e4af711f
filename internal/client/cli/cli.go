package cli

import (
	"context"
	"fmt"

	"github.com/offlinekit/recordsync/internal/client/auth"
	"github.com/offlinekit/recordsync/internal/client/data"
	"github.com/offlinekit/recordsync/internal/client/iocli"
	"github.com/offlinekit/recordsync/internal/queue"
	"github.com/offlinekit/recordsync/internal/sync"
)

// Cli связывает команды терминала с сервисами устройства.
type Cli struct {
	io           iocli.IO
	authService  *auth.Service
	dataService  *data.Service
	syncService  sync.Service
	queueService queue.Service
}

func New(io iocli.IO, authService *auth.Service, dataService *data.Service, syncService sync.Service, queueService queue.Service) *Cli {
	return &Cli{
		io:           io,
		authService:  authService,
		dataService:  dataService,
		syncService:  syncService,
		queueService: queueService,
	}
}

// Run выполняет команду args[0] с аргументами args[1:].
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("no command given")
	}

	command, rest := args[0], args[1:]

	switch command {
	case "login":
		return c.runLogin(ctx, rest)
	case "logout":
		return c.runLogout(ctx)
	case "add":
		return c.runAdd(ctx, rest)
	case "update":
		return c.runUpdate(ctx, rest)
	case "get":
		return c.runGet(ctx, rest)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, rest)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "queue":
		return c.runQueue(ctx)
	case "deadletter":
		return c.runDeadLetter(ctx, rest)
	case "resolve":
		return c.runResolve(ctx, rest)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам.
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: recordsync [flags] <command> [arguments]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login                     store API access token")
	c.io.Println("  logout                    remove stored token")
	c.io.Println("  add field=value ...       create a record")
	c.io.Println("  update <id> field=value   update record fields")
	c.io.Println("  get <id>                  show a record")
	c.io.Println("  list                      list local records")
	c.io.Println("  delete <id>               delete a record")
	c.io.Println("  status                    show auth, queue and conflict status")
	c.io.Println("  sync                      push pending changes and pull remote ones")
	c.io.Println("  queue                     show pending queue items")
	c.io.Println("  deadletter list           show dead letter items")
	c.io.Println("  deadletter retry <id>     requeue a dead letter item")
	c.io.Println("  deadletter purge <id>     permanently remove a dead letter item")
	c.io.Println("  resolve <record-id>       resolve a critical conflict interactively")
}
