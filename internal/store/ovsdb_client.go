package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"
	"github.com/ovn-org/libovsdb/cache"
	"github.com/ovn-org/libovsdb/client"
	"github.com/ovn-org/libovsdb/model"
	"github.com/ovn-org/libovsdb/ovsdb"
)

// reconnectTimeout bounds each reconnection attempt to the OVSDB server.
const reconnectTimeout = 10 * time.Second

// DB is the view of the configuration database the OVSDB store needs.
type DB interface {
	// Tables reads every row of the configuration tables.
	Tables(ctx context.Context) (*Tables, error)

	// SetRouteSelected writes the selected column of Route rows keyed by
	// row UUID in one transaction.
	SetRouteSelected(ctx context.Context, selected map[string]bool) error

	// Changes is signalled after the database contents change. Signals
	// may be coalesced.
	Changes() <-chan struct{}
}

// Tables is one read of the configuration tables.
type Tables struct {
	VRFs     []*VRF
	Ports    []*Port
	Nexthops []*Nexthop
	Routes   []*Route
}

// OVSDB is a DB backed by a libovsdb client monitoring the whole
// database.
type OVSDB struct {
	client  client.Client
	changes chan struct{}
	logger  *slog.Logger
}

// DialOVSDB connects to endpoint, starts monitoring every configuration
// table and returns once the initial contents are cached.
func DialOVSDB(ctx context.Context, endpoint, database string, logger *slog.Logger) (*OVSDB, error) {
	logger = logger.With(slog.String("component", "store.ovsdb"))

	dbModel, err := ClientDBModel(database)
	if err != nil {
		return nil, fmt.Errorf("build ovsdb model: %w", err)
	}

	lg := logr.FromSlogHandler(logger.Handler())
	c, err := client.NewOVSDBClient(dbModel,
		client.WithEndpoint(endpoint),
		client.WithReconnect(reconnectTimeout, backoff.NewExponentialBackOff()),
		client.WithLogger(&lg),
	)
	if err != nil {
		return nil, fmt.Errorf("create ovsdb client: %w", err)
	}

	if err := c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to ovsdb %s: %w", endpoint, err)
	}

	d := &OVSDB{
		client:  c,
		changes: make(chan struct{}, 1),
		logger:  logger,
	}

	c.Cache().AddEventHandler(&cache.EventHandlerFuncs{
		AddFunc: func(string, model.Model) {
			d.notify()
		},
		UpdateFunc: func(string, model.Model, model.Model) {
			d.notify()
		},
		DeleteFunc: func(string, model.Model) {
			d.notify()
		},
	})

	if _, err := c.MonitorAll(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("monitor ovsdb %s: %w", database, err)
	}

	logger.Info("connected to ovsdb",
		slog.String("endpoint", endpoint),
		slog.String("database", database),
	)
	return d, nil
}

func (d *OVSDB) notify() {
	select {
	case d.changes <- struct{}{}:
	default:
	}
}

// Tables implements DB. Rows are read from the monitor cache.
func (d *OVSDB) Tables(ctx context.Context) (*Tables, error) {
	t := &Tables{}
	if err := d.client.List(ctx, &t.VRFs); err != nil {
		return nil, fmt.Errorf("list %s: %w", TableVRF, err)
	}
	if err := d.client.List(ctx, &t.Ports); err != nil {
		return nil, fmt.Errorf("list %s: %w", TablePort, err)
	}
	if err := d.client.List(ctx, &t.Nexthops); err != nil {
		return nil, fmt.Errorf("list %s: %w", TableNexthop, err)
	}
	if err := d.client.List(ctx, &t.Routes); err != nil {
		return nil, fmt.Errorf("list %s: %w", TableRoute, err)
	}
	return t, nil
}

// SetRouteSelected implements DB.
func (d *OVSDB) SetRouteSelected(ctx context.Context, selected map[string]bool) error {
	if len(selected) == 0 {
		return nil
	}

	var ops []ovsdb.Operation
	for uuid, sel := range selected {
		row := &Route{UUID: uuid, Selected: &sel}
		op, err := d.client.Where(row).Update(row, &row.Selected)
		if err != nil {
			return fmt.Errorf("update route %s: %w", uuid, err)
		}
		ops = append(ops, op...)
	}

	results, err := d.client.Transact(ctx, ops...)
	if err != nil {
		return fmt.Errorf("transact selected: %w", err)
	}
	if _, err := ovsdb.CheckOperationResults(results, ops); err != nil {
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	return nil
}

// Changes implements DB.
func (d *OVSDB) Changes() <-chan struct{} {
	return d.changes
}

// Close disconnects from the server.
func (d *OVSDB) Close() {
	d.client.Close()
}
