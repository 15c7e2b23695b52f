// Package gobgp imports BGP best paths from GoBGP into the RIB.
//
// The importer watches GoBGP's best-path table over its gRPC API and turns
// every best-path change into a RouteReplace or RouteWithdraw event for the
// bgp protocol. BGP is only a route source here: path attributes other than
// the next-hop and MED are not interpreted.
//
// Route flap dampening (RFC 2439) can hold back prefixes whose best path
// keeps disappearing, so that an unstable peer does not churn the kernel
// forwarding table.
package gobgp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"sync"

	apipb "github.com/osrg/gobgp/v3/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// -------------------------------------------------------------------------
// Client Interface
// -------------------------------------------------------------------------

// Path is one best-path change for a prefix.
type Path struct {
	Prefix netip.Prefix

	// NextHop is the BGP next-hop. Invalid for withdrawals.
	NextHop netip.Addr

	// MED is the multi-exit discriminator, used as the route metric.
	MED uint32

	// Neighbor is the peer the path was learned from; invalid for locally
	// originated paths.
	Neighbor netip.Addr

	// Withdraw is true when the prefix no longer has a best path.
	Withdraw bool
}

// Client is the slice of the GoBGP API the importer consumes.
type Client interface {
	// WatchBestPaths sends the current best paths followed by every
	// best-path change to paths. It blocks until ctx is cancelled, in
	// which case it returns nil, or the stream fails.
	WatchBestPaths(ctx context.Context, paths chan<- Path) error

	// Close releases the underlying gRPC connection.
	Close() error
}

// -------------------------------------------------------------------------
// Sentinel Errors
// -------------------------------------------------------------------------

var (
	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("gobgp client is closed")

	// ErrDialFailed indicates the gRPC dial to GoBGP failed.
	ErrDialFailed = errors.New("gobgp gRPC dial failed")

	// ErrStreamClosed indicates GoBGP ended the watch stream.
	ErrStreamClosed = errors.New("gobgp watch stream closed")

	// ErrUnsupportedNLRI indicates a path whose NLRI is not an IP prefix.
	ErrUnsupportedNLRI = errors.New("unsupported NLRI")

	// ErrNoNextHop indicates an announced path without a usable next-hop.
	ErrNoNextHop = errors.New("path has no usable next-hop")
)

// -------------------------------------------------------------------------
// GRPCClient: production GoBGP gRPC client
// -------------------------------------------------------------------------

// GRPCClient streams best paths from a GoBGP daemon. The API is plaintext
// gRPC; point it at a loopback listener.
type GRPCClient struct {
	conn   *grpc.ClientConn
	api    apipb.GobgpApiClient
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// GRPCClientConfig locates the GoBGP API.
type GRPCClientConfig struct {
	Addr string // host:port of gobgpd's gRPC listener, e.g. 127.0.0.1:50051
}

// NewGRPCClient creates a new GoBGP gRPC client.
//
// grpc.NewClient does not block; connectivity is established by the first
// WatchBestPaths call.
func NewGRPCClient(cfg GRPCClientConfig, logger *slog.Logger) (*GRPCClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("create gobgp client: %w: empty address", ErrDialFailed)
	}

	conn, err := grpc.NewClient(
		cfg.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("create gobgp client to %s: %w: %w", cfg.Addr, ErrDialFailed, err)
	}

	client := &GRPCClient{
		conn: conn,
		api:  apipb.NewGobgpApiClient(conn),
		logger: logger.With(
			slog.String("component", "gobgp.client"),
			slog.String("addr", cfg.Addr),
		),
	}

	client.logger.Info("gobgp api client ready")
	return client, nil
}

// WatchBestPaths implements Client using the WatchEvent best-path table
// filter with the initial table dump enabled.
func (c *GRPCClient) WatchBestPaths(ctx context.Context, paths chan<- Path) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return fmt.Errorf("watch best paths: %w", ErrClientClosed)
	}
	c.mu.RUnlock()

	stream, err := c.api.WatchEvent(ctx, &apipb.WatchEventRequest{
		Table: &apipb.WatchEventRequest_Table{
			Filters: []*apipb.WatchEventRequest_Table_Filter{{
				Type: apipb.WatchEventRequest_Table_Filter_BEST,
				Init: true,
			}},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("watch best paths: %w", err)
	}

	c.logger.Info("watching gobgp best paths")

	for {
		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return ErrStreamClosed
			}
			return fmt.Errorf("receive best paths: %w", err)
		}

		for _, p := range resp.GetTable().GetPaths() {
			path, err := DecodePath(p)
			if err != nil {
				c.logger.Debug("skipping path", slog.String("error", err.Error()))
				continue
			}
			select {
			case paths <- path:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Close releases the underlying gRPC connection. After Close,
// WatchBestPaths returns ErrClientClosed.
func (c *GRPCClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("close gobgp client: %w", err)
	}
	c.logger.Debug("gobgp api client closed")
	return nil
}
