// Package config manages goribd daemon configuration using koanf/v2.
//
// Supports YAML files and environment variables. The same file carries the
// declarative interface and route configuration used by the file store.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete goribd configuration.
type Config struct {
	GRPC        GRPCConfig        `koanf:"grpc"`
	Metrics     MetricsConfig     `koanf:"metrics"`
	Log         LogConfig         `koanf:"log"`
	RIB         RIBConfig         `koanf:"rib"`
	FIB         FIBConfig         `koanf:"fib"`
	Store       StoreConfig       `koanf:"store"`
	GoBGP       GoBGPConfig       `koanf:"gobgp"`
	LinkMonitor LinkMonitorConfig `koanf:"link_monitor"`
	Interfaces  []InterfaceConfig `koanf:"interfaces"`
	Routes      []RouteConfig     `koanf:"routes"`
}

// GRPCConfig holds the ConnectRPC server configuration.
type GRPCConfig struct {
	// Addr is the listen address (e.g., ":50052").
	Addr string `koanf:"addr"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint (e.g., ":9101").
	Addr string `koanf:"addr"`
	// Path is the URL path for the metrics endpoint (e.g., "/metrics").
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// RIBConfig holds route selection and restart reconciliation parameters.
type RIBConfig struct {
	// TieBreak decides between equal-distance routes of different
	// protocols: "protocol", "metric" or "oldest". Route age restarts with
	// the daemon, so after a restart "oldest" prefers the route listed
	// first in the store and may differ from the pre-restart choice.
	TieBreak string `koanf:"tie_break"`

	// FallbackToActive selects the best route that has an active next-hop
	// instead of keeping an inactive lower-distance route selected.
	FallbackToActive bool `koanf:"fallback_to_active"`

	// QueueSize is the event queue depth.
	QueueSize int `koanf:"queue_size"`

	// HistorySize is the number of events kept in the event log.
	HistorySize int `koanf:"history_size"`

	// AllowEmptyFlush lets an empty configuration delete every owned
	// kernel route at startup.
	AllowEmptyFlush bool `koanf:"allow_empty_flush"`

	// LoadRetryInitial and LoadRetryMax bound the backoff between store
	// and kernel reads during restart reconciliation.
	LoadRetryInitial time.Duration `koanf:"load_retry_initial"`
	LoadRetryMax     time.Duration `koanf:"load_retry_max"`

	// LoadTimeout is the total time allowed for those reads.
	LoadTimeout time.Duration `koanf:"load_timeout"`
}

// FIBConfig holds kernel programming parameters.
type FIBConfig struct {
	// Backend is "netlink" or "memory".
	Backend string `koanf:"backend"`

	// Table is the kernel routing table id (0 selects main).
	Table int `koanf:"table"`

	// RetryInitial and RetryMax bound the backoff for failed kernel
	// operations.
	RetryInitial time.Duration `koanf:"retry_initial"`
	RetryMax     time.Duration `koanf:"retry_max"`
}

// StoreConfig selects the persisted configuration store.
type StoreConfig struct {
	// Type is "file" (the interfaces and routes sections of this file) or
	// "ovsdb".
	Type string `koanf:"type"`

	// Watch reloads the file store when the file changes on disk.
	Watch bool `koanf:"watch"`

	// Endpoint is the OVSDB server endpoint (e.g., "unix:/var/run/goribd/ovsdb.sock").
	Endpoint string `koanf:"endpoint"`

	// Database is the OVSDB database name.
	Database string `koanf:"database"`

	// VRF names the VRF row whose ports are routed. Ports outside it are
	// layer-2 only.
	VRF string `koanf:"vrf"`

	// Debounce coalesces bursts of OVSDB updates into one reload.
	Debounce time.Duration `koanf:"debounce"`
}

// GoBGPConfig holds the GoBGP route source configuration.
type GoBGPConfig struct {
	// Enabled activates the GoBGP best-path watcher.
	Enabled bool `koanf:"enabled"`

	// Addr is the GoBGP gRPC API address (e.g., "127.0.0.1:50051").
	Addr string `koanf:"addr"`

	// Distance is the administrative distance of BGP routes.
	Distance uint32 `koanf:"distance"`

	// StaleTime keeps imported routes after the watch stream breaks so
	// that a GoBGP restart does not flush the FIB. Zero withdraws them
	// immediately.
	StaleTime time.Duration `koanf:"stale_time"`

	// Dampening configures route flap dampening of imported prefixes.
	Dampening DampeningConfig `koanf:"dampening"`
}

// DampeningConfig holds route flap dampening parameters.
type DampeningConfig struct {
	// Enabled activates flap dampening.
	Enabled bool `koanf:"enabled"`

	// SuppressThreshold is the penalty at which a prefix is suppressed.
	SuppressThreshold float64 `koanf:"suppress_threshold"`

	// ReuseThreshold is the penalty below which a suppressed prefix is
	// reused.
	ReuseThreshold float64 `koanf:"reuse_threshold"`

	// MaxSuppressTime caps how long a prefix stays suppressed.
	MaxSuppressTime time.Duration `koanf:"max_suppress_time"`

	// HalfLife is the penalty decay half-life.
	HalfLife time.Duration `koanf:"half_life"`
}

// LinkMonitorConfig controls live link state tracking.
type LinkMonitorConfig struct {
	// Enabled subscribes to kernel link notifications.
	Enabled bool `koanf:"enabled"`
}

// InterfaceConfig is one declarative interface.
type InterfaceConfig struct {
	// Name is the kernel interface name.
	Name string `koanf:"name"`

	// Addresses are host/prefix-length addresses (e.g., "10.0.0.1/24").
	Addresses []string `koanf:"addresses"`

	// Shutdown sets the interface administratively down.
	Shutdown bool `koanf:"shutdown"`

	// NoRouting marks a pure layer-2 port.
	NoRouting bool `koanf:"no_routing"`
}

// RouteConfig is one declarative route.
type RouteConfig struct {
	// Prefix is the destination (e.g., "10.1.0.0/16").
	Prefix string `koanf:"prefix"`

	// Protocol is "static" (default), "bgp" or "zebra".
	Protocol string `koanf:"protocol"`

	// Distance is the administrative distance; 0 selects the protocol default.
	Distance uint32 `koanf:"distance"`

	// Metric is the route metric.
	Metric uint32 `koanf:"metric"`

	// NextHops are gateway addresses or interface names.
	NextHops []string `koanf:"nexthops"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GRPC: GRPCConfig{
			Addr: ":50052",
		},
		Metrics: MetricsConfig{
			Addr: ":9101",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		RIB: RIBConfig{
			TieBreak:         "protocol",
			QueueSize:        1024,
			HistorySize:      256,
			LoadRetryInitial: 500 * time.Millisecond,
			LoadRetryMax:     5 * time.Second,
			LoadTimeout:      time.Minute,
		},
		FIB: FIBConfig{
			Backend:      "netlink",
			RetryInitial: 100 * time.Millisecond,
			RetryMax:     30 * time.Second,
		},
		Store: StoreConfig{
			Type:     "file",
			Watch:    true,
			Database: "goribd",
			VRF:      "vrf_default",
			Debounce: 100 * time.Millisecond,
		},
		GoBGP: GoBGPConfig{
			Addr:      "127.0.0.1:50051",
			Distance:  rib.DistanceBGP,
			StaleTime: 30 * time.Second,
			Dampening: DampeningConfig{
				SuppressThreshold: 3,
				ReuseThreshold:    2,
				MaxSuppressTime:   60 * time.Second,
				HalfLife:          15 * time.Second,
			},
		},
		LinkMonitor: LinkMonitorConfig{
			Enabled: true,
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for goribd configuration.
// Variables are named GORIBD_<section>_<key>, e.g., GORIBD_GRPC_ADDR.
const envPrefix = "GORIBD_"

// sections lists the top-level keys that environment variables may
// address. Multi-word sections come first so they match before any
// single-word prefix.
var sections = []string{"link_monitor", "grpc", "metrics", "log", "rib", "fib", "store", "gobgp"}

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (GORIBD_ prefix), and merges on top of DefaultConfig().
// Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	GORIBD_GRPC_ADDR             -> grpc.addr
//	GORIBD_LOG_LEVEL             -> log.level
//	GORIBD_RIB_TIE_BREAK         -> rib.tie_break
//	GORIBD_FIB_BACKEND           -> fib.backend
//	GORIBD_STORE_TYPE            -> store.type
//	GORIBD_GOBGP_ENABLED         -> gobgp.enabled
//	GORIBD_LINK_MONITOR_ENABLED  -> link_monitor.enabled
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k, DefaultConfig()); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config from %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms GORIBD_RIB_TIE_BREAK -> rib.tie_break. The
// section is split off at the first underscore after a known section name;
// the remaining underscores belong to the key.
func envKeyMapper(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(s, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return strings.Replace(s, "_", ".", 1)
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"grpc.addr":              defaults.GRPC.Addr,
		"metrics.addr":           defaults.Metrics.Addr,
		"metrics.path":           defaults.Metrics.Path,
		"log.level":              defaults.Log.Level,
		"log.format":             defaults.Log.Format,
		"rib.tie_break":          defaults.RIB.TieBreak,
		"rib.fallback_to_active": defaults.RIB.FallbackToActive,
		"rib.queue_size":         defaults.RIB.QueueSize,
		"rib.history_size":       defaults.RIB.HistorySize,
		"rib.allow_empty_flush":  defaults.RIB.AllowEmptyFlush,
		"rib.load_retry_initial": defaults.RIB.LoadRetryInitial.String(),
		"rib.load_retry_max":     defaults.RIB.LoadRetryMax.String(),
		"rib.load_timeout":       defaults.RIB.LoadTimeout.String(),
		"fib.backend":            defaults.FIB.Backend,
		"fib.table":              defaults.FIB.Table,
		"fib.retry_initial":      defaults.FIB.RetryInitial.String(),
		"fib.retry_max":          defaults.FIB.RetryMax.String(),
		"store.type":             defaults.Store.Type,
		"store.watch":            defaults.Store.Watch,
		"store.endpoint":         defaults.Store.Endpoint,
		"store.database":         defaults.Store.Database,
		"store.vrf":              defaults.Store.VRF,
		"store.debounce":         defaults.Store.Debounce.String(),
		"gobgp.enabled":          defaults.GoBGP.Enabled,
		"gobgp.addr":             defaults.GoBGP.Addr,
		"gobgp.distance":         defaults.GoBGP.Distance,
		"gobgp.stale_time":       defaults.GoBGP.StaleTime.String(),

		"gobgp.dampening.enabled":            defaults.GoBGP.Dampening.Enabled,
		"gobgp.dampening.suppress_threshold": defaults.GoBGP.Dampening.SuppressThreshold,
		"gobgp.dampening.reuse_threshold":    defaults.GoBGP.Dampening.ReuseThreshold,
		"gobgp.dampening.max_suppress_time":  defaults.GoBGP.Dampening.MaxSuppressTime.String(),
		"gobgp.dampening.half_life":          defaults.GoBGP.Dampening.HalfLife.String(),
		"link_monitor.enabled":   defaults.LinkMonitor.Enabled,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrEmptyGRPCAddr indicates the gRPC listen address is empty.
	ErrEmptyGRPCAddr = errors.New("grpc.addr must not be empty")

	// ErrInvalidFIBBackend indicates an unknown kernel backend.
	ErrInvalidFIBBackend = errors.New("fib.backend must be netlink or memory")

	// ErrInvalidFIBTable indicates a negative kernel table id.
	ErrInvalidFIBTable = errors.New("fib.table must be >= 0")

	// ErrInvalidStoreType indicates an unknown configuration store.
	ErrInvalidStoreType = errors.New("store.type must be file or ovsdb")

	// ErrEmptyStoreEndpoint indicates the OVSDB store has no endpoint.
	ErrEmptyStoreEndpoint = errors.New("store.endpoint must not be empty for ovsdb")

	// ErrEmptyGoBGPAddr indicates GoBGP is enabled without an address.
	ErrEmptyGoBGPAddr = errors.New("gobgp.addr must not be empty when enabled")

	// ErrInvalidDampening indicates reuse_threshold is not below
	// suppress_threshold while dampening is enabled.
	ErrInvalidDampening = errors.New("gobgp.dampening.reuse_threshold must be < suppress_threshold")

	// ErrInvalidLoadTimeout indicates a non-positive reconciliation timeout.
	ErrInvalidLoadTimeout = errors.New("rib.load_timeout must be > 0")

	// ErrInvalidInterface indicates an invalid declarative interface.
	ErrInvalidInterface = errors.New("invalid interface")

	// ErrDuplicateInterface indicates two interfaces share a name.
	ErrDuplicateInterface = errors.New("duplicate interface name")

	// ErrInvalidRoute indicates an invalid declarative route.
	ErrInvalidRoute = errors.New("invalid route")
)

// Validate checks the configuration for logical errors.
// Returns the first validation error encountered.
func Validate(cfg *Config) error {
	if cfg.GRPC.Addr == "" {
		return ErrEmptyGRPCAddr
	}

	if _, err := rib.ParseTieBreak(cfg.RIB.TieBreak); err != nil {
		return fmt.Errorf("rib.tie_break: %w", err)
	}

	if cfg.RIB.LoadTimeout <= 0 {
		return ErrInvalidLoadTimeout
	}

	if !ValidFIBBackends[cfg.FIB.Backend] {
		return fmt.Errorf("fib.backend %q: %w", cfg.FIB.Backend, ErrInvalidFIBBackend)
	}

	if cfg.FIB.Table < 0 {
		return ErrInvalidFIBTable
	}

	switch cfg.Store.Type {
	case StoreFile:
	case StoreOVSDB:
		if cfg.Store.Endpoint == "" {
			return ErrEmptyStoreEndpoint
		}
	default:
		return fmt.Errorf("store.type %q: %w", cfg.Store.Type, ErrInvalidStoreType)
	}

	if cfg.GoBGP.Enabled && cfg.GoBGP.Addr == "" {
		return ErrEmptyGoBGPAddr
	}

	if d := cfg.GoBGP.Dampening; d.Enabled && d.ReuseThreshold >= d.SuppressThreshold {
		return ErrInvalidDampening
	}

	if _, err := cfg.Snapshot(); err != nil {
		return err
	}

	return nil
}

// Store types.
const (
	StoreFile  = "file"
	StoreOVSDB = "ovsdb"
)

// ValidFIBBackends lists the recognized kernel backend names.
var ValidFIBBackends = map[string]bool{
	"netlink": true,
	"memory":  true,
}

// -------------------------------------------------------------------------
// Conversion
// -------------------------------------------------------------------------

// Snapshot converts the declarative interfaces and routes into a RIB
// configuration snapshot.
func (c *Config) Snapshot() (*rib.ConfigSnapshot, error) {
	snap := &rib.ConfigSnapshot{}

	seen := make(map[string]struct{}, len(c.Interfaces))
	for i, ic := range c.Interfaces {
		ifc, err := ic.toInterface()
		if err != nil {
			return nil, fmt.Errorf("interfaces[%d]: %w: %w", i, ErrInvalidInterface, err)
		}
		if _, dup := seen[ifc.Name]; dup {
			return nil, fmt.Errorf("interfaces[%d] %q: %w", i, ifc.Name, ErrDuplicateInterface)
		}
		seen[ifc.Name] = struct{}{}
		snap.Interfaces = append(snap.Interfaces, ifc)
	}

	for i, rc := range c.Routes {
		route, err := rc.toRoute()
		if err != nil {
			return nil, fmt.Errorf("routes[%d]: %w: %w", i, ErrInvalidRoute, err)
		}
		snap.Routes = append(snap.Routes, route)
	}

	return snap, nil
}

func (ic InterfaceConfig) toInterface() (rib.Interface, error) {
	ifc := rib.Interface{
		Name:    ic.Name,
		AdminUp: !ic.Shutdown,
		Routing: !ic.NoRouting,
	}
	for _, s := range ic.Addresses {
		p, err := netip.ParsePrefix(strings.TrimSpace(s))
		if err != nil {
			return rib.Interface{}, fmt.Errorf("address %q: %w", s, err)
		}
		ifc.Addresses = append(ifc.Addresses, p)
	}
	if err := ifc.Validate(); err != nil {
		return rib.Interface{}, err
	}
	return ifc, nil
}

func (rc RouteConfig) toRoute() (rib.RouteConfig, error) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(rc.Prefix))
	if err != nil {
		return rib.RouteConfig{}, fmt.Errorf("prefix %q: %w", rc.Prefix, err)
	}

	proto := rib.ProtocolStatic
	if rc.Protocol != "" {
		if proto, err = rib.ParseProtocol(rc.Protocol); err != nil {
			return rib.RouteConfig{}, err
		}
	}

	route := rib.RouteConfig{
		Prefix:   prefix.Masked(),
		Protocol: proto,
		Distance: rc.Distance,
		Metric:   rc.Metric,
	}
	if len(rc.NextHops) == 0 {
		return rib.RouteConfig{}, fmt.Errorf("%s: %w", prefix, rib.ErrInvalidNextHop)
	}
	for _, s := range rc.NextHops {
		nh, err := rib.ParseNextHop(s)
		if err != nil {
			return rib.RouteConfig{}, err
		}
		ev := rib.RouteAdd{Prefix: route.Prefix, Protocol: proto, NextHop: nh}
		if err := ev.Validate(); err != nil {
			return rib.RouteConfig{}, err
		}
		route.NextHops = append(route.NextHops, nh)
	}
	return route, nil
}

// Policy returns the best-path selection policy.
func (c *Config) Policy() rib.Policy {
	tb, _ := rib.ParseTieBreak(c.RIB.TieBreak)
	return rib.Policy{TieBreak: tb, FallbackToActive: c.RIB.FallbackToActive}
}

// KernelRetry returns the backoff for failed kernel operations.
func (c *Config) KernelRetry() rib.RetryConfig {
	return rib.RetryConfig{InitialInterval: c.FIB.RetryInitial, MaxInterval: c.FIB.RetryMax}
}

// LoadRetry returns the backoff for reconciliation reads.
func (c *Config) LoadRetry() rib.LoadRetryConfig {
	return rib.LoadRetryConfig{
		InitialInterval: c.RIB.LoadRetryInitial,
		MaxInterval:     c.RIB.LoadRetryMax,
		MaxElapsedTime:  c.RIB.LoadTimeout,
	}
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
