package rib

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/netip"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// defaultQueueSize is the event queue depth. Submit blocks when full.
	defaultQueueSize = 1024

	// fibChangeChSize is the per-subscriber FIB change buffer.
	fibChangeChSize = 256
)

// FIBChange reports a change of the forwarding view of one prefix.
type FIBChange struct {
	Prefix netip.Prefix

	// Protocol of the selected route; zero when the FIB entry was removed.
	Protocol Protocol

	// NextHops is the new active next-hop set; empty when removed.
	NextHops []NextHop

	Time time.Time
}

// Removed reports whether the prefix no longer has a FIB entry.
func (c FIBChange) Removed() bool {
	return len(c.NextHops) == 0
}

type request struct {
	ev   Event
	done chan error
}

// -------------------------------------------------------------------------
// Engine: RIB/FIB owner for one VRF
// -------------------------------------------------------------------------

// Engine owns the route table, interface table, selection results and FIB
// state of one VRF. All mutations run on the goroutine executing Run.
// Reads take a snapshot under a read lock and never observe a partially
// applied event.
type Engine struct {
	kernel     Kernel
	source     ConfigSource
	linkStates LinkStateSource
	metrics    MetricsReporter
	policy     Policy
	retry      RetryConfig
	loadRetry  LoadRetryConfig
	allowEmpty bool
	queueSize  int
	histSize   int
	logger     *slog.Logger

	mu         sync.RWMutex
	table      *Table
	ifaces     map[string]Interface
	linkUp     map[string]bool
	connected  map[routeKey]map[string]struct{}
	resolver   *Resolver
	selected   map[netip.Prefix]Selection
	hist       *history
	phase      Phase
	phaseSince time.Time
	lastErr    error

	fib *fibSync

	requests chan request
	ready    chan struct{}
	stopped  chan struct{}
	started  atomic.Bool

	subMu      sync.Mutex
	subs       map[chan FIBChange]chan struct{} // value: lost signal
	subsClosed bool
}

// EngineOption configures optional Engine parameters.
type EngineOption func(*Engine)

// WithMetrics sets the MetricsReporter. If mr is nil, a no-op reporter is used.
func WithMetrics(mr MetricsReporter) EngineOption {
	return func(e *Engine) {
		if mr != nil {
			e.metrics = mr
		}
	}
}

// WithPolicy sets the best-path selection policy.
func WithPolicy(p Policy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithKernelRetry sets the backoff for failed kernel operations.
func WithKernelRetry(rc RetryConfig) EngineOption {
	return func(e *Engine) {
		if rc.InitialInterval > 0 {
			e.retry.InitialInterval = rc.InitialInterval
		}
		if rc.MaxInterval > 0 {
			e.retry.MaxInterval = rc.MaxInterval
		}
	}
}

// WithLoadRetry sets the backoff for configuration store and kernel reads
// during restart reconciliation.
func WithLoadRetry(lc LoadRetryConfig) EngineOption {
	return func(e *Engine) {
		e.loadRetry = lc
	}
}

// WithAllowEmptyFlush permits an empty configuration to delete every owned
// kernel route at startup.
func WithAllowEmptyFlush(allow bool) EngineOption {
	return func(e *Engine) {
		e.allowEmpty = allow
	}
}

// WithQueueSize sets the event queue depth.
func WithQueueSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.queueSize = n
		}
	}
}

// WithHistorySize sets the number of events kept in the event log.
func WithHistorySize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.histSize = n
		}
	}
}

// WithLinkStates sets the source of live link state read during restart
// reconciliation.
func WithLinkStates(ls LinkStateSource) EngineOption {
	return func(e *Engine) {
		e.linkStates = ls
	}
}

// NewEngine creates an engine programming kernel from the configuration in
// source. The event loop is not started until Run is called; events
// submitted before that are queued.
func NewEngine(logger *slog.Logger, kernel Kernel, source ConfigSource, opts ...EngineOption) *Engine {
	e := &Engine{
		kernel:    kernel,
		source:    source,
		metrics:   noopMetrics{},
		retry:     DefaultRetryConfig(),
		loadRetry: DefaultLoadRetryConfig(),
		queueSize: defaultQueueSize,
		histSize:  defaultHistorySize,
		logger:    logger.With(slog.String("component", "rib.engine")),
		phase:     PhaseStopped,
		ready:     make(chan struct{}),
		stopped:   make(chan struct{}),
		subs:      make(map[chan FIBChange]chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.requests = make(chan request, e.queueSize)
	e.hist = newHistory(e.histSize)
	e.fib = newFIBSync(kernel, e.retry, e.metrics, e.logger)
	e.resetLocked()
	e.phaseSince = time.Now()
	return e
}

// resetLocked discards all RIB state. Caller holds mu or owns e exclusively.
func (e *Engine) resetLocked() {
	e.table = NewTable()
	e.ifaces = make(map[string]Interface)
	e.linkUp = make(map[string]bool)
	e.connected = make(map[routeKey]map[string]struct{})
	e.selected = make(map[netip.Prefix]Selection)
	e.resolver = NewResolver(nil)
}

// -------------------------------------------------------------------------
// Event Loop
// -------------------------------------------------------------------------

// Run reconciles the RIB and FIB with the configuration store, then
// processes events until ctx is cancelled. A reconciliation failure is
// returned and the engine never reaches RUNNING.
func (e *Engine) Run(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrEngineRunning
	}
	defer e.shutdown()

	if err := e.reconcile(ctx); err != nil {
		if ctx.Err() != nil {
			e.setPhase(PhaseStopped, nil)
			return nil
		}
		e.setPhase(PhaseFailed, err)
		return fmt.Errorf("restart reconciliation: %w", err)
	}
	close(e.ready)

	e.logger.Info("rib engine running",
		slog.Int("prefixes", e.tableLen()),
		slog.String("tie_break", e.policy.TieBreak.String()),
		slog.Bool("fallback_to_active", e.policy.FallbackToActive),
	)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		retryC := e.armRetry(timer)
		select {
		case <-ctx.Done():
			e.setPhase(PhaseStopped, nil)
			e.logger.Info("rib engine stopped")
			return nil
		case req := <-e.requests:
			req.done <- e.apply(ctx, req.ev)
		case <-retryC:
			e.retryDue(ctx)
		}
	}
}

func (e *Engine) armRetry(timer *time.Timer) <-chan time.Time {
	next, ok := e.fib.nextRetry()
	if !ok {
		timer.Stop()
		return nil
	}
	timer.Reset(time.Until(next))
	return timer.C
}

func (e *Engine) shutdown() {
	close(e.stopped)

	e.subMu.Lock()
	defer e.subMu.Unlock()
	for ch := range e.subs {
		close(ch)
		delete(e.subs, ch)
	}
	e.subsClosed = true
}

// Submit validates ev, enqueues it and blocks until the engine has applied
// it and the RIB, selection and FIB have reached a fixed point. Kernel
// failures do not fail Submit; they are retried in the background.
// Events submitted before or during restart reconciliation are applied
// once it completes.
func (e *Engine) Submit(ctx context.Context, ev Event) error {
	if ev == nil {
		return ErrUnknownEvent
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	req := request{ev: ev, done: make(chan error, 1)}
	select {
	case e.requests <- req:
	case <-e.stopped:
		return ErrEngineStopped
	case <-ctx.Done():
		return fmt.Errorf("submit %s: %w", ev.Type(), ctx.Err())
	}

	select {
	case err := <-req.done:
		return err
	case <-e.stopped:
		select {
		case err := <-req.done:
			return err
		default:
			return ErrEngineStopped
		}
	case <-ctx.Done():
		return fmt.Errorf("submit %s: %w", ev.Type(), ctx.Err())
	}
}

// Ready is closed when the engine enters RUNNING.
func (e *Engine) Ready() <-chan struct{} {
	return e.ready
}

// Done is closed when Run returns.
func (e *Engine) Done() <-chan struct{} {
	return e.stopped
}

// Subscribe returns a channel of FIB view changes. The channel is closed
// when cancel is called or the engine stops. Changes are dropped when the
// subscriber falls behind.
func (e *Engine) Subscribe() (<-chan FIBChange, func()) {
	ch, _, cancel := e.SubscribeTracked()
	return ch, cancel
}

// SubscribeTracked is Subscribe with a second channel that receives a token
// whenever changes for this subscriber were dropped. A consumer that must
// not miss a change resynchronizes from ShowFIB on that signal.
func (e *Engine) SubscribeTracked() (<-chan FIBChange, <-chan struct{}, func()) {
	ch := make(chan FIBChange, fibChangeChSize)
	lost := make(chan struct{}, 1)

	e.subMu.Lock()
	defer e.subMu.Unlock()
	if e.subsClosed {
		close(ch)
		return ch, lost, func() {}
	}
	e.subs[ch] = lost

	var once sync.Once
	return ch, lost, func() {
		once.Do(func() {
			e.subMu.Lock()
			defer e.subMu.Unlock()
			if _, ok := e.subs[ch]; ok {
				delete(e.subs, ch)
				close(ch)
			}
		})
	}
}

func (e *Engine) publish(changes []FIBChange) {
	if len(changes) == 0 {
		return
	}
	e.subMu.Lock()
	defer e.subMu.Unlock()
	for ch, lost := range e.subs {
		dropped := 0
		for _, c := range changes {
			select {
			case ch <- c:
			default:
				dropped++
			}
		}
		if dropped == 0 {
			continue
		}
		select {
		case lost <- struct{}{}:
		default:
		}
		e.logger.Warn("fib change subscriber full, dropping changes",
			slog.Int("dropped", dropped),
		)
	}
}

// -------------------------------------------------------------------------
// Event Application
// -------------------------------------------------------------------------

// apply runs one event to a fixed point: RIB mutation, next-hop
// re-resolution, selection of the affected prefixes, kernel sync.
func (e *Engine) apply(ctx context.Context, ev Event) error {
	ev = ev.normalize()

	e.mu.Lock()
	affected, err := e.mutateLocked(ev)
	var changes []FIBChange
	if err == nil {
		changes = e.reselectLocked(affected)
	}
	e.recordLocked(ev, err, len(affected))
	e.mu.Unlock()

	e.metrics.IncEvents(ev.Type(), err == nil)
	if err != nil {
		e.logger.Warn("event rejected",
			slog.String("event", ev.Type()),
			slog.String("detail", ev.String()),
			slog.String("error", err.Error()),
		)
		return err
	}

	e.logger.Debug("event applied",
		slog.String("event", ev.Type()),
		slog.String("detail", ev.String()),
		slog.Int("affected", len(affected)),
	)

	e.publish(changes)
	e.syncPrefixes(ctx, affected)
	e.reportCounts()
	return nil
}

type prefixSet map[netip.Prefix]struct{}

func (s prefixSet) add(ps ...netip.Prefix) {
	for _, p := range ps {
		s[p] = struct{}{}
	}
}

func (s prefixSet) sorted() []netip.Prefix {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, comparePrefix)
	return out
}

// mutateLocked applies ev to the route and interface tables and returns
// the prefixes whose selection may have changed.
func (e *Engine) mutateLocked(ev Event) (prefixSet, error) {
	affected := make(prefixSet)

	switch ev := ev.(type) {
	case RouteAdd:
		changed, err := e.table.AddRoute(ev.Prefix, ev.Protocol, ev.Distance, ev.Metric, ev.NextHop)
		if err != nil {
			return nil, err
		}
		if changed {
			affected.add(ev.Prefix)
		}

	case RouteRemove:
		if e.table.RemoveRoute(ev.Prefix, ev.Protocol, ev.NextHop) {
			affected.add(ev.Prefix)
		}

	case RouteAttrs:
		changed, err := e.table.SetRouteAttrs(ev.Prefix, ev.Protocol, ev.Distance, ev.Metric)
		if err != nil {
			return nil, err
		}
		if changed {
			affected.add(ev.Prefix)
		}

	case RouteReplace:
		if e.table.ReplaceRoute(ev.Prefix, ev.Protocol, ev.Distance, ev.Metric, ev.NextHops) {
			affected.add(ev.Prefix)
		}

	case RouteWithdraw:
		if e.table.WithdrawRoute(ev.Prefix, ev.Protocol) {
			affected.add(ev.Prefix)
		}

	case InterfaceSet:
		ifc := ev.Interface
		e.updateInterfacesLocked(affected, func() {
			e.ifaces[ifc.Name] = ifc
		})

	case InterfaceRemove:
		if _, ok := e.ifaces[ev.Name]; !ok {
			return affected, nil
		}
		e.updateInterfacesLocked(affected, func() {
			delete(e.ifaces, ev.Name)
		})

	case AddressAdd:
		ifc, ok := e.ifaces[ev.Interface]
		if !ok {
			return nil, fmt.Errorf("address %s on %s: %w", ev.Address, ev.Interface, ErrUnknownInterface)
		}
		if slices.Contains(ifc.Addresses, ev.Address) {
			return affected, nil
		}
		e.updateInterfacesLocked(affected, func() {
			ifc.Addresses = append(slices.Clone(ifc.Addresses), ev.Address)
			e.ifaces[ifc.Name] = ifc
		})

	case AddressRemove:
		ifc, ok := e.ifaces[ev.Interface]
		if !ok {
			return affected, nil
		}
		idx := slices.Index(ifc.Addresses, ev.Address)
		if idx < 0 {
			return affected, nil
		}
		e.updateInterfacesLocked(affected, func() {
			ifc.Addresses = slices.Delete(slices.Clone(ifc.Addresses), idx, idx+1)
			e.ifaces[ifc.Name] = ifc
		})

	case LinkUpdate:
		if up, ok := e.linkUp[ev.Name]; ok && up == ev.Up {
			return affected, nil
		}
		e.updateInterfacesLocked(affected, func() {
			e.linkUp[ev.Name] = ev.Up
		})

	default:
		return nil, fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}

	return affected, nil
}

// updateInterfacesLocked runs mutate on the interface table, rebuilds the
// resolver and connected routes, and adds to affected every prefix with a
// next-hop whose activity changed.
func (e *Engine) updateInterfacesLocked(affected prefixSet, mutate func()) {
	before := e.resolver
	mutate()
	e.resolver = NewResolver(e.interfacesLocked())
	e.syncConnectedLocked(affected)

	for _, nh := range e.table.NextHops() {
		if before.Active(nh) != e.resolver.Active(nh) {
			affected.add(e.table.PrefixesVia(nh)...)
		}
	}
}

// syncConnectedLocked derives connected routes from the addresses of
// eligible interfaces. A shut, link-down or layer-2 interface contributes
// none, so its subnets fall through to other protocols.
func (e *Engine) syncConnectedLocked(affected prefixSet) {
	want := make(map[routeKey]map[string]struct{})
	for _, ifc := range e.interfacesLocked() {
		if !ifc.Eligible() {
			continue
		}
		for _, subnet := range ifc.Subnets() {
			key := routeKey{prefix: subnet, proto: ProtocolConnected}
			if want[key] == nil {
				want[key] = make(map[string]struct{})
			}
			want[key][ifc.Name] = struct{}{}
		}
	}

	for key, names := range e.connected {
		for name := range names {
			if _, ok := want[key][name]; ok {
				continue
			}
			if e.table.RemoveRoute(key.prefix, ProtocolConnected, IfaceNextHop(name)) {
				affected.add(key.prefix)
			}
		}
	}
	for key, names := range want {
		for name := range names {
			if _, ok := e.connected[key][name]; ok {
				continue
			}
			changed, err := e.table.AddRoute(key.prefix, ProtocolConnected, DistanceConnected, 0, IfaceNextHop(name))
			if err != nil {
				e.logger.Error("failed to add connected route",
					slog.String("prefix", key.prefix.String()),
					slog.String("interface", name),
					slog.String("error", err.Error()),
				)
				continue
			}
			if changed {
				affected.add(key.prefix)
			}
		}
	}
	e.connected = want
}

// interfacesLocked returns the interface table with operational state.
func (e *Engine) interfacesLocked() []Interface {
	out := make([]Interface, 0, len(e.ifaces))
	for _, ifc := range e.ifaces {
		c := ifc.clone()
		up, reported := e.linkUp[ifc.Name]
		c.OperUp = !reported || up
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Interface) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// reselectLocked recomputes the selection of each affected prefix and
// returns the resulting FIB view changes.
func (e *Engine) reselectLocked(affected prefixSet) []FIBChange {
	if len(affected) == 0 {
		return nil
	}
	now := time.Now()
	var changes []FIBChange

	for _, p := range affected.sorted() {
		old, had := e.selected[p]
		sel, ok := Select(e.table.routesOf(p), e.resolver, e.policy)
		if !ok {
			delete(e.selected, p)
			if had && old.Installable() {
				changes = append(changes, FIBChange{Prefix: p, Time: now})
			}
			continue
		}
		e.selected[p] = sel

		if !sel.Installable() {
			if had && old.Installable() {
				changes = append(changes, FIBChange{Prefix: p, Time: now})
			}
			continue
		}
		if had && old.Installable() && old.Route.Protocol == sel.Route.Protocol && nextHopSetEqual(old.Active, sel.Active) {
			continue
		}
		changes = append(changes, FIBChange{
			Prefix:   p,
			Protocol: sel.Route.Protocol,
			NextHops: slices.Clone(sel.Active),
			Time:     now,
		})
	}

	e.metrics.IncSelections(len(affected))
	return changes
}

// kernelDesired returns the next-hops that should be programmed for p.
// Routes of non-programmable protocols produce no kernel entry.
func (e *Engine) kernelDesired(p netip.Prefix) []NextHop {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sel, ok := e.selected[p]
	if !ok || !sel.Installable() || !sel.Route.Protocol.Programmable() {
		return nil
	}
	return slices.Clone(sel.Active)
}

func (e *Engine) syncPrefixes(ctx context.Context, affected prefixSet) {
	for _, p := range affected.sorted() {
		e.fib.sync(ctx, p, e.kernelDesired(p))
	}
}

func (e *Engine) retryDue(ctx context.Context) {
	for _, p := range e.fib.due(time.Now()) {
		e.fib.sync(ctx, p, e.kernelDesired(p))
	}
}

func (e *Engine) recordLocked(ev Event, err error, affected int) {
	entry := HistoryEntry{
		Time:     time.Now(),
		Type:     ev.Type(),
		Summary:  ev.String(),
		Affected: affected,
	}
	if err != nil {
		entry.Err = err.Error()
	}
	e.hist.add(entry)
}

func (e *Engine) reportCounts() {
	e.mu.RLock()
	counts := e.table.CountByProtocol()
	fibEntries := 0
	for _, sel := range e.selected {
		if sel.Installable() {
			fibEntries++
		}
	}
	e.mu.RUnlock()

	for _, proto := range Protocols {
		e.metrics.SetRoutes(proto, counts[proto])
	}
	e.metrics.SetFIBEntries(fibEntries)
}

func (e *Engine) tableLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table.Len()
}
