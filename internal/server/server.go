// Package server implements the ConnectRPC server for the RIB daemon.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/netip"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dantte-lp/goribd/internal/rib"
	appversion "github.com/dantte-lp/goribd/internal/version"
	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

// Engine is the part of *rib.Engine the server depends on.
type Engine interface {
	Submit(ctx context.Context, ev rib.Event) error
	ShowRIB(filter netip.Prefix) []rib.RIBEntry
	RIBRouteDicts(filter netip.Prefix) []rib.RouteDict
	ShowFIB(filter netip.Prefix) []rib.FIBEntry
	FIBRouteDicts(filter netip.Prefix) []rib.RouteDict
	ShowKernelRoutes(ctx context.Context, filter netip.Prefix) ([]rib.KernelRoute, error)
	Interfaces() []rib.Interface
	Events() []rib.HistoryEntry
	Status() rib.Status
	Subscribe() (<-chan rib.FIBChange, func())
}

// RIBServer implements ribv1connect.RibServiceHandler.
//
// Each RPC translates its request into a rib.Event or a query and
// delegates to the engine. Mutations return once the engine has applied
// them.
type RIBServer struct {
	engine Engine
	logger *slog.Logger
}

// verify interface compliance at compile time.
var _ ribv1connect.RibServiceHandler = (*RIBServer)(nil)

// New creates a new RIBServer and returns the HTTP handler and path.
func New(engine Engine, logger *slog.Logger, opts ...connect.HandlerOption) (string, http.Handler) {
	srv := &RIBServer{
		engine: engine,
		logger: logger.With(slog.String("component", "server")),
	}
	return ribv1connect.NewRibServiceHandler(srv, opts...)
}

// -------------------------------------------------------------------------
// Show
// -------------------------------------------------------------------------

// ShowRIB returns every configured next-hop of every route.
func (s *RIBServer) ShowRIB(_ context.Context, req *ribv1.ShowRIBRequest) (*ribv1.ShowRIBResponse, error) {
	filter, err := parseFilter(req.GetPrefix())
	if err != nil {
		return nil, err
	}

	entries := s.engine.ShowRIB(filter)
	resp := &ribv1.ShowRIBResponse{
		Entries: make([]*ribv1.RIBEntry, 0, len(entries)),
		Routes:  routeDictsToProto(s.engine.RIBRouteDicts(filter)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &ribv1.RIBEntry{
			Prefix:   e.Prefix.String(),
			Protocol: e.Protocol.String(),
			Distance: e.Distance,
			Metric:   e.Metric,
			NextHop:  e.NextHop.String(),
			Active:   e.Active,
			Selected: e.Selected,
		})
	}
	return resp, nil
}

// ShowFIB returns the forwarding view.
func (s *RIBServer) ShowFIB(_ context.Context, req *ribv1.ShowFIBRequest) (*ribv1.ShowFIBResponse, error) {
	filter, err := parseFilter(req.GetPrefix())
	if err != nil {
		return nil, err
	}

	entries := s.engine.ShowFIB(filter)
	resp := &ribv1.ShowFIBResponse{
		Entries: make([]*ribv1.FIBEntry, 0, len(entries)),
		Routes:  routeDictsToProto(s.engine.FIBRouteDicts(filter)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &ribv1.FIBEntry{
			Prefix:    e.Prefix.String(),
			Protocol:  e.Protocol.String(),
			Distance:  e.Distance,
			Metric:    e.Metric,
			NextHops:  nextHopStrings(e.NextHops),
			Installed: e.Installed,
			Pending:   e.Pending,
		})
	}
	return resp, nil
}

// ShowKernelRoutes lists the kernel forwarding table.
func (s *RIBServer) ShowKernelRoutes(ctx context.Context, req *ribv1.ShowKernelRoutesRequest) (*ribv1.ShowKernelRoutesResponse, error) {
	filter, err := parseFilter(req.GetPrefix())
	if err != nil {
		return nil, err
	}

	routes, err := s.engine.ShowKernelRoutes(ctx, filter)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	resp := &ribv1.ShowKernelRoutesResponse{Routes: make([]*ribv1.KernelRoute, 0, len(routes))}
	for _, kr := range routes {
		resp.Routes = append(resp.Routes, &ribv1.KernelRoute{
			Prefix:   kr.Prefix.String(),
			NextHops: nextHopStrings(kr.NextHops),
			Source:   kr.Source,
			Owned:    kr.Owned,
		})
	}
	return resp, nil
}

// -------------------------------------------------------------------------
// Routes
// -------------------------------------------------------------------------

// AddRoute adds one next-hop to a route.
func (s *RIBServer) AddRoute(ctx context.Context, req *ribv1.AddRouteRequest) (*ribv1.AddRouteResponse, error) {
	prefix, proto, err := parseRouteKey(req.GetPrefix(), req.GetProtocol())
	if err != nil {
		return nil, err
	}
	nh, err := parseNextHop(req.GetNextHop())
	if err != nil {
		return nil, err
	}

	err = s.submit(ctx, rib.RouteAdd{
		Prefix:   prefix,
		Protocol: proto,
		Distance: req.GetDistance(),
		Metric:   req.GetMetric(),
		NextHop:  nh,
	})
	if err != nil {
		return nil, err
	}
	return &ribv1.AddRouteResponse{}, nil
}

// RemoveRoute removes one next-hop from a route, or the whole route when
// no next-hop is given.
func (s *RIBServer) RemoveRoute(ctx context.Context, req *ribv1.RemoveRouteRequest) (*ribv1.RemoveRouteResponse, error) {
	prefix, proto, err := parseRouteKey(req.GetPrefix(), req.GetProtocol())
	if err != nil {
		return nil, err
	}

	var ev rib.Event = rib.RouteWithdraw{Prefix: prefix, Protocol: proto}
	if strings.TrimSpace(req.GetNextHop()) != "" {
		var nh rib.NextHop
		if nh, err = parseNextHop(req.GetNextHop()); err != nil {
			return nil, err
		}
		ev = rib.RouteRemove{Prefix: prefix, Protocol: proto, NextHop: nh}
	}

	if err = s.submit(ctx, ev); err != nil {
		return nil, err
	}
	return &ribv1.RemoveRouteResponse{}, nil
}

// SetRouteAttrs changes distance and metric of an existing route.
func (s *RIBServer) SetRouteAttrs(ctx context.Context, req *ribv1.SetRouteAttrsRequest) (*ribv1.SetRouteAttrsResponse, error) {
	prefix, proto, err := parseRouteKey(req.GetPrefix(), req.GetProtocol())
	if err != nil {
		return nil, err
	}

	err = s.submit(ctx, rib.RouteAttrs{
		Prefix:   prefix,
		Protocol: proto,
		Distance: req.GetDistance(),
		Metric:   req.GetMetric(),
	})
	if err != nil {
		return nil, err
	}
	return &ribv1.SetRouteAttrsResponse{}, nil
}

// -------------------------------------------------------------------------
// Interfaces
// -------------------------------------------------------------------------

// SetInterface creates or replaces an interface.
func (s *RIBServer) SetInterface(ctx context.Context, req *ribv1.SetInterfaceRequest) (*ribv1.SetInterfaceResponse, error) {
	in := req.GetInterface()
	if in == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("missing interface: %w", rib.ErrInvalidInterface))
	}

	ifc := rib.Interface{
		Name:    in.GetName(),
		AdminUp: in.GetAdminUp(),
		Routing: in.GetRouting(),
	}
	for _, a := range in.GetAddresses() {
		p, err := parseAddress(a)
		if err != nil {
			return nil, err
		}
		ifc.Addresses = append(ifc.Addresses, p)
	}

	if err := s.submit(ctx, rib.InterfaceSet{Interface: ifc}); err != nil {
		return nil, err
	}
	return &ribv1.SetInterfaceResponse{}, nil
}

// RemoveInterface removes an interface and its addresses.
func (s *RIBServer) RemoveInterface(ctx context.Context, req *ribv1.RemoveInterfaceRequest) (*ribv1.RemoveInterfaceResponse, error) {
	if err := s.submit(ctx, rib.InterfaceRemove{Name: req.GetName()}); err != nil {
		return nil, err
	}
	return &ribv1.RemoveInterfaceResponse{}, nil
}

// AddAddress assigns an address to a configured interface.
func (s *RIBServer) AddAddress(ctx context.Context, req *ribv1.AddAddressRequest) (*ribv1.AddAddressResponse, error) {
	addr, err := parseAddress(req.GetAddress())
	if err != nil {
		return nil, err
	}
	if err = s.submit(ctx, rib.AddressAdd{Interface: req.GetInterface(), Address: addr}); err != nil {
		return nil, err
	}
	return &ribv1.AddAddressResponse{}, nil
}

// RemoveAddress removes an address from an interface.
func (s *RIBServer) RemoveAddress(ctx context.Context, req *ribv1.RemoveAddressRequest) (*ribv1.RemoveAddressResponse, error) {
	addr, err := parseAddress(req.GetAddress())
	if err != nil {
		return nil, err
	}
	if err = s.submit(ctx, rib.AddressRemove{Interface: req.GetInterface(), Address: addr}); err != nil {
		return nil, err
	}
	return &ribv1.RemoveAddressResponse{}, nil
}

// SetLinkState reports the operational state of an interface.
func (s *RIBServer) SetLinkState(ctx context.Context, req *ribv1.SetLinkStateRequest) (*ribv1.SetLinkStateResponse, error) {
	if err := s.submit(ctx, rib.LinkUpdate{Name: req.GetName(), Up: req.GetUp()}); err != nil {
		return nil, err
	}
	return &ribv1.SetLinkStateResponse{}, nil
}

// ListInterfaces returns the interface table with operational state.
func (s *RIBServer) ListInterfaces(_ context.Context, _ *ribv1.ListInterfacesRequest) (*ribv1.ListInterfacesResponse, error) {
	ifaces := s.engine.Interfaces()
	resp := &ribv1.ListInterfacesResponse{Interfaces: make([]*ribv1.Interface, 0, len(ifaces))}
	for _, ifc := range ifaces {
		out := &ribv1.Interface{
			Name:    ifc.Name,
			AdminUp: ifc.AdminUp,
			OperUp:  ifc.OperUp,
			Routing: ifc.Routing,
		}
		for _, a := range ifc.Addresses {
			out.Addresses = append(out.Addresses, a.String())
		}
		resp.Interfaces = append(resp.Interfaces, out)
	}
	return resp, nil
}

// -------------------------------------------------------------------------
// Status and Events
// -------------------------------------------------------------------------

// Status returns a summary of the engine state.
func (s *RIBServer) Status(_ context.Context, _ *ribv1.StatusRequest) (*ribv1.StatusResponse, error) {
	st := s.engine.Status()

	routes := make(map[string]uint32, len(st.Routes))
	for proto, n := range st.Routes {
		routes[proto.String()] = count(n)
	}

	return &ribv1.StatusResponse{
		Phase:            st.Phase.String(),
		PhaseSince:       timestamppb.New(st.PhaseSince),
		LastError:        st.LastError,
		Prefixes:         count(st.Prefixes),
		Routes:           routes,
		Interfaces:       count(st.Interfaces),
		FibEntries:       count(st.FIBEntries),
		KernelOwned:      count(st.KernelOwned),
		KernelPending:    count(st.KernelPending),
		TieBreak:         st.TieBreak.String(),
		FallbackToActive: st.Fallback,
		Version:          appversion.Short(),
	}, nil
}

// ListEvents returns the recent event history, oldest first.
func (s *RIBServer) ListEvents(_ context.Context, _ *ribv1.ListEventsRequest) (*ribv1.ListEventsResponse, error) {
	hist := s.engine.Events()
	resp := &ribv1.ListEventsResponse{Events: make([]*ribv1.Event, 0, len(hist))}
	for _, h := range hist {
		resp.Events = append(resp.Events, &ribv1.Event{
			Time:     timestamppb.New(h.Time),
			Type:     h.Type,
			Summary:  h.Summary,
			Error:    h.Err,
			Affected: count(h.Affected),
		})
	}
	return resp, nil
}

// WatchFIB streams FIB view changes (server-side streaming). The stream
// ends with CodeUnavailable when the engine stops.
func (s *RIBServer) WatchFIB(ctx context.Context, req *ribv1.WatchFIBRequest, stream *connect.ServerStream[ribv1.WatchFIBResponse]) error {
	// Subscribe before the snapshot so no change falls between the two.
	changes, cancel := s.engine.Subscribe()
	defer cancel()

	s.logger.InfoContext(ctx, "fib watch started",
		slog.Bool("include_current", req.GetIncludeCurrent()),
	)

	if req.GetIncludeCurrent() {
		now := timestamppb.Now()
		for _, e := range s.engine.ShowFIB(netip.Prefix{}) {
			if err := stream.Send(&ribv1.WatchFIBResponse{
				Time:     now,
				Prefix:   e.Prefix.String(),
				Protocol: e.Protocol.String(),
				NextHops: nextHopStrings(e.NextHops),
			}); err != nil {
				return fmt.Errorf("send current fib entry: %w", err)
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-changes:
			if !ok {
				return connect.NewError(connect.CodeUnavailable, rib.ErrEngineStopped)
			}
			if err := stream.Send(fibChangeToProto(ch)); err != nil {
				return fmt.Errorf("send fib change: %w", err)
			}
		}
	}
}

// -------------------------------------------------------------------------
// Helpers
// -------------------------------------------------------------------------

// submit applies ev and maps engine errors to connect codes.
func (s *RIBServer) submit(ctx context.Context, ev rib.Event) error {
	if err := s.engine.Submit(ctx, ev); err != nil {
		return connectError(err)
	}
	return nil
}

// connectError maps RIB errors to connect codes.
func connectError(err error) error {
	switch {
	case errors.Is(err, rib.ErrInvalidPrefix),
		errors.Is(err, rib.ErrInvalidNextHop),
		errors.Is(err, rib.ErrInvalidProtocol),
		errors.Is(err, rib.ErrDerivedProtocol),
		errors.Is(err, rib.ErrFamilyMismatch),
		errors.Is(err, rib.ErrInvalidInterface),
		errors.Is(err, rib.ErrInvalidAddress),
		errors.Is(err, rib.ErrUnknownEvent):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, rib.ErrAttrConflict):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, rib.ErrRouteNotFound),
		errors.Is(err, rib.ErrUnknownInterface):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, rib.ErrEngineStopped),
		errors.Is(err, rib.ErrStoreUnavailable),
		errors.Is(err, rib.ErrKernelUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// parseFilter parses an optional prefix filter.
func parseFilter(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, nil
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("prefix %q: %w", s, rib.ErrInvalidPrefix))
	}
	return p, nil
}

// parseRouteKey parses the (prefix, protocol) pair of a route request.
func parseRouteKey(prefix, protocol string) (netip.Prefix, rib.Protocol, error) {
	p, err := netip.ParsePrefix(strings.TrimSpace(prefix))
	if err != nil {
		return netip.Prefix{}, 0, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("prefix %q: %w", prefix, rib.ErrInvalidPrefix))
	}
	if protocol == "" {
		protocol = rib.ProtocolStatic.String()
	}
	proto, err := rib.ParseProtocol(protocol)
	if err != nil {
		return netip.Prefix{}, 0, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return p, proto, nil
}

func parseNextHop(s string) (rib.NextHop, error) {
	nh, err := rib.ParseNextHop(s)
	if err != nil {
		return rib.NextHop{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nh, nil
}

func parseAddress(s string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(strings.TrimSpace(s))
	if err != nil {
		return netip.Prefix{}, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("address %q: %w", s, rib.ErrInvalidAddress))
	}
	return p, nil
}

func nextHopStrings(nhs []rib.NextHop) []string {
	out := make([]string, 0, len(nhs))
	for _, nh := range nhs {
		out = append(out, nh.String())
	}
	return out
}

func routeDictsToProto(dicts []rib.RouteDict) []*ribv1.RouteDict {
	out := make([]*ribv1.RouteDict, 0, len(dicts))
	for _, d := range dicts {
		nhs := make(map[string]*ribv1.NextHopAttrs, len(d.NextHops))
		for k, v := range d.NextHops {
			nhs[k] = &ribv1.NextHopAttrs{Distance: v.Distance, Metric: v.Metric, RouteType: v.RouteType}
		}
		out = append(out, &ribv1.RouteDict{
			Route:          d.Route,
			NumberNexthops: d.NumberNexthops,
			NextHops:       nhs,
		})
	}
	return out
}

func fibChangeToProto(ch rib.FIBChange) *ribv1.WatchFIBResponse {
	out := &ribv1.WatchFIBResponse{
		Time:    timestamppb.New(ch.Time),
		Prefix:  ch.Prefix.String(),
		Removed: ch.Removed(),
	}
	if !ch.Removed() {
		out.Protocol = ch.Protocol.String()
		out.NextHops = nextHopStrings(ch.NextHops)
	}
	return out
}

// count converts a table size to its wire form, saturating at MaxUint32.
func count(n int) uint32 {
	if n < 0 {
		return 0
	}
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
