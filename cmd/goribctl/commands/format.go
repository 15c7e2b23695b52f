// Package commands implements the goribctl CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"gopkg.in/yaml.v3"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatYAML  = "yaml"
	valueNone   = "-"
)

// errUnsupportedFormat is returned when the requested output format is not supported.
var errUnsupportedFormat = errors.New("unsupported output format")

// render dispatches structured formats to the encoders and table output to
// table.
func render(format string, view any, table func() (string, error)) (string, error) {
	switch format {
	case formatJSON:
		return marshalJSON(view)
	case formatYAML:
		return marshalYAML(view)
	case formatTable:
		return table()
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

// formatRIB renders a RIB listing. Structured formats emit route
// dictionaries.
func formatRIB(resp *ribv1.ShowRIBResponse, format string) (string, error) {
	return render(format, routeDictsToView(resp.GetRoutes()), func() (string, error) {
		return formatRIBTable(resp.GetEntries())
	})
}

// formatFIB renders the forwarding view. Structured formats emit route
// dictionaries.
func formatFIB(resp *ribv1.ShowFIBResponse, format string) (string, error) {
	return render(format, routeDictsToView(resp.GetRoutes()), func() (string, error) {
		return formatFIBTable(resp.GetEntries())
	})
}

// formatKernelRoutes renders kernel routes.
func formatKernelRoutes(routes []*ribv1.KernelRoute, format string) (string, error) {
	views := make([]kernelRouteView, 0, len(routes))
	for _, r := range routes {
		views = append(views, kernelRouteView{
			Prefix:   r.GetPrefix(),
			NextHops: r.GetNextHops(),
			Source:   r.GetSource(),
			Owned:    r.GetOwned(),
		})
	}
	return render(format, views, func() (string, error) {
		return formatKernelTable(routes)
	})
}

// formatInterfaces renders the interface table.
func formatInterfaces(ifaces []*ribv1.Interface, format string) (string, error) {
	views := make([]interfaceView, 0, len(ifaces))
	for _, i := range ifaces {
		views = append(views, interfaceView{
			Name:      i.GetName(),
			AdminUp:   i.GetAdminUp(),
			OperUp:    i.GetOperUp(),
			Routing:   i.GetRouting(),
			Addresses: i.GetAddresses(),
		})
	}
	return render(format, views, func() (string, error) {
		return formatInterfaceTable(ifaces)
	})
}

// formatStatus renders the engine status.
func formatStatus(st *ribv1.StatusResponse, format string) (string, error) {
	return render(format, statusToView(st), func() (string, error) {
		return formatStatusDetail(st)
	})
}

// formatEvents renders the event history.
func formatEvents(events []*ribv1.Event, format string) (string, error) {
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, eventToView(e))
	}
	return render(format, views, func() (string, error) {
		return formatEventTable(events)
	})
}

// formatFIBChange renders one streamed FIB change on a single line for
// table output.
func formatFIBChange(ch *ribv1.WatchFIBResponse, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.Marshal(fibChangeToView(ch))
		if err != nil {
			return "", fmt.Errorf("marshal fib change to JSON: %w", err)
		}
		return string(data), nil
	case formatYAML:
		out, err := marshalYAML(fibChangeToView(ch))
		if err != nil {
			return "", err
		}
		return "---\n" + strings.TrimRight(out, "\n"), nil
	case formatTable:
		return formatFIBChangeLine(ch), nil
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

// --- Table formatters ---

func formatRIBTable(entries []*ribv1.RIBEntry) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tPROTOCOL\tDISTANCE\tMETRIC\tNEXTHOP\tACTIVE\tSELECTED")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			e.GetPrefix(), e.GetProtocol(), e.GetDistance(), e.GetMetric(), e.GetNextHop(),
			yesNo(e.GetActive()), selectedMark(e.GetSelected()),
		)
	}

	return flush(w, &buf)
}

func formatFIBTable(entries []*ribv1.FIBEntry) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tPROTOCOL\tDISTANCE\tMETRIC\tNEXTHOPS\tSTATE")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			e.GetPrefix(), e.GetProtocol(), e.GetDistance(), e.GetMetric(),
			joinOrNone(e.GetNextHops()), fibState(e),
		)
	}

	return flush(w, &buf)
}

func formatKernelTable(routes []*ribv1.KernelRoute) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tNEXTHOPS\tSOURCE\tOWNED")

	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.GetPrefix(), joinOrNone(r.GetNextHops()), r.GetSource(), yesNo(r.GetOwned()),
		)
	}

	return flush(w, &buf)
}

func formatInterfaceTable(ifaces []*ribv1.Interface) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tADMIN\tOPER\tROUTING\tADDRESSES")

	for _, i := range ifaces {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			i.GetName(), upDown(i.GetAdminUp()), upDown(i.GetOperUp()), yesNo(i.GetRouting()),
			joinOrNone(i.GetAddresses()),
		)
	}

	return flush(w, &buf)
}

func formatStatusDetail(st *ribv1.StatusResponse) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Phase:\t%s\n", st.GetPhase())
	if st.GetPhaseSince() != nil {
		fmt.Fprintf(w, "Phase Since:\t%s\n", formatTime(st.GetPhaseSince()))
	}
	if st.GetLastError() != "" {
		fmt.Fprintf(w, "Last Error:\t%s\n", st.GetLastError())
	}
	fmt.Fprintf(w, "Prefixes:\t%d\n", st.GetPrefixes())
	for _, proto := range slices.Sorted(maps.Keys(st.GetRoutes())) {
		fmt.Fprintf(w, "Routes (%s):\t%d\n", proto, st.GetRoutes()[proto])
	}
	fmt.Fprintf(w, "Interfaces:\t%d\n", st.GetInterfaces())
	fmt.Fprintf(w, "FIB Entries:\t%d\n", st.GetFibEntries())
	fmt.Fprintf(w, "Kernel Owned:\t%d\n", st.GetKernelOwned())
	fmt.Fprintf(w, "Kernel Pending:\t%d\n", st.GetKernelPending())
	fmt.Fprintf(w, "Tie Break:\t%s\n", st.GetTieBreak())
	fmt.Fprintf(w, "Fallback To Active:\t%s\n", yesNo(st.GetFallbackToActive()))
	fmt.Fprintf(w, "Daemon Version:\t%s\n", st.GetVersion())

	return flush(w, &buf)
}

func formatEventTable(events []*ribv1.Event) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tAFFECTED\tSUMMARY\tERROR")

	for _, e := range events {
		errText := e.GetError()
		if errText == "" {
			errText = valueNone
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			formatTime(e.GetTime()), e.GetType(), e.GetAffected(), e.GetSummary(), errText,
		)
	}

	return flush(w, &buf)
}

func formatFIBChangeLine(ch *ribv1.WatchFIBResponse) string {
	ts := formatTime(ch.GetTime())
	if ch.GetRemoved() {
		return fmt.Sprintf("[%s] removed  %s", ts, ch.GetPrefix())
	}
	return fmt.Sprintf("[%s] updated  %s  protocol=%s  nexthops=%s",
		ts, ch.GetPrefix(), ch.GetProtocol(), joinOrNone(ch.GetNextHops()))
}

// formatTime renders a wire timestamp in RFC 3339, or "-" when unset.
func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return valueNone
	}
	return ts.AsTime().Format(time.RFC3339)
}

func flush(w *tabwriter.Writer, buf *strings.Builder) (string, error) {
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	return buf.String(), nil
}

// --- Structured encoders ---

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal to JSON: %w", err)
	}

	return string(data) + "\n", nil
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal to YAML: %w", err)
	}

	return string(data), nil
}

// --- View types for clean structured output ---

// routeDictView keeps the capitalised keys of the route dictionary
// contract; the generated message would encode snake_case names.
type routeDictView struct {
	Route          string                  `json:"Route"          yaml:"Route"`
	NumberNexthops string                  `json:"NumberNexthops" yaml:"NumberNexthops"`
	NextHops       map[string]nextHopView `json:"NextHops"       yaml:"NextHops"`
}

type nextHopView struct {
	Distance  string `json:"Distance"  yaml:"Distance"`
	Metric    string `json:"Metric"    yaml:"Metric"`
	RouteType string `json:"RouteType" yaml:"RouteType"`
}

type kernelRouteView struct {
	Prefix   string   `json:"prefix"    yaml:"prefix"`
	NextHops []string `json:"next_hops" yaml:"next_hops"`
	Source   string   `json:"source"    yaml:"source"`
	Owned    bool     `json:"owned"     yaml:"owned"`
}

type interfaceView struct {
	Name      string   `json:"name"                yaml:"name"`
	AdminUp   bool     `json:"admin_up"            yaml:"admin_up"`
	OperUp    bool     `json:"oper_up"             yaml:"oper_up"`
	Routing   bool     `json:"routing"             yaml:"routing"`
	Addresses []string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

type statusView struct {
	Phase            string            `json:"phase"                yaml:"phase"`
	PhaseSince       string            `json:"phase_since"          yaml:"phase_since"`
	LastError        string            `json:"last_error,omitempty" yaml:"last_error,omitempty"`
	Prefixes         uint32            `json:"prefixes"             yaml:"prefixes"`
	Routes           map[string]uint32 `json:"routes"               yaml:"routes"`
	Interfaces       uint32            `json:"interfaces"           yaml:"interfaces"`
	FIBEntries       uint32            `json:"fib_entries"          yaml:"fib_entries"`
	KernelOwned      uint32            `json:"kernel_owned"         yaml:"kernel_owned"`
	KernelPending    uint32            `json:"kernel_pending"       yaml:"kernel_pending"`
	TieBreak         string            `json:"tie_break"            yaml:"tie_break"`
	FallbackToActive bool              `json:"fallback_to_active"   yaml:"fallback_to_active"`
	Version          string            `json:"version"              yaml:"version"`
}

type eventView struct {
	Time     string `json:"time"            yaml:"time"`
	Type     string `json:"type"            yaml:"type"`
	Summary  string `json:"summary"         yaml:"summary"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Affected uint32 `json:"affected"        yaml:"affected"`
}

type fibChangeView struct {
	Time     string   `json:"time"                yaml:"time"`
	Prefix   string   `json:"prefix"              yaml:"prefix"`
	Protocol string   `json:"protocol,omitempty"  yaml:"protocol,omitempty"`
	NextHops []string `json:"next_hops,omitempty" yaml:"next_hops,omitempty"`
	Removed  bool     `json:"removed"             yaml:"removed"`
}

// routeDictsToView never returns nil so that an empty table encodes as [].
func routeDictsToView(dicts []*ribv1.RouteDict) []routeDictView {
	views := make([]routeDictView, 0, len(dicts))
	for _, d := range dicts {
		hops := make(map[string]nextHopView, len(d.GetNextHops()))
		for nh, attrs := range d.GetNextHops() {
			hops[nh] = nextHopView{
				Distance:  attrs.GetDistance(),
				Metric:    attrs.GetMetric(),
				RouteType: attrs.GetRouteType(),
			}
		}
		views = append(views, routeDictView{
			Route:          d.GetRoute(),
			NumberNexthops: d.GetNumberNexthops(),
			NextHops:       hops,
		})
	}
	return views
}

func statusToView(st *ribv1.StatusResponse) statusView {
	v := statusView{
		Phase:            st.GetPhase(),
		LastError:        st.GetLastError(),
		Prefixes:         st.GetPrefixes(),
		Routes:           st.GetRoutes(),
		Interfaces:       st.GetInterfaces(),
		FIBEntries:       st.GetFibEntries(),
		KernelOwned:      st.GetKernelOwned(),
		KernelPending:    st.GetKernelPending(),
		TieBreak:         st.GetTieBreak(),
		FallbackToActive: st.GetFallbackToActive(),
		Version:          st.GetVersion(),
	}
	if st.GetPhaseSince() != nil {
		v.PhaseSince = formatTime(st.GetPhaseSince())
	}
	return v
}

func eventToView(e *ribv1.Event) eventView {
	return eventView{
		Time:     formatTime(e.GetTime()),
		Type:     e.GetType(),
		Summary:  e.GetSummary(),
		Error:    e.GetError(),
		Affected: e.GetAffected(),
	}
}

func fibChangeToView(ch *ribv1.WatchFIBResponse) fibChangeView {
	return fibChangeView{
		Time:     formatTime(ch.GetTime()),
		Prefix:   ch.GetPrefix(),
		Protocol: ch.GetProtocol(),
		NextHops: ch.GetNextHops(),
		Removed:  ch.GetRemoved(),
	}
}

// --- Short-name helpers ---

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func upDown(b bool) string {
	if b {
		return "up"
	}
	return "down"
}

func selectedMark(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return valueNone
	}
	return strings.Join(items, ",")
}

func fibState(e *ribv1.FIBEntry) string {
	switch {
	case e.GetPending():
		return "pending"
	case e.GetInstalled():
		return "installed"
	case e.GetProtocol() == "connected" || e.GetProtocol() == "zebra":
		return "kernel"
	default:
		return "not installed"
	}
}
