package gobgp_test

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	apipb "github.com/osrg/gobgp/v3/api"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/dantte-lp/goribd/internal/gobgp"
)

func mustAny(t *testing.T, m proto.Message) *anypb.Any {
	t.Helper()
	a, err := anypb.New(m)
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	return a
}

func TestDecodePath(t *testing.T) {
	t.Parallel()

	nlri := func(prefix string, bits uint32) *apipb.IPAddressPrefix {
		return &apipb.IPAddressPrefix{Prefix: prefix, PrefixLen: bits}
	}

	tests := []struct {
		name string
		path func(t *testing.T) *apipb.Path
		want gobgp.Path
	}{
		{
			name: "ipv4 with med",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{
					Nlri: mustAny(t, nlri("10.1.0.0", 16)),
					Pattrs: []*anypb.Any{
						mustAny(t, &apipb.OriginAttribute{Origin: 0}),
						mustAny(t, &apipb.NextHopAttribute{NextHop: "192.0.2.1"}),
						mustAny(t, &apipb.MultiExitDiscAttribute{Med: 50}),
					},
					NeighborIp: "192.0.2.1",
				}
			},
			want: gobgp.Path{
				Prefix:   netip.MustParsePrefix("10.1.0.0/16"),
				NextHop:  netip.MustParseAddr("192.0.2.1"),
				MED:      50,
				Neighbor: netip.MustParseAddr("192.0.2.1"),
			},
		},
		{
			name: "ipv6 prefers global next-hop",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{
					Nlri: mustAny(t, nlri("2001:db8:1::", 48)),
					Pattrs: []*anypb.Any{
						mustAny(t, &apipb.MpReachNLRIAttribute{NextHops: []string{"fe80::1", "2001:db8::1"}}),
					},
				}
			},
			want: gobgp.Path{
				Prefix:  netip.MustParsePrefix("2001:db8:1::/48"),
				NextHop: netip.MustParseAddr("2001:db8::1"),
			},
		},
		{
			name: "withdraw needs no next-hop",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{
					Nlri:       mustAny(t, nlri("10.2.0.0", 24)),
					IsWithdraw: true,
				}
			},
			want: gobgp.Path{
				Prefix:   netip.MustParsePrefix("10.2.0.0/24"),
				Withdraw: true,
			},
		},
		{
			name: "host bits masked",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{
					Nlri:   mustAny(t, nlri("10.3.0.1", 24)),
					Pattrs: []*anypb.Any{mustAny(t, &apipb.NextHopAttribute{NextHop: "192.0.2.9"})},
				}
			},
			want: gobgp.Path{
				Prefix:  netip.MustParsePrefix("10.3.0.0/24"),
				NextHop: netip.MustParseAddr("192.0.2.9"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := gobgp.DecodePath(tt.path(t))
			if err != nil {
				t.Fatalf("DecodePath: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(func(a, b netip.Addr) bool { return a == b }),
				cmp.Comparer(func(a, b netip.Prefix) bool { return a == b })); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodePathErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) *apipb.Path
		wantErr error
	}{
		{
			name:    "missing nlri",
			path:    func(*testing.T) *apipb.Path { return &apipb.Path{} },
			wantErr: gobgp.ErrUnsupportedNLRI,
		},
		{
			name: "vpn nlri",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{Nlri: mustAny(t, &apipb.LabeledVPNIPAddressPrefix{Prefix: "10.0.0.0", PrefixLen: 8})}
			},
			wantErr: gobgp.ErrUnsupportedNLRI,
		},
		{
			name: "no next-hop",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{Nlri: mustAny(t, &apipb.IPAddressPrefix{Prefix: "10.0.0.0", PrefixLen: 8})}
			},
			wantErr: gobgp.ErrNoNextHop,
		},
		{
			name: "family mismatch",
			path: func(t *testing.T) *apipb.Path {
				return &apipb.Path{
					Nlri:   mustAny(t, &apipb.IPAddressPrefix{Prefix: "10.0.0.0", PrefixLen: 8}),
					Pattrs: []*anypb.Any{mustAny(t, &apipb.NextHopAttribute{NextHop: "2001:db8::1"})},
				}
			},
			wantErr: gobgp.ErrNoNextHop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gobgp.DecodePath(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodePath: err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("bad prefix length", func(t *testing.T) {
		t.Parallel()

		p := &apipb.Path{Nlri: mustAny(t, &apipb.IPAddressPrefix{Prefix: "10.0.0.0", PrefixLen: 40})}
		if _, err := gobgp.DecodePath(p); err == nil {
			t.Error("DecodePath accepted a /40 IPv4 prefix")
		}
	})
}
