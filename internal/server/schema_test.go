package server_test

import (
	"slices"
	"testing"

	"buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

// fieldRules returns the protovalidate rules attached to field of msg.
func fieldRules(t *testing.T, msg proto.Message, field protoreflect.Name) *validate.FieldRules {
	t.Helper()

	fd := msg.ProtoReflect().Descriptor().Fields().ByName(field)
	if fd == nil {
		t.Fatalf("%s has no field %s", msg.ProtoReflect().Descriptor().FullName(), field)
	}
	rules, ok := proto.GetExtension(fd.Options(), validate.E_Field).(*validate.FieldRules)
	if !ok || rules == nil {
		t.Fatalf("%s.%s carries no validation rules", msg.ProtoReflect().Descriptor().FullName(), field)
	}
	return rules
}

func TestWirePrefixRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		msg      proto.Message
		field    protoreflect.Name
		optional bool
	}{
		{"add route", &ribv1.AddRouteRequest{}, "prefix", false},
		{"remove route", &ribv1.RemoveRouteRequest{}, "prefix", false},
		{"set attrs", &ribv1.SetRouteAttrsRequest{}, "prefix", false},
		{"add address", &ribv1.AddAddressRequest{}, "address", false},
		{"remove address", &ribv1.RemoveAddressRequest{}, "address", false},
		{"show rib filter", &ribv1.ShowRIBRequest{}, "prefix", true},
		{"show fib filter", &ribv1.ShowFIBRequest{}, "prefix", true},
		{"show kernel filter", &ribv1.ShowKernelRoutesRequest{}, "prefix", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := fieldRules(t, tt.msg, tt.field)
			if !rules.GetString_().GetIpWithPrefixlen() {
				t.Errorf("%s is not constrained to address/prefix-length", tt.field)
			}
			if got := rules.GetIgnore() == validate.Ignore_IGNORE_IF_ZERO_VALUE; got != tt.optional {
				t.Errorf("empty %s allowed = %v, want %v", tt.field, got, tt.optional)
			}
		})
	}
}

func TestWireProtocolRules(t *testing.T) {
	t.Parallel()

	for _, msg := range []proto.Message{
		&ribv1.AddRouteRequest{},
		&ribv1.RemoveRouteRequest{},
		&ribv1.SetRouteAttrsRequest{},
	} {
		rules := fieldRules(t, msg, "protocol")
		got := rules.GetString_().GetIn()
		for _, name := range []string{"static", "bgp", "zebra", "kernel"} {
			if !slices.Contains(got, name) {
				t.Errorf("%s: protocol %q not accepted (in = %v)",
					msg.ProtoReflect().Descriptor().Name(), name, got)
			}
		}
		// An empty protocol selects static on the server.
		if rules.GetIgnore() != validate.Ignore_IGNORE_IF_ZERO_VALUE {
			t.Errorf("%s: empty protocol rejected", msg.ProtoReflect().Descriptor().Name())
		}
	}
}

func TestWireInterfaceRules(t *testing.T) {
	t.Parallel()

	if !fieldRules(t, &ribv1.SetInterfaceRequest{}, "interface").GetRequired() {
		t.Error("SetInterfaceRequest.interface is optional")
	}
	if fieldRules(t, &ribv1.AddRouteRequest{}, "next_hop").GetString_().GetMinLen() != 1 {
		t.Error("AddRouteRequest.next_hop may be empty")
	}

	name := fieldRules(t, &ribv1.Interface{}, "name").GetString_()
	if name.GetMinLen() != 1 || name.GetMaxLen() != 15 {
		t.Errorf("interface name length = [%d, %d], want [1, 15]", name.GetMinLen(), name.GetMaxLen())
	}

	addrs := fieldRules(t, &ribv1.Interface{}, "addresses").GetRepeated().GetItems()
	if !addrs.GetString_().GetIpWithPrefixlen() {
		t.Error("Interface.addresses items are not constrained to address/prefix-length")
	}
}
