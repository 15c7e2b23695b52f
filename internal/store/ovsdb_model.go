package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ovn-org/libovsdb/model"
	"github.com/ovn-org/libovsdb/ovsdb"
)

// Schema is the OVSDB schema of the configuration database, suitable for
// ovsdb-tool create.
//
//go:embed schema/goribd.ovsschema
var Schema []byte

// OVSDB table names.
const (
	TableVRF     = "VRF"
	TablePort    = "Port"
	TableNexthop = "Nexthop"
	TableRoute   = "Route"
)

// Admin states of a Port row.
const (
	AdminUp   = "up"
	AdminDown = "down"
)

// VRF is a row of the VRF table. Ports listed by the VRF are routed;
// all others are layer-2 only.
type VRF struct {
	UUID  string   `ovsdb:"_uuid"`
	Name  string   `ovsdb:"name"`
	Ports []string `ovsdb:"ports"`
}

// Port is a row of the Port table.
type Port struct {
	UUID                string   `ovsdb:"_uuid"`
	Name                string   `ovsdb:"name"`
	Admin               *string  `ovsdb:"admin"`
	IP4Address          *string  `ovsdb:"ip4_address"`
	IP4AddressSecondary []string `ovsdb:"ip4_address_secondary"`
	IP6Address          *string  `ovsdb:"ip6_address"`
	IP6AddressSecondary []string `ovsdb:"ip6_address_secondary"`
}

// Nexthop is a row of the Nexthop table. Exactly one of IPAddress and
// Ports should be set.
type Nexthop struct {
	UUID      string   `ovsdb:"_uuid"`
	IPAddress *string  `ovsdb:"ip_address"`
	Ports     []string `ovsdb:"ports"`
	Selected  *bool    `ovsdb:"selected"`
}

// Route is a row of the Route table. From holds the protocol name.
type Route struct {
	UUID     string   `ovsdb:"_uuid"`
	VRF      string   `ovsdb:"vrf"`
	Prefix   string   `ovsdb:"prefix"`
	From     string   `ovsdb:"from"`
	Distance *int     `ovsdb:"distance"`
	Metric   *int     `ovsdb:"metric"`
	Nexthops []string `ovsdb:"nexthops"`
	Selected *bool    `ovsdb:"selected"`
}

// ClientDBModel returns the libovsdb client model for database.
func ClientDBModel(database string) (model.ClientDBModel, error) {
	return model.NewClientDBModel(database, map[string]model.Model{
		TableVRF:     &VRF{},
		TablePort:    &Port{},
		TableNexthop: &Nexthop{},
		TableRoute:   &Route{},
	})
}

// DatabaseSchema parses the embedded schema.
func DatabaseSchema() (ovsdb.DatabaseSchema, error) {
	var schema ovsdb.DatabaseSchema
	if err := json.Unmarshal(Schema, &schema); err != nil {
		return ovsdb.DatabaseSchema{}, fmt.Errorf("parse ovsdb schema: %w", err)
	}
	return schema, nil
}
