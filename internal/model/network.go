package model

import (
	"encoding/json"
	"strings"
)

// Network is one network record as returned by the controller. The controller
// owns the schema, so everything is carried as raw JSON and round-tripped
// byte for byte; only the handful of fields this tool reads are decoded.
type Network map[string]json.RawMessage

// Well-known record fields.
const (
	FieldDisplayName    = "displayName"
	FieldNetworkName    = "networkName"
	FieldNetworkStatus  = "networkStatus"
	FieldTemplateConfig = "networkTemplateConfig"
)

// field returns a record field as a string. String values are decoded,
// anything else (numbers, booleans) is returned as its raw JSON text.
func (n Network) field(key string) string {
	raw, ok := n[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func (n Network) DisplayName() string       { return n.field(FieldDisplayName) }
func (n Network) NetworkName() string       { return n.field(FieldNetworkName) }
func (n Network) Fabric() string            { return n.field("fabric") }
func (n Network) NetworkID() string         { return n.field("networkId") }
func (n Network) ID() string                { return n.field("id") }
func (n Network) Type() string              { return n.field("type") }
func (n Network) VRF() string               { return n.field("vrf") }
func (n Network) TenantName() string        { return n.field("tenantName") }
func (n Network) Status() string            { return n.field(FieldNetworkStatus) }
func (n Network) Template() string          { return n.field("networkTemplate") }
func (n Network) ExtensionTemplate() string { return n.field("networkExtensionTemplate") }

// UpdateName returns the identifier used to address the record on the update
// endpoint: networkName when present, falling back to the record id.
func (n Network) UpdateName() string {
	if name := n.NetworkName(); name != "" {
		return name
	}
	return n.ID()
}

// WithDisplayName returns a copy of the record suitable for a PUT: the display
// name replaced, the read-only networkStatus field dropped, every other field
// carried over untouched.
func (n Network) WithDisplayName(name string) Network {
	out := make(Network, len(n))
	for k, v := range n {
		if k == FieldNetworkStatus {
			continue
		}
		out[k] = v
	}
	encoded, _ := json.Marshal(name)
	out[FieldDisplayName] = json.RawMessage(encoded)
	return out
}

// TemplateConfig parses the networkTemplateConfig field, which the controller
// stores as a JSON object serialized into a string. Returns nil when the field
// is absent or unparseable.
func (n Network) TemplateConfig() map[string]interface{} {
	raw := n.field(FieldTemplateConfig)
	if raw == "" {
		return nil
	}
	var cfg map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil
	}
	return cfg
}

// DisplayNames collects the display names of a list of records, preserving
// controller order.
func DisplayNames(networks []Network) []string {
	names := make([]string, 0, len(networks))
	for _, n := range networks {
		names = append(names, n.DisplayName())
	}
	return names
}
