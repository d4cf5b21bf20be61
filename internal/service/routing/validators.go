package routing

import (
	"strings"

	"relay/internal/entities"
)

const (
	minAddresses     = 2
	minAddressLength = 5
)

func validateRouteRequest(req entities.RouteRequest) error {
	var v entities.Violations

	if len(req.Addresses) < minAddresses {
		v.Add("at least %d addresses are required", minAddresses)
	}
	for i, address := range req.Addresses {
		if len(strings.TrimSpace(address)) < minAddressLength {
			v.Add("address #%d must be at least %d characters long", i+1, minAddressLength)
		}
	}
	if !req.TransportMode.IsValid() {
		v.Add("transport mode %q is not supported", req.TransportMode)
	}
	if !req.Urgency.IsValid() {
		v.Add("urgency %q is not one of normal, urgent, express", req.Urgency)
	}
	req.Package.Validate(&v)

	return v.Err()
}
