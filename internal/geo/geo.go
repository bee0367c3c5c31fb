package geo

import (
	"hash/fnv"
)

// Location is a plausible-looking point on the map for the dashboard
// globe. Derived, never persisted: the same session id must map to the
// same Location forever, so history reconstruction and live events agree.
type Location struct {
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// The fixed table of fake origins. Order matters: Resolve indexes into it
// by hash, so reordering entries would silently relocate every session.
var locations = [8]Location{
	{Country: "Russia", Lat: 55.7558, Lng: 37.6173},
	{Country: "China", Lat: 39.9042, Lng: 116.4074},
	{Country: "United States", Lat: 37.7749, Lng: -122.4194},
	{Country: "Brazil", Lat: -23.5505, Lng: -46.6333},
	{Country: "Germany", Lat: 52.5200, Lng: 13.4050},
	{Country: "North Korea", Lat: 39.0392, Lng: 125.7625},
	{Country: "Romania", Lat: 44.4268, Lng: 26.1025},
	{Country: "India", Lat: 19.0760, Lng: 72.8777},
}

// Resolve deterministically maps a session id to one of the fixed
// locations. Pure and total; no error condition.
func Resolve(sessionID string) Location {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return locations[h.Sum32()%uint32(len(locations))]
}
