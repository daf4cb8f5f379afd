package prayer

import (
	"sort"
	"strings"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// State is a Malaysian state or federal territory with a reference point.
type State struct {
	Name string
	Coordinates
}

// Slug returns a cache-safe identifier such as "negeri-sembilan".
func (s State) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s.Name)), " ", "-")
}

var states = map[string]Coordinates{
	"Kuala Lumpur":    {3.1390, 101.6869},
	"Selangor":        {3.0738, 101.5183},
	"Johor":           {1.4927, 103.7414},
	"Pulau Pinang":    {5.4141, 100.3288},
	"Perak":           {4.5921, 101.0901},
	"Kedah":           {6.1184, 100.3685},
	"Kelantan":        {6.1254, 102.2381},
	"Terengganu":      {5.3117, 103.1324},
	"Pahang":          {3.8126, 103.3256},
	"Negeri Sembilan": {2.7258, 101.9424},
	"Melaka":          {2.1896, 102.2501},
	"Sabah":           {5.9788, 116.0753},
	"Sarawak":         {1.5533, 110.3592},
	"Perlis":          {6.4449, 100.2048},
	"Putrajaya":       {2.9264, 101.6964},
	"Labuan":          {5.2831, 115.2308},
}

// States returns every supported state, sorted by name.
func States() []State {
	out := make([]State, 0, len(states))
	for name, c := range states {
		out = append(out, State{Name: name, Coordinates: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a state by name, ignoring case and surrounding space.
func Lookup(name string) (State, bool) {
	name = strings.TrimSpace(name)
	for n, c := range states {
		if strings.EqualFold(n, name) {
			return State{Name: n, Coordinates: c}, true
		}
	}
	return State{}, false
}
