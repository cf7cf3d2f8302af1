package factors

// TransportMode identifies how a shipment travels.
type TransportMode string

// Supported transport modes.
const (
	ModeSea  TransportMode = "sea"
	ModeRoad TransportMode = "road"
	ModeRail TransportMode = "rail"
	ModeAir  TransportMode = "air"
)

// ModeProfile scales the tier emission factor by transport mode.
type ModeProfile struct {
	Mode TransportMode

	// CO2Multiplier is relative to the sea-freight baseline:
	// air is ~50x more carbon intensive than sea, road ~5x, rail ~2x.
	CO2Multiplier float64
}

var modeProfiles = map[TransportMode]ModeProfile{
	ModeSea:  {Mode: ModeSea, CO2Multiplier: 1.0},
	ModeRoad: {Mode: ModeRoad, CO2Multiplier: 5.0},
	ModeRail: {Mode: ModeRail, CO2Multiplier: 2.0},
	ModeAir:  {Mode: ModeAir, CO2Multiplier: 50.0},
}
