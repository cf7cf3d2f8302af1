package factors

// coordinate is an approximate country centroid used for great-circle
// distance between origin and destination.
type coordinate struct {
	Lat float64
	Lon float64
}

// countryCoordinates maps normalized country codes and names to centroids.
// Both the ISO-style code and the English name resolve to the same point so
// callers may send either ("DE" or "Germany").
var countryCoordinates = map[string]coordinate{
	"at": {47.5162, 14.5501}, "austria": {47.5162, 14.5501},
	"au": {-25.2744, 133.7751}, "australia": {-25.2744, 133.7751},
	"be": {50.5039, 4.4699}, "belgium": {50.5039, 4.4699},
	"bg": {42.7339, 25.4858}, "bulgaria": {42.7339, 25.4858},
	"br": {-14.2350, -51.9253}, "brazil": {-14.2350, -51.9253},
	"bd": {23.6850, 90.3563}, "bangladesh": {23.6850, 90.3563},
	"ca": {56.1304, -106.3468}, "canada": {56.1304, -106.3468},
	"cn": {35.8617, 104.1954}, "china": {35.8617, 104.1954},
	"de": {51.1657, 10.4515}, "germany": {51.1657, 10.4515},
	"fr": {46.2276, 2.2137}, "france": {46.2276, 2.2137},
	"gb": {55.3781, -3.4360}, "uk": {55.3781, -3.4360}, "united_kingdom": {55.3781, -3.4360},
	"in": {20.5937, 78.9629}, "india": {20.5937, 78.9629},
	"it": {41.8719, 12.5674}, "italy": {41.8719, 12.5674},
	"jp": {36.2048, 138.2529}, "japan": {36.2048, 138.2529},
	"mx": {23.6345, -102.5528}, "mexico": {23.6345, -102.5528},
	"nl": {52.1326, 5.2913}, "netherlands": {52.1326, 5.2913},
	"pl": {51.9194, 19.1451}, "poland": {51.9194, 19.1451},
	"pt": {39.3999, -8.2245}, "portugal": {39.3999, -8.2245},
	"ro": {45.9432, 24.9668}, "romania": {45.9432, 24.9668},
	"ru": {61.5240, 105.3188}, "russia": {61.5240, 105.3188},
	"es": {40.4637, -3.7492}, "spain": {40.4637, -3.7492},
	"tr": {38.9637, 35.2433}, "turkey": {38.9637, 35.2433},
	"us": {37.0902, -95.7129}, "usa": {37.0902, -95.7129}, "united_states": {37.0902, -95.7129},
	"vn": {14.0583, 108.2772}, "vietnam": {14.0583, 108.2772},
}
