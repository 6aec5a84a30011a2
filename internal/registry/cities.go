package registry

import "github.com/sells-group/getaway-cli/internal/geo"

// builtinCities is the curated coordinate table shipped with the tool.
var builtinCities = []City{
	// Major metropolitan cities
	{Name: "Delhi", Coord: geo.Coordinate{Lat: 28.6139, Lon: 77.2090}},
	{Name: "Mumbai", Coord: geo.Coordinate{Lat: 19.0760, Lon: 72.8777}},
	{Name: "Bangalore", Coord: geo.Coordinate{Lat: 12.9716, Lon: 77.5946}},
	{Name: "Hyderabad", Coord: geo.Coordinate{Lat: 17.3850, Lon: 78.4867}},
	{Name: "Chennai", Coord: geo.Coordinate{Lat: 13.0827, Lon: 80.2707}},
	{Name: "Kolkata", Coord: geo.Coordinate{Lat: 22.5726, Lon: 88.3639}},
	{Name: "Pune", Coord: geo.Coordinate{Lat: 18.5204, Lon: 73.8567}},
	{Name: "Ahmedabad", Coord: geo.Coordinate{Lat: 23.0225, Lon: 72.5714}},

	// North India
	{Name: "Jaipur", Coord: geo.Coordinate{Lat: 26.9124, Lon: 75.7873}},
	{Name: "Agra", Coord: geo.Coordinate{Lat: 27.1767, Lon: 78.0081}},
	{Name: "Amritsar", Coord: geo.Coordinate{Lat: 31.6340, Lon: 74.8723}},
	{Name: "Varanasi", Coord: geo.Coordinate{Lat: 25.3176, Lon: 82.9739}},
	{Name: "Lucknow", Coord: geo.Coordinate{Lat: 26.8467, Lon: 80.9462}},
	{Name: "Bhopal", Coord: geo.Coordinate{Lat: 23.2599, Lon: 77.4126}},
	{Name: "Indore", Coord: geo.Coordinate{Lat: 22.7196, Lon: 75.8577}},
	{Name: "Patna", Coord: geo.Coordinate{Lat: 25.5941, Lon: 85.1376}},
	{Name: "Udaipur", Coord: geo.Coordinate{Lat: 24.5854, Lon: 73.7125}},

	// Himalayan region
	{Name: "Rishikesh", Coord: geo.Coordinate{Lat: 30.0869, Lon: 78.2676}},
	{Name: "Haridwar", Coord: geo.Coordinate{Lat: 29.9457, Lon: 78.1642}},
	{Name: "Dehradun", Coord: geo.Coordinate{Lat: 30.3165, Lon: 78.0322}},
	{Name: "Mussoorie", Coord: geo.Coordinate{Lat: 30.4598, Lon: 78.0660}},
	{Name: "Nainital", Coord: geo.Coordinate{Lat: 29.3803, Lon: 79.4636}},
	{Name: "Manali", Coord: geo.Coordinate{Lat: 32.2396, Lon: 77.1887}},
	{Name: "Shimla", Coord: geo.Coordinate{Lat: 31.1048, Lon: 77.1734}},

	// Maharashtra and Goa
	{Name: "Lonavala", Coord: geo.Coordinate{Lat: 18.7537, Lon: 73.4076}},
	{Name: "Alibaug", Coord: geo.Coordinate{Lat: 18.6514, Lon: 72.8720}},
	{Name: "Mahabaleshwar", Coord: geo.Coordinate{Lat: 17.9244, Lon: 73.6577}},
	{Name: "Matheran", Coord: geo.Coordinate{Lat: 18.9844, Lon: 73.2637}},
	{Name: "Lavasa", Coord: geo.Coordinate{Lat: 18.4036, Lon: 73.5085}},
	{Name: "Bhimashankar", Coord: geo.Coordinate{Lat: 19.0716, Lon: 73.5356}},
	{Name: "Goa", Coord: geo.Coordinate{Lat: 15.2993, Lon: 74.1240}},

	// East India
	{Name: "Darjeeling", Coord: geo.Coordinate{Lat: 27.0410, Lon: 88.2663}},
	{Name: "Siliguri", Coord: geo.Coordinate{Lat: 26.7271, Lon: 88.3953}},
	{Name: "Gangtok", Coord: geo.Coordinate{Lat: 27.3331, Lon: 88.6083}},
	{Name: "Pelling", Coord: geo.Coordinate{Lat: 27.2920, Lon: 88.3294}},
	{Name: "Digha", Coord: geo.Coordinate{Lat: 21.6253, Lon: 87.5094}},
	{Name: "Sundarbans", Coord: geo.Coordinate{Lat: 21.9497, Lon: 88.8831}},
	{Name: "Bolpur", Coord: geo.Coordinate{Lat: 23.6840, Lon: 87.6847}},
	{Name: "Jalpaiguri", Coord: geo.Coordinate{Lat: 26.5276, Lon: 88.7196}},
	{Name: "Cooch Behar", Coord: geo.Coordinate{Lat: 26.3294, Lon: 89.4496}},

	// South India
	{Name: "Bhubaneswar", Coord: geo.Coordinate{Lat: 20.2961, Lon: 85.8245}},
	{Name: "Visakhapatnam", Coord: geo.Coordinate{Lat: 17.6868, Lon: 83.2185}},
	{Name: "Kochi", Coord: geo.Coordinate{Lat: 9.9312, Lon: 76.2673}},
	{Name: "Trivandrum", Coord: geo.Coordinate{Lat: 8.5241, Lon: 76.9366}},
	{Name: "Mysore", Coord: geo.Coordinate{Lat: 12.2958, Lon: 76.6394}},
}
