package layer

// Pre-biome climate category ids, the values CoolWarm/HeatIce/AddSnow
// read and write before the Biome layer resolves them into concrete
// biome ids.
const (
	catWarm     int32 = 1
	catLush     int32 = 2
	catCold     int32 = 3
	catFreezing int32 = 4
)
