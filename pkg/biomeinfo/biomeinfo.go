package biomeinfo

// Biome ids. These match the numeric ids the original layer pipeline reads
// and writes; namespaced ids introduced by later game versions are a
// presentation detail the layers never see.
const (
	Ocean              int32 = 0
	Plains             int32 = 1
	Desert             int32 = 2
	ExtremeHills       int32 = 3
	Forest             int32 = 4
	Taiga              int32 = 5
	Swampland          int32 = 6
	River              int32 = 7
	FrozenOcean        int32 = 10
	FrozenRiver        int32 = 11
	IcePlains          int32 = 12
	IceMountains       int32 = 13
	MushroomIsland     int32 = 14
	MushroomIslandShore int32 = 15
	Beach              int32 = 16
	DesertHills        int32 = 17
	ForestHills        int32 = 18
	TaigaHills         int32 = 19
	ExtremeHillsEdge   int32 = 20
	Jungle             int32 = 21
	JungleHills        int32 = 22
	JungleEdge         int32 = 23
	DeepOcean          int32 = 24
	StoneBeach         int32 = 25
	ColdBeach          int32 = 26
	BirchForest        int32 = 27
	BirchForestHills   int32 = 28
	RoofedForest       int32 = 29
	ColdTaiga          int32 = 30
	ColdTaigaHills     int32 = 31
	MegaTaiga          int32 = 32
	MegaTaigaHills     int32 = 33
	ExtremeHillsPlus   int32 = 34
	Savanna            int32 = 35
	SavannaPlateau     int32 = 36
	Mesa               int32 = 37
	MesaPlateauF       int32 = 38
	MesaPlateau        int32 = 39

	WarmOcean         int32 = 40
	LukewarmOcean     int32 = 41
	ColdOcean         int32 = 42
	DeepWarmOcean     int32 = 43
	DeepLukewarmOcean int32 = 44
	DeepColdOcean     int32 = 45
	DeepFrozenOcean   int32 = 46

	BambooJungle      int32 = 48
	BambooJungleHills int32 = 49
)

// RareVariantOffset is added to a base biome id by the RareBiome layer to
// produce its mutated ("M") counterpart (e.g. Plains -> Sunflower Plains).
const RareVariantOffset int32 = 128

// RareVariant returns the mutated counterpart of a base biome id.
func RareVariant(id int32) int32 { return id + RareVariantOffset }

// BaseOf returns the base biome id for a mutated variant, or id unchanged
// if it is not a mutated variant.
func BaseOf(id int32) int32 {
	if id >= RareVariantOffset {
		return id - RareVariantOffset
	}
	return id
}

// Category groups biomes the way equal_or_plateau and the JFTO check
// (Jungle/Forest/Taiga/Ocean) need: coarser than Info itself, and only
// populated where BiomeEdge and the shore/JFTO predicates consult it.
type Category int

const (
	CatNone Category = iota
	CatOcean
	CatPlains
	CatDesert
	CatExtremeHills
	CatForest
	CatTaiga
	CatSwamp
	CatRiver
	CatIcy
	CatMushroom
	CatBeach
	CatJungle
	CatSavanna
	CatMesa
)

// Info describes one biome's classification and climate, the data the
// layer pipeline and the map renderers key off of.
type Info struct {
	Name        string
	IsOcean     bool
	IsDeepOcean bool
	IsRiver     bool
	IsSnowy     bool
	Category    Category
	Temperature float64
	Height      float64
}

var table = map[int32]Info{
	Ocean:               {Name: "ocean", IsOcean: true, Category: CatOcean, Temperature: 0.5, Height: -1.0},
	Plains:              {Name: "plains", Category: CatPlains, Temperature: 0.8, Height: 0.1},
	Desert:              {Name: "desert", Category: CatDesert, Temperature: 2.0, Height: 0.1},
	ExtremeHills:        {Name: "extremeHills", Category: CatExtremeHills, Temperature: 0.2, Height: 1.0},
	Forest:              {Name: "forest", Category: CatForest, Temperature: 0.7, Height: 0.1},
	Taiga:               {Name: "taiga", Category: CatTaiga, Temperature: 0.25, Height: 0.2},
	Swampland:           {Name: "swampland", Category: CatSwamp, Temperature: 0.8, Height: -0.2},
	River:               {Name: "river", IsRiver: true, Category: CatRiver, Temperature: 0.5, Height: -0.5},
	FrozenOcean:         {Name: "frozenOcean", IsOcean: true, IsSnowy: true, Category: CatOcean, Temperature: 0.0, Height: -1.0},
	FrozenRiver:         {Name: "frozenRiver", IsRiver: true, IsSnowy: true, Category: CatRiver, Temperature: 0.0, Height: -0.5},
	IcePlains:           {Name: "icePlains", IsSnowy: true, Category: CatIcy, Temperature: 0.0, Height: 0.1},
	IceMountains:        {Name: "iceMountains", IsSnowy: true, Category: CatIcy, Temperature: 0.0, Height: 0.45},
	MushroomIsland:      {Name: "mushroomIsland", Category: CatMushroom, Temperature: 0.9, Height: 0.2},
	MushroomIslandShore: {Name: "mushroomIslandShore", Category: CatMushroom, Temperature: 0.9, Height: 0.0},
	Beach:               {Name: "beach", Category: CatBeach, Temperature: 0.8, Height: 0.0},
	DesertHills:         {Name: "desertHills", Category: CatDesert, Temperature: 2.0, Height: 0.45},
	ForestHills:         {Name: "forestHills", Category: CatForest, Temperature: 0.7, Height: 0.45},
	TaigaHills:          {Name: "taigaHills", Category: CatTaiga, Temperature: 0.25, Height: 0.45},
	ExtremeHillsEdge:    {Name: "extremeHillsEdge", Category: CatExtremeHills, Temperature: 0.2, Height: 0.8},
	Jungle:              {Name: "jungle", Category: CatJungle, Temperature: 0.95, Height: 0.1},
	JungleHills:         {Name: "jungleHills", Category: CatJungle, Temperature: 0.95, Height: 0.45},
	JungleEdge:          {Name: "jungleEdge", Category: CatJungle, Temperature: 0.95, Height: 0.1},
	DeepOcean:           {Name: "deepOcean", IsOcean: true, IsDeepOcean: true, Category: CatOcean, Temperature: 0.5, Height: -1.8},
	StoneBeach:          {Name: "stoneBeach", Category: CatBeach, Temperature: 0.2, Height: 0.1},
	ColdBeach:           {Name: "coldBeach", IsSnowy: true, Category: CatBeach, Temperature: 0.05, Height: 0.0},
	BirchForest:         {Name: "birchForest", Category: CatForest, Temperature: 0.6, Height: 0.1},
	BirchForestHills:    {Name: "birchForestHills", Category: CatForest, Temperature: 0.6, Height: 0.45},
	RoofedForest:        {Name: "roofedForest", Category: CatForest, Temperature: 0.7, Height: 0.1},
	ColdTaiga:           {Name: "coldTaiga", IsSnowy: true, Category: CatTaiga, Temperature: -0.5, Height: 0.2},
	ColdTaigaHills:      {Name: "coldTaigaHills", IsSnowy: true, Category: CatTaiga, Temperature: -0.5, Height: 0.45},
	MegaTaiga:           {Name: "megaTaiga", Category: CatTaiga, Temperature: 0.3, Height: 0.2},
	MegaTaigaHills:      {Name: "megaTaigaHills", Category: CatTaiga, Temperature: 0.3, Height: 0.45},
	ExtremeHillsPlus:    {Name: "extremeHillsPlus", Category: CatExtremeHills, Temperature: 0.2, Height: 1.0},
	Savanna:             {Name: "savanna", Category: CatSavanna, Temperature: 1.2, Height: 0.1},
	SavannaPlateau:      {Name: "savannaPlateau", Category: CatSavanna, Temperature: 1.0, Height: 1.5},
	Mesa:                {Name: "mesa", Category: CatMesa, Temperature: 2.0, Height: 0.1},
	MesaPlateauF:        {Name: "mesaPlateau_F", Category: CatMesa, Temperature: 2.0, Height: 1.5},
	MesaPlateau:         {Name: "mesaPlateau", Category: CatMesa, Temperature: 2.0, Height: 1.5},

	WarmOcean:         {Name: "warmOcean", IsOcean: true, Category: CatOcean, Temperature: 0.8, Height: -1.0},
	LukewarmOcean:     {Name: "lukewarmOcean", IsOcean: true, Category: CatOcean, Temperature: 0.5, Height: -1.0},
	ColdOcean:         {Name: "coldOcean", IsOcean: true, Category: CatOcean, Temperature: 0.3, Height: -1.0},
	DeepWarmOcean:     {Name: "deepWarmOcean", IsOcean: true, IsDeepOcean: true, Category: CatOcean, Temperature: 0.8, Height: -1.8},
	DeepLukewarmOcean: {Name: "deepLukewarmOcean", IsOcean: true, IsDeepOcean: true, Category: CatOcean, Temperature: 0.5, Height: -1.8},
	DeepColdOcean:     {Name: "deepColdOcean", IsOcean: true, IsDeepOcean: true, Category: CatOcean, Temperature: 0.3, Height: -1.8},
	DeepFrozenOcean:   {Name: "deepFrozenOcean", IsOcean: true, IsDeepOcean: true, IsSnowy: true, Category: CatOcean, Temperature: 0.0, Height: -1.8},

	BambooJungle:      {Name: "bambooJungle", Category: CatJungle, Temperature: 0.95, Height: 0.1},
	BambooJungleHills: {Name: "bambooJungleHills", Category: CatJungle, Temperature: 0.95, Height: 0.45},
}

// Lookup returns the Info for id, resolving mutated ("M") variants to
// their base entry first. Unknown ids return the zero Info and false.
func Lookup(id int32) (Info, bool) {
	info, ok := table[BaseOf(id)]
	return info, ok
}

// IsOceanic reports whether id (mutated variants included) is any ocean
// biome, shallow or deep.
func IsOceanic(id int32) bool {
	info, ok := Lookup(id)
	return ok && info.IsOcean
}

// IsWatery reports whether id is ocean or river — the two biome families
// the treasure-map renderer and the shore layers treat as "water".
func IsWatery(id int32) bool {
	info, ok := Lookup(id)
	return ok && (info.IsOcean || info.IsRiver)
}

// Exists reports whether id names a real biome. A mutated id (>=
// RareVariantOffset) exists if its base biome does — the layer pipeline
// never produces a rare variant whose base is unknown.
func Exists(id int32) bool {
	if id < 0 || id > 255 {
		return false
	}
	_, ok := table[BaseOf(id)]
	return ok
}

// IsLand reports whether id's surface height is non-negative — the
// land/water split the treasure-map rasterizer uses to classify shore
// and water pixels. Unknown ids are treated as water.
func IsLand(id int32) bool {
	info, ok := Lookup(id)
	return ok && info.Height >= 0.0
}

// IsBiomeSnowy reports whether id's base temperature is below the
// freezing cutoff the shore and river layers use to pick a frozen
// variant. It reads Temperature directly rather than the IsSnowy flag,
// matching the cutoff the reference layers apply.
func IsBiomeSnowy(id int32) bool {
	info, ok := Lookup(id)
	return ok && info.Temperature < 0.1
}

// IsBiomeJFTO reports whether id is a Jungle-category biome, plain
// Forest, plain Taiga, or any ocean — the grouping the shore layer uses
// to decide whether land bordering an ocean gets a beach.
func IsBiomeJFTO(id int32) bool {
	if !Exists(id) {
		return false
	}
	info, _ := Lookup(id)
	return info.Category == CatJungle || id == Forest || id == Taiga || IsOceanic(id)
}

// equalOrPlateauExclusions lists mutated ids that never overloaded
// isEqualTo() in the original game code; equal_or_plateau preserves
// this as an intentional asymmetric quirk rather than smoothing it away.
var equalOrPlateauExclusions = map[int32]bool{
	130: true, 133: true, 134: true, 149: true, 151: true, 155: true,
	156: true, 157: true, 158: true, 163: true, 164: true,
}

// EqualOrPlateau reports whether id1 and id2 should be treated as the
// same biome for edge-smoothing purposes: identical ids, or both being
// one of the two mesa-plateau variants, or (outside that special case)
// sharing the same Category — except that id2 being one of a fixed set
// of mutated ids that never overloaded isEqualTo() in the original game
// always answers false, even if the categories match.
func EqualOrPlateau(id1, id2 int32) bool {
	if id1 == id2 {
		return true
	}
	if id1 == MesaPlateauF || id1 == MesaPlateau {
		return id2 == MesaPlateauF || id2 == MesaPlateau
	}
	if !Exists(id1) || !Exists(id2) {
		return false
	}
	if id1 >= RareVariantOffset || id2 >= RareVariantOffset {
		if equalOrPlateauExclusions[id2] {
			return false
		}
	}
	info1, _ := Lookup(id1)
	info2, _ := Lookup(id2)
	return info1.Category == info2.Category
}
