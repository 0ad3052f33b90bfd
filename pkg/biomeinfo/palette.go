package biomeinfo

// RGB is a single 24-bit color used by the debug SVG renderer and the
// treasure-map rasterizer.
type RGB struct {
	R, G, B uint8
}

// rgbTable assigns every known biome id a representative swatch. Ids with
// no entry fall back to DefaultRGB (a neutral gray) so a renderer never
// has to special-case an unrecognized id.
var rgbTable = map[int32]RGB{
	Ocean:               {0, 0, 112},
	Plains:              {141, 179, 96},
	Desert:              {250, 148, 24},
	ExtremeHills:        {96, 96, 96},
	Forest:              {5, 102, 33},
	Taiga:               {11, 102, 89},
	Swampland:           {7, 249, 178},
	River:               {0, 0, 255},
	FrozenOcean:         {112, 112, 214},
	FrozenRiver:         {160, 160, 255},
	IcePlains:           {255, 255, 255},
	IceMountains:        {160, 160, 160},
	MushroomIsland:      {255, 0, 255},
	MushroomIslandShore: {160, 0, 255},
	Beach:               {250, 222, 85},
	DesertHills:         {210, 95, 18},
	ForestHills:         {34, 85, 28},
	TaigaHills:          {22, 57, 51},
	ExtremeHillsEdge:    {114, 120, 154},
	Jungle:              {83, 123, 9},
	JungleHills:         {44, 66, 5},
	JungleEdge:          {98, 139, 23},
	DeepOcean:           {0, 0, 80},
	StoneBeach:          {162, 162, 132},
	ColdBeach:           {250, 240, 192},
	BirchForest:         {48, 116, 68},
	BirchForestHills:    {31, 95, 50},
	RoofedForest:        {64, 81, 26},
	ColdTaiga:           {49, 85, 74},
	ColdTaigaHills:      {36, 63, 54},
	MegaTaiga:           {89, 102, 81},
	MegaTaigaHills:      {69, 79, 62},
	ExtremeHillsPlus:    {80, 112, 80},
	Savanna:             {189, 178, 95},
	SavannaPlateau:      {167, 157, 100},
	Mesa:                {217, 69, 21},
	MesaPlateauF:        {176, 151, 101},
	MesaPlateau:         {202, 184, 121},

	WarmOcean:         {0, 0, 172},
	LukewarmOcean:     {0, 0, 144},
	ColdOcean:         {32, 32, 112},
	DeepWarmOcean:     {0, 0, 172},
	DeepLukewarmOcean: {0, 0, 96},
	DeepColdOcean:     {32, 32, 56},
	DeepFrozenOcean:   {64, 64, 144},

	BambooJungle:      {118, 142, 20},
	BambooJungleHills: {59, 71, 10},
}

// DefaultRGB is returned by RGBFor for ids the palette has no entry for.
var DefaultRGB = RGB{128, 128, 128}

// RGBFor resolves a biome id (mutated variants included) to its swatch.
func RGBFor(id int32) RGB {
	if c, ok := rgbTable[BaseOf(id)]; ok {
		return c
	}
	return DefaultRGB
}

// TreasurePalette is the 64-entry base color ramp a treasure-map color id
// (before the ×4 shade split) resolves to. Unused slots are black; the
// renderer substitutes a parchment tone for slot 0 instead of rendering
// it, matching the in-game map's transparent background.
var TreasurePalette = [64]RGB{
	{0x00, 0x00, 0x00}, {0x7F, 0xB2, 0x38}, {0xF7, 0xE9, 0xA3}, {0xC7, 0xC7, 0xC7},
	{0xFF, 0x00, 0x00}, {0xA0, 0xA0, 0xFF}, {0xA7, 0xA7, 0xA7}, {0x00, 0x7C, 0x00},
	{0xFF, 0xFF, 0xFF}, {0xA4, 0xA8, 0xB8}, {0x97, 0x6D, 0x4D}, {0x70, 0x70, 0x70},
	{0x40, 0x40, 0xFF}, {0x8F, 0x77, 0x48}, {0xFF, 0xFC, 0xF5}, {0xD8, 0x7F, 0x33},
	{0xB2, 0x4C, 0xD8}, {0x66, 0x99, 0xD8}, {0xE5, 0xE5, 0x33}, {0x7F, 0xCC, 0x19},
	{0xF2, 0x7F, 0xA5}, {0x4C, 0x4C, 0x4C}, {0x99, 0x99, 0x99}, {0x4C, 0x7F, 0x99},
	{0x7F, 0x3F, 0xB2}, {0x33, 0x4C, 0xB2}, {0x66, 0x4C, 0x33}, {0x66, 0x7F, 0x33},
	{0x99, 0x33, 0x33}, {0x19, 0x19, 0x19}, {0xFA, 0xEE, 0x4D}, {0x5C, 0xDB, 0xD5},
	{0x4A, 0x80, 0xFF}, {0x00, 0xD9, 0x3A}, {0x81, 0x56, 0x31}, {0x70, 0x02, 0x00},
	{0xD1, 0xB1, 0xA1}, {0x9F, 0x52, 0x24}, {0x95, 0x57, 0x6C}, {0x70, 0x6C, 0x8A},
	{0xBA, 0x85, 0x24}, {0x67, 0x75, 0x35}, {0xA0, 0x4D, 0x4E}, {0x39, 0x29, 0x23},
	{0x87, 0x6B, 0x62}, {0x57, 0x5C, 0x5C}, {0x7A, 0x49, 0x58}, {0x4C, 0x3E, 0x5C},
	{0x4C, 0x32, 0x23}, {0x4C, 0x52, 0x2A}, {0x8E, 0x3C, 0x2E}, {0x25, 0x16, 0x10},
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

// TreasureBackground replaces color id 0 (black, meant to render
// transparent over the map's parchment background) so a renderer that
// cannot composite transparency still produces a recognizable map.
var TreasureBackground = RGB{0xDB, 0xC6, 0xAC}

// TreasureShadeRatios are the four luminance multipliers (out of 256)
// applied to a base color to produce its four map-shade variants, in the
// order treasure-map color ids use: shadow (180), base (220), highlight
// (255), deep shadow (135).
var TreasureShadeRatios = [4]int{180, 220, 255, 135}

// ColorVariant scales each channel of c by ratio/256, rounding to the
// nearest integer the way the reference's integer arithmetic does.
func ColorVariant(c RGB, ratio int) RGB {
	scale := func(v uint8) uint8 {
		return uint8((int(v)*ratio + 128) / 256)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}
