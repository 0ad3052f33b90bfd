// Package seedfinder recovers candidate world seeds from observed river
// and biome samples, staging the search from the 25 bits the early zoom
// layers actually consume up through a full 64-bit confirmation pass.
package seedfinder

import (
	"context"
	"log"
	"sort"

	"github.com/dshills/mcseed/pkg/biome"
	"github.com/dshills/mcseed/pkg/biome/inverse"
	"github.com/dshills/mcseed/pkg/biome/layer"
	"github.com/dshills/mcseed/pkg/biome/pipeline"
	"github.com/dshills/mcseed/pkg/biomeinfo"
	"github.com/dshills/mcseed/pkg/javarng"
	"github.com/dshills/mcseed/pkg/mcrng"
)

// Point is an (x, z) world coordinate.
type Point struct{ X, Z int64 }

// ExtraBiome pins a single coordinate to an observed biome id, used by
// the 64-bit confirmation stage to discriminate between seeds that agree
// on river placement.
type ExtraBiome struct {
	Biome int32
	X, Z  int64
}

// checkersLayer stands in for the 22-layer prefix leading into the river
// zoom chain with the richest possible per-cell distinctness: a 4x4
// repeating tile of 16 distinct values. Feeding the zoom chain this
// instead of a real RiverInit map means an observed collapse to a single
// value reveals a true geometric impossibility (no world seed could ever
// produce a river there), never an artifact of a poorer stand-in.
type checkersLayer struct{}

func (checkersLayer) GetMap(area biome.Area) biome.Map { return checkersLayer{}.paint(area) }
func (checkersLayer) GetMapFromParent(parent biome.Map) biome.Map {
	return checkersLayer{}.paint(parent.Area)
}
func (checkersLayer) paint(area biome.Area) biome.Map {
	out := biome.NewMap(area)
	for j := int64(0); j < area.H; j++ {
		wz := area.Z + j
		rz := ((wz % 4) + 4) % 4
		for i := int64(0); i < area.W; i++ {
			wx := area.X + i
			rx := ((wx % 4) + 4) % 4
			out.Set(i, j, int32(rz*4+rx))
		}
	}
	return out
}

// fixedMapLayer replays a precomputed Map for any sub-area requested of
// it, letting a one-off computed Map (e.g. an inverse-layer result) be
// spliced back in as the parent of a further forward layer.
type fixedMapLayer struct{ m biome.Map }

func (f fixedMapLayer) GetMap(area biome.Area) biome.Map {
	if area == f.m.Area {
		return f.m
	}
	return f.m.Crop(area)
}
func (f fixedMapLayer) GetMapFromParent(parent biome.Map) biome.Map { return f.GetMap(parent.Area) }

// riverZoomChain is the six-layer zoom chain (base seeds 1000, 1001,
// 1000, 1001, 1002, 1003) every river-bearing pipeline applies to its
// RiverInit output, and that the seed finder re-applies to its checkers
// stand-in.
func riverZoomChain(parent layer.Layer, worldSeed uint64) layer.Layer {
	var l layer.Layer = parent
	for _, base := range [6]uint64{1000, 1001, 1000, 1001, 1002, 1003} {
		l = &layer.Zoom{Parent: l, BaseSeed: base, WorldSeed: worldSeed}
	}
	return l
}

// edgeDetectRiverAll mirrors HelperMapRiverAll: deterministically, with
// no RNG draw, it marks every cell whose value disagrees with any of its
// four orthogonal neighbours as a river, leaving everything else -1. It
// surfaces every river a real MapRiver could possibly place for this
// 26-bit-equivalence class, which is exactly what makes it useful for
// scoring candidate seeds before the probabilistic collapse MapRiver
// itself performs.
func edgeDetectRiverAll(pmap biome.Map, area biome.Area) biome.Map {
	out := biome.NewMap(area)
	for j := int64(0); j < area.H; j++ {
		wz := area.Z + j
		for i := int64(0); i < area.W; i++ {
			wx := area.X + i
			v11 := pmap.AtWorld(wx, wz)
			v10 := pmap.AtWorld(wx, wz-1)
			v21 := pmap.AtWorld(wx+1, wz)
			v01 := pmap.AtWorld(wx-1, wz)
			v12 := pmap.AtWorld(wx, wz+1)
			if v11 == v01 && v11 == v10 && v11 == v21 && v11 == v12 {
				out.Set(i, j, -1)
			} else {
				out.Set(i, j, biomeinfo.River)
			}
		}
	}
	return out
}

// candidateRiverMap computes every river a world seed could possibly
// produce over area, using the checkers stand-in rather than a real
// RiverInit map. It over-approximates: a river present in the real
// generated world is always present here too, though this map may also
// mark cells no real seed would ever turn into rivers.
func candidateRiverMap(area biome.Area, worldSeed uint64) biome.Map {
	zoomed := riverZoomChain(checkersLayer{}, worldSeed)
	edgeArea := biome.Area{X: area.X - 1, Z: area.Z - 1, W: area.W + 2, H: area.H + 2}
	pmapArea := biome.Area{X: edgeArea.X - 1, Z: edgeArea.Z - 1, W: edgeArea.W + 2, H: edgeArea.H + 2}
	pmap := zoomed.GetMap(pmapArea)
	edgeMap := edgeDetectRiverAll(pmap, edgeArea)
	smooth := layer.NewSmooth(fixedMapLayer{edgeMap}, 1000, worldSeed)
	return smooth.GetMap(area)
}

// countRivers counts river cells in m.
func countRivers(m biome.Map) int {
	n := 0
	for _, v := range m.Data {
		if v == biomeinfo.River {
			n++
		}
	}
	return n
}

// countRiversAnd counts cells where both a and b are river. a and b must
// share the same area.
func countRiversAnd(a, b biome.Map) int {
	n := 0
	for i := range a.Data {
		if a.Data[i] == biomeinfo.River && b.Data[i] == biomeinfo.River {
			n++
		}
	}
	return n
}

// countRiversExact scores agreement both ways: +1 for a matching river,
// -1 for a river present in only one of the two maps. Never returns
// below zero.
func countRiversExact(a, b biome.Map) int {
	acc := 0
	for i := range a.Data {
		ra := a.Data[i] == biomeinfo.River
		rb := b.Data[i] == biomeinfo.River
		switch {
		case ra && rb:
			acc++
		case ra || rb:
			acc--
		}
	}
	if acc < 0 {
		return 0
	}
	return acc
}

// mapWithRiverAt paints river at every point in pts and -1 everywhere
// else, over the smallest area containing pts.
func mapWithRiverAt(pts []Point) biome.Map {
	coords := make([][2]int64, len(pts))
	for i, p := range pts {
		coords[i] = [2]int64{p.X, p.Z}
	}
	area := biome.BoundingArea(coords)
	m := biome.NewMap(area)
	for i := range m.Data {
		m.Data[i] = -1
	}
	for _, p := range pts {
		m.Set(p.X-area.X, p.Z-area.Z, biomeinfo.River)
	}
	return m
}

// splitRiversIntoFragments buckets river coordinates into 64x64 world
// fragments and renders each into its own sparse river Map, so the
// bruteforce can score one compact region at a time instead of one huge
// sparse area.
func splitRiversIntoFragments(points []Point) []biome.Map {
	const fragSize = 64
	buckets := map[[2]int64][]Point{}
	for _, p := range points {
		key := [2]int64{floorDivInt(p.X, fragSize), floorDivInt(p.Z, fragSize)}
		buckets[key] = append(buckets[key], p)
	}
	out := make([]biome.Map, 0, len(buckets))
	for _, pts := range buckets {
		out = append(out, mapWithRiverAt(pts))
	}
	return out
}

func floorDivInt(a, b int64) int64 { return mcrng.FloorDiv(a, b) }

// CanGenerateRiverNear reports whether a world seed could possibly place
// a river near prevoronoiPoint (a 1:4-scale coordinate, i.e. measured in
// pre-voronoi-zoom cells). False positives are expected; false negatives
// should be rare.
func CanGenerateRiverNear(prevoronoiPoint Point, worldSeed uint64) bool {
	return canGenerateRiverNearSteps(prevoronoiPoint, worldSeed) == 0
}

// canGenerateRiverNearSteps returns how many progressively larger zoom
// stages were checked (and found to collapse to one value) before giving
// up on this seed, or 0 if the full checkers-fed zoom chain never
// collapses — meaning this seed remains a live candidate.
func canGenerateRiverNearSteps(p Point, worldSeed uint64) int {
	if worldSeed&(1<<25) == 0 {
		if canGenerateRiverNearSteps(p, worldSeed|(1<<25)) == 0 {
			return 0
		}
	}

	prevArea := func(a biome.Area) biome.Area {
		return biome.Area{X: a.X >> 1, Z: a.Z >> 1, W: (a.W >> 1) + 2, H: (a.H >> 1) + 2}
	}
	allEqual := func(m biome.Map) bool {
		first := m.Data[0]
		for _, v := range m.Data {
			if v != first {
				return false
			}
		}
		return true
	}

	a39 := biome.Area{X: p.X - 1, Z: p.Z - 1, W: 3, H: 3}
	a38 := prevArea(a39)
	a37 := prevArea(a38)
	a36 := prevArea(a37)
	a35 := prevArea(a36)

	g34 := &layer.Zoom{Parent: checkersLayer{}, BaseSeed: 1000, WorldSeed: worldSeed}
	g35 := &layer.Zoom{Parent: g34, BaseSeed: 1001, WorldSeed: worldSeed}
	m35 := g35.GetMap(a35)
	if allEqual(m35) {
		return 1
	}
	g36 := &layer.Zoom{Parent: g35, BaseSeed: 1000, WorldSeed: worldSeed}
	m36 := g36.GetMapFromParent(m35).Crop(a36)
	if allEqual(m36) {
		return 2
	}
	g37 := &layer.Zoom{Parent: g36, BaseSeed: 1001, WorldSeed: worldSeed}
	m37 := g37.GetMapFromParent(m36).Crop(a37)
	if allEqual(m37) {
		return 3
	}
	g38 := &layer.Zoom{Parent: g37, BaseSeed: 1002, WorldSeed: worldSeed}
	m38 := g38.GetMapFromParent(m37).Crop(a38)
	if allEqual(m38) {
		return 4
	}
	g39 := &layer.Zoom{Parent: g38, BaseSeed: 1003, WorldSeed: worldSeed}
	m39 := g39.GetMapFromParent(m38).Crop(a39)
	if allEqual(m39) {
		return 5
	}

	return 0
}

type scoredFragment struct {
	m      biome.Map
	rivers int
}

// hdTarget holds a recovered full-resolution ("hd") pre-voronoi fragment
// alongside its voronoi-zoomed edge-detected signature, used by the
// 34-bit and 64-bit confirmation stages.
type hdTarget struct {
	hd      biome.Map
	edge    biome.Map
	edgeCnt int
}

// Find26BitCandidates brute-forces the low 26 bits of the world seed
// (indices [rangeLo, rangeHi) into the 2^25 similar-biome-seed
// enumeration, each checked against both polarities of bit 25) against
// observed river fragments, returning every 26-bit value that
// plausibly explains at least a 90%-scoring majority of them.
func Find26BitCandidates(riverCoordsVoronoi []Point, rangeLo, rangeHi uint32) []uint64 {
	all := mcrng.SimilarBiomeSeedIteratorBits(25)
	if rangeHi > uint32(len(all)) {
		rangeHi = uint32(len(all))
	}
	seeds25 := all[rangeLo:rangeHi]

	fragments := splitRiversIntoFragments(riverCoordsVoronoi)
	var targets []scoredFragment
	for _, frag := range fragments {
		derived, ok := inverse.VoronoiZoom(frag)
		if !ok {
			continue
		}
		targets = append(targets, scoredFragment{m: derived, rivers: countRivers(derived)})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].rivers > targets[j].rivers })
	if len(targets) > 10 {
		targets = targets[:10]
	}
	filtered := targets[:0]
	for _, t := range targets {
		if t.rivers >= 10 {
			filtered = append(filtered, t)
		}
	}
	targets = filtered

	badMapTarget := 2
	if len(targets) == 1 {
		badMapTarget = 1
	}

	var candidates []uint64
	for _, ws25 := range seeds25 {
		for _, bit25 := range [2]uint64{0, 1 << 25} {
			worldSeed := ws25 | bit25
			bad := 0
			for _, t := range targets {
				candidate := candidateRiverMap(t.m.Area, worldSeed)
				score := countRiversAnd(candidate, t.m)
				if score < t.rivers*90/100 {
					bad++
				}
				if bad >= badMapTarget {
					break
				}
			}
			if bad < badMapTarget {
				candidates = append(candidates, worldSeed)
				candidates = append(candidates, mcrng.SimilarBiomeSeed(worldSeed)&((1<<26)-1))
			}
		}
	}
	return dedupUint64(candidates)
}

func dedupUint64(in []uint64) []uint64 {
	seen := map[uint64]bool{}
	out := in[:0]
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// TreasureMapRiverSeedFinder bruteforces candidate world seeds from the
// river pixels visible on a single observed in-game treasure map:
// observedTreasureMap is a biome.Map at the map's native 1:2 scale
// (local cell (x, z) corresponds to world block (2x, 2z)) with every
// river pixel marked biomeinfo.River, exactly as the thin blue river
// line reads off a map item. rangeLo/rangeHi bound the same [0, 1<<25)
// similar-biome-seed enumeration Find26BitCandidates indexes.
//
// Unlike FindRiverSeeds, which is handed independent full-resolution
// river observations, a treasure map's pixels are all mutually
// consistent samples of the same half-voronoi-zoomed region, so this
// reverses that single region back to its pre-voronoi source once and
// scores every 26-bit candidate's re-zoomed output against it directly,
// extending straight to 34 bits without a separate full-resolution
// confirmation fragment.
func TreasureMapRiverSeedFinder(observedTreasureMap biome.Map, rangeLo, rangeHi uint32) []uint64 {
	area := observedTreasureMap.Area
	var riverCoordsHD, riverCoordsTM []Point
	for z := int64(0); z < area.H; z++ {
		for x := int64(0); x < area.W; x++ {
			if observedTreasureMap.At(x, z) != biomeinfo.River {
				continue
			}
			wx, wz := area.X+x, area.Z+z
			riverCoordsHD = append(riverCoordsHD, Point{X: wx * 2, Z: wz * 2})
			riverCoordsTM = append(riverCoordsTM, Point{X: wx, Z: wz})
		}
	}
	if len(riverCoordsTM) == 0 {
		return nil
	}

	candidates26 := Find26BitCandidates(riverCoordsHD, rangeLo, rangeHi)

	targetTM := mapWithRiverAt(riverCoordsTM)
	targetPM := inverse.HalfVoronoiZoom(targetTM)

	probe := &layer.HalfVoronoiZoom{BaseSeed: 10, WorldSeed: 1234}
	targetVoronoi := probe.GetMapFromParent(targetPM)
	if targetVoronoi.Area.W <= 2 || targetVoronoi.Area.H <= 2 {
		return nil
	}
	targetHV := targetTM.Crop(targetVoronoi.Area)
	targetBorderArea := biome.Area{X: targetHV.Area.X + 1, Z: targetHV.Area.Z + 1, W: targetHV.Area.W - 2, H: targetHV.Area.H - 2}
	targetBorders := edgeDetectRiverAll(targetHV, targetBorderArea)
	targetScore := countRivers(targetBorders)

	var candidates34 []uint64
	for _, x := range candidates26 {
		for seed := uint64(0); seed < 1<<8; seed++ {
			worldSeed := x | (seed << 26)
			hv := &layer.HalfVoronoiZoom{BaseSeed: 10, WorldSeed: worldSeed}
			candidateVoronoi := hv.GetMapFromParent(targetPM)
			candidateBorderArea := biome.Area{X: candidateVoronoi.Area.X + 1, Z: candidateVoronoi.Area.Z + 1, W: candidateVoronoi.Area.W - 2, H: candidateVoronoi.Area.H - 2}
			candidateBorders := edgeDetectRiverAll(candidateVoronoi, candidateBorderArea)
			score := countRiversExact(candidateBorders, targetBorders)
			if score >= targetScore*90/100 {
				candidates34 = append(candidates34, worldSeed)
			}
		}
	}
	sort.Slice(candidates34, func(i, j int) bool { return candidates34[i] < candidates34[j] })
	return dedupUint64(candidates34)
}

// rangeChunkSize bounds how much of the 26-bit range FindRiverSeeds
// brute-forces between cancellation checks and progress log lines.
const rangeChunkSize = 1 << 14

// FindRiverSeeds runs the full staged bruteforce: Find26BitCandidates for
// the low 26 bits, a 2^8 extension to 34 bits scored against a
// full-resolution voronoi-zoomed river map, a 2^14 extension to 48 bits,
// javarng.ExtendLong48 to reach 64 bits, and a full-pipeline confirmation
// pass against both the river fragments and any pinned extraBiomes.
// rangeLo/rangeHi bound the 26-bit stage the same way Find26BitCandidates
// does.
//
// ctx is checked before each 26-bit range chunk, before each 26-bit
// candidate of the 34-bit stage, and every rangeChunkSize candidates of
// the confirmation pass. Cancellation during the 26- or 34-bit stage
// returns nil; during the confirmation pass it returns the seeds
// confirmed so far. logger receives one progress line per chunk; a nil
// logger disables logging.
func FindRiverSeeds(ctx context.Context, logger *log.Logger, riverCoordsVoronoi []Point, extraBiomes []ExtraBiome, version biome.Version, rangeLo, rangeHi uint32) []uint64 {
	logf := func(format string, args ...any) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}

	fragments := splitRiversIntoFragments(riverCoordsVoronoi)
	var hdTargets []hdTarget
	for _, frag := range fragments {
		hd, ok := inverse.VoronoiZoom(frag)
		if !ok {
			continue
		}
		vz := &layer.VoronoiZoom{BaseSeed: 10, WorldSeed: 1234}
		voronoi := vz.GetMapFromParent(hd)
		if voronoi.Area.W <= 2 || voronoi.Area.H <= 2 {
			continue
		}
		sliced := frag.Crop(voronoi.Area)
		edge := edgeDetectRiverAll(sliced, biome.Area{X: sliced.Area.X + 1, Z: sliced.Area.Z + 1, W: sliced.Area.W - 2, H: sliced.Area.H - 2})
		hdTargets = append(hdTargets, hdTarget{hd: hd, edge: edge, edgeCnt: countRivers(edge)})
	}
	sort.Slice(hdTargets, func(i, j int) bool { return hdTargets[i].edgeCnt > hdTargets[j].edgeCnt })
	if len(hdTargets) > 4 {
		hdTargets = hdTargets[:4]
	}
	filtered := hdTargets[:0]
	for _, t := range hdTargets {
		if t.edgeCnt >= 40 {
			filtered = append(filtered, t)
		}
	}
	hdTargets = filtered

	var candidates26 []uint64
	for chunkLo := rangeLo; chunkLo < rangeHi; chunkLo += rangeChunkSize {
		select {
		case <-ctx.Done():
			logf("seedfinder: 26-bit stage cancelled at chunk %d/%d", chunkLo, rangeHi)
			return nil
		default:
		}
		chunkHi := chunkLo + rangeChunkSize
		if chunkHi > rangeHi {
			chunkHi = rangeHi
		}
		found := Find26BitCandidates(riverCoordsVoronoi, chunkLo, chunkHi)
		candidates26 = append(candidates26, found...)
		logf("seedfinder: 26-bit stage chunk [%d,%d) found %d candidate(s), %d so far", chunkLo, chunkHi, len(found), len(candidates26))
	}
	candidates26 = dedupUint64(candidates26)
	logf("seedfinder: 26-bit stage complete, %d candidate(s)", len(candidates26))

	var candidates34 []uint64
	for ci, x := range candidates26 {
		select {
		case <-ctx.Done():
			logf("seedfinder: 34-bit stage cancelled at candidate %d/%d", ci, len(candidates26))
			return nil
		default:
		}
		for seed := uint64(0); seed < 1<<8; seed++ {
			worldSeed := x | (seed << 26)
			vz := &layer.VoronoiZoom{BaseSeed: 10, WorldSeed: worldSeed}
			matched := len(hdTargets) == 0
			for _, t := range hdTargets {
				voronoi := vz.GetMapFromParent(t.hd)
				edgeArea := biome.Area{X: voronoi.Area.X + 1, Z: voronoi.Area.Z + 1, W: voronoi.Area.W - 2, H: voronoi.Area.H - 2}
				edge := edgeDetectRiverAll(voronoi, edgeArea)
				score := countRiversAnd(edge, t.edge)
				if score >= t.edgeCnt*90/100 {
					matched = true
					break
				}
			}
			if matched {
				candidates34 = append(candidates34, worldSeed)
			}
		}
	}
	logf("seedfinder: 34-bit stage complete, %d candidate(s)", len(candidates34))

	var candidates48 []uint64
	for _, x := range candidates34 {
		for seed := uint64(0); seed < 1<<14; seed++ {
			candidates48 = append(candidates48, x|(seed<<34))
		}
	}

	var candidates64 []uint64
	for ci, base48 := range candidates48 {
		if ci%rangeChunkSize == 0 {
			select {
			case <-ctx.Done():
				logf("seedfinder: 64-bit confirmation cancelled at candidate %d/%d", ci, len(candidates48))
				sort.Slice(candidates64, func(i, j int) bool { return candidates64[i] < candidates64[j] })
				return dedupUint64(candidates64)
			default:
			}
		}
		for _, full := range javarng.ExtendLong48(base48 & (1<<48 - 1)) {
			worldSeed := full
			if !confirmCandidate(worldSeed, hdTargets, extraBiomes, version) {
				continue
			}
			candidates64 = append(candidates64, worldSeed)
		}
	}
	sort.Slice(candidates64, func(i, j int) bool { return candidates64[i] < candidates64[j] })
	candidates64 = dedupUint64(candidates64)
	logf("seedfinder: confirmation complete, %d final candidate(s)", len(candidates64))
	return candidates64
}

func confirmCandidate(worldSeed uint64, hdTargets []hdTarget, extraBiomes []ExtraBiome, version biome.Version) bool {
	root := pipeline.Build(version, worldSeed)
	for _, t := range hdTargets {
		target := countRivers(t.hd)
		if target == 0 {
			continue
		}
		candidate := root.GetMap(t.hd.Area)
		if countRiversExact(candidate, t.hd) < target*90/100 {
			return false
		}
	}

	if len(extraBiomes) == 0 {
		return true
	}
	target := len(extraBiomes) * 90 / 100
	maxMisses := len(extraBiomes) - target
	hits, misses := 0, 0
	for _, eb := range extraBiomes {
		area := biome.Area{X: eb.X, Z: eb.Z, W: 1, H: 1}
		got := root.GetMap(area).At(0, 0)
		if got == eb.Biome {
			hits++
		} else {
			misses++
			if misses > maxMisses {
				break
			}
		}
	}
	return hits >= target
}
