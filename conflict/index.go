package conflict

import (
	"github.com/dhconnelly/rtreego"

	"github.com/bytearena/rmf-traffic-core/geometry"
	"github.com/bytearena/rmf-traffic-core/trajectory"
)

// indexRtreeMinBranch/indexRtreeMaxBranch are the branch-factor bounds
// rtreego's constructor requires.
const (
	indexRtreeMinBranch = 25
	indexRtreeMaxBranch = 50
)

// Entry is one participant registered with an Index: its profile,
// trajectory, and an opaque identifier the caller uses to tell pairs apart.
type Entry struct {
	ID      string
	Profile geometry.Profile
	Traj    *trajectory.Trajectory
}

// entrySpatial adapts an Entry to rtreego.Spatial by bounding its whole
// trajectory's vicinity footprint over its full time span.
type entrySpatial struct {
	entry Entry
	rect  *rtreego.Rect
}

func (s *entrySpatial) Bounds() *rtreego.Rect { return s.rect }

// Index is a broad-phase pre-filter over many trajectories: it lets a
// caller holding a fleet of trajectories find candidate pairs worth
// running through DetectBetween, without testing every pair against
// every other.
type Index struct {
	tree    *rtreego.Rtree
	entries []Entry
}

// NewIndex builds a broad-phase index over a fleet of participants. A
// participant whose profile normalizes to Inert, or whose trajectory has
// fewer than two waypoints, is skipped: it can never conflict with
// anything and has no meaningful bounding box.
func NewIndex(entries []Entry) *Index {
	spatials := make([]rtreego.Spatial, 0, len(entries))
	kept := make([]Entry, 0, len(entries))

	for _, e := range entries {
		profile := e.Profile.Normalize()
		if profile.Inert() || e.Traj.Size() < 2 {
			continue
		}

		rect, ok := trajectoryRect(profile, e.Traj)
		if !ok {
			continue
		}

		e.Profile = profile
		kept = append(kept, e)
		spatials = append(spatials, &entrySpatial{entry: e, rect: rect})
	}

	return &Index{
		tree:    rtreego.NewTree(2, indexRtreeMinBranch, indexRtreeMaxBranch, spatials...),
		entries: kept,
	}
}

// Pair is a candidate pair of participants whose bounding volumes
// overlap, worth testing with DetectBetween.
type Pair struct {
	A, B Entry
}

// CandidatePairs returns every pair of registered participants whose
// overall bounding boxes intersect. It does not itself run the narrow
// phase; a caller typically follows up with DetectBetween on each pair.
func (idx *Index) CandidatePairs() []Pair {
	var pairs []Pair

	for _, e := range idx.entries {
		rect, ok := trajectoryRect(e.Profile, e.Traj)
		if !ok {
			continue
		}

		matches := idx.tree.SearchIntersect(rect)
		for _, m := range matches {
			other := m.(*entrySpatial).entry
			// Emit each unordered pair once: keep only matches that sort
			// after the current entry by id.
			if other.ID <= e.ID {
				continue
			}
			pairs = append(pairs, Pair{A: e, B: other})
		}
	}

	return pairs
}

// trajectoryRect bounds a trajectory's vicinity shape swept over its
// entire time span, the spatial key the broad phase indexes on.
func trajectoryRect(profile geometry.Profile, traj *trajectory.Trajectory) (*rtreego.Rect, bool) {
	vicinity := profile.Vicinity()
	if vicinity == nil {
		return nil, false
	}

	box := geometry.VoidBox()
	for it := traj.Begin(); it < traj.End(); it++ {
		segment := traj.Spline(it).BoundingBox().Inflate(vicinity.CharacteristicLength())
		box = unionBox(box, segment)
	}

	width := box.Max[0] - box.Min[0]
	height := box.Max[1] - box.Min[1]
	if width <= 0 || height <= 0 {
		return nil, false
	}

	rect, err := rtreego.NewRect(
		[]float64{box.Min[0], box.Min[1]},
		[]float64{width, height},
	)
	if err != nil {
		return nil, false
	}
	return rect, true
}

func unionBox(a, b geometry.BoundingBox) geometry.BoundingBox {
	return geometry.BoundingBox{
		Min: [2]float64{minF(a.Min[0], b.Min[0]), minF(a.Min[1], b.Min[1])},
		Max: [2]float64{maxF(a.Max[0], b.Max[0]), maxF(a.Max[1], b.Max[1])},
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
