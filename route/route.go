// Package route extracts drivable plans from OpenStreetMap extracts. A way is
// projected into a local planar frame (meters, anchored at its first node)
// and written as a plan file that simulate can run or a host can publish as
// navPlan.
package route

import (
	"context"
	"encoding/json"
	"log/slog"
	stdmath "math"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"

	m "pfeifer.dev/trackd/math"
	ms "pfeifer.dev/trackd/settings"
	u "pfeifer.dev/trackd/utils"
)

type ExtractSettings struct {
	InputFile  string
	OutputFile string
	WayName    string
	WayID      int64
	Spacing    float64 // waypoint spacing in meters after resampling; 0 keeps raw nodes
	MinRadius  float64 // warn when the way bends tighter than this; 0 disables the check
}

type PlanPose struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Yaw float64 `json:"yaw"`
}

type PlanFile struct {
	Source string     `json:"source"`
	Points []PlanPose `json:"points"`
}

func (p *PlanFile) Poses() []m.Pose {
	points := make([]m.Pose, len(p.Points))
	for i, pp := range p.Points {
		points[i] = m.NewPose(pp.X, pp.Y, pp.Yaw)
	}
	return points
}

func Load(path string) (PlanFile, error) {
	var plan PlanFile
	data, err := os.ReadFile(path)
	if err != nil {
		return plan, errors.Wrap(err, "could not read plan file")
	}
	err = json.Unmarshal(data, &plan)
	return plan, errors.Wrap(err, "could not parse plan file")
}

func (p *PlanFile) Write(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode plan file")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o664), "could not write plan file")
}

// Way wraps an OSM way with cached derived values.
type Way struct {
	Way *osm.Way

	name   u.Curry[string]
	points u.Curry[[]orb.Point]
	length u.Curry[float64]
}

func (w *Way) Name() string {
	return w.name.Value(func() string {
		tags := w.Way.TagMap()
		if len(tags["name"]) > 0 {
			return tags["name"]
		}
		return tags["ref"]
	})
}

// Points are the way's node coordinates as lon/lat points.
func (w *Way) Points() []orb.Point {
	return w.points.Value(func() []orb.Point {
		pts := make([]orb.Point, len(w.Way.Nodes))
		for i, n := range w.Way.Nodes {
			pts[i] = orb.Point{n.Lon, n.Lat}
		}
		return pts
	})
}

// Length is the way's planar length in meters.
func (w *Way) Length() float64 {
	return w.length.Value(func() float64 {
		local := localFrame(w.Points())
		total := 0.0
		for i := 0; i < len(local)-1; i++ {
			total += local[i].DistanceTo(local[i+1])
		}
		return total
	})
}

func (w *Way) matches(s ExtractSettings) bool {
	if s.WayID != 0 {
		return int64(w.Way.ID) == s.WayID
	}
	return len(s.WayName) > 0 && w.Name() == s.WayName
}

// Extract scans the pbf file for the requested way and converts it into a
// plan file.
func Extract(s ExtractSettings) (PlanFile, error) {
	file, err := os.Open(s.InputFile)
	if err != nil {
		return PlanFile{}, errors.Wrap(err, "could not open map pbf file")
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	scanner.SkipNodes = true
	defer scanner.Close()

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}
		w := Way{Way: way}
		if !w.matches(s) {
			continue
		}
		slog.Info("extracting way", "id", way.ID, "name", w.Name(), "length", w.Length())
		return buildPlan(&w, s)
	}
	if err := scanner.Err(); err != nil {
		return PlanFile{}, errors.Wrap(err, "could not scan map pbf file")
	}

	return PlanFile{}, errors.New("no matching way found")
}

// WayInfo summarizes a candidate way for interactive selection.
type WayInfo struct {
	ID     int64
	Name   string
	Length float64
}

// ListWays scans the pbf file and returns every named way with enough nodes
// to form a plan.
func ListWays(inputFile string) ([]WayInfo, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not open map pbf file")
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	scanner.SkipNodes = true
	defer scanner.Close()

	var ways []WayInfo
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}
		w := Way{Way: way}
		if len(w.Name()) == 0 {
			continue
		}
		ways = append(ways, WayInfo{ID: int64(way.ID), Name: w.Name(), Length: w.Length()})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not scan map pbf file")
	}
	return ways, nil
}

// localFrame projects lon/lat points into a planar frame in meters anchored
// at the first point. Mercator meters are rescaled by cos(lat) of the anchor
// to undo the projection's latitude stretch.
func localFrame(points []orb.Point) []m.Vector {
	if len(points) == 0 {
		return nil
	}
	anchor := project.WGS84.ToMercator(points[0])
	scale := stdmath.Cos(points[0][1] * ms.TO_RADIANS)

	local := make([]m.Vector, len(points))
	for i, pt := range points {
		merc := project.WGS84.ToMercator(pt)
		local[i] = m.Vector{
			X: (merc[0] - anchor[0]) * scale,
			Y: (merc[1] - anchor[1]) * scale,
		}
	}
	return local
}

func buildPlan(w *Way, s ExtractSettings) (PlanFile, error) {
	local := localFrame(w.Points())
	if s.Spacing > 0 {
		local = resample(local, s.Spacing)
	}
	if len(local) < 2 {
		return PlanFile{}, errors.New("way has too few usable points")
	}

	warnTightCurvature(local, s.MinRadius)

	plan := PlanFile{Source: s.InputFile, Points: make([]PlanPose, len(local))}
	for i, pt := range local {
		yaw := 0.0
		if i < len(local)-1 {
			d := local[i+1].Subtract(pt)
			yaw = d.Heading()
		} else {
			yaw = plan.Points[i-1].Yaw
		}
		plan.Points[i] = PlanPose{X: pt.X, Y: pt.Y, Yaw: yaw}
	}
	return plan, nil
}

// resample walks the polyline and emits evenly spaced points, always keeping
// the final vertex.
func resample(points []m.Vector, spacing float64) []m.Vector {
	if len(points) < 2 {
		return points
	}
	out := []m.Vector{points[0]}
	carry := 0.0
	for i := 0; i < len(points)-1; i++ {
		seg := points[i+1].Subtract(points[i])
		length := seg.Norm()
		if length == 0 {
			continue
		}
		dir := seg.Scale(1 / length)
		pos := carry
		for pos+spacing <= length {
			pos += spacing
			out = append(out, points[i].Add(dir.Scale(pos)))
		}
		carry = pos - length
	}
	last := points[len(points)-1]
	if out[len(out)-1].DistanceTo(last) > spacing/4 {
		out = append(out, last)
	}
	return out
}

func warnTightCurvature(points []m.Vector, minRadius float64) {
	if minRadius <= 0 {
		return
	}
	maxCurvature := 1 / minRadius
	for i := 0; i+2 < len(points); i++ {
		c := m.CalculateCurvature(points[i], points[i+1], points[i+2])
		if c.Curvature > maxCurvature {
			slog.Warn("way bends tighter than the minimum turning radius",
				"index", i+1, "radius", 1/c.Curvature, "min_radius", minRadius)
			return
		}
	}
}
