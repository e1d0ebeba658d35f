package urdf

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/inercia/meshcat-go"
	"github.com/inercia/meshcat-go/geometry"
)

// geometryFor converts one URDF geometry element. Mesh filenames resolve
// relative to dir.
func geometryFor(g Geom, dir string) (geometry.Geometry, error) {
	switch {
	case g.Box != nil:
		size, err := parseFloats(g.Box.Size, 3)
		if err != nil {
			return nil, fmt.Errorf("parse box size %q: %w", g.Box.Size, err)
		}
		return geometry.NewBox(size[0], size[1], size[2]), nil
	case g.Cylinder != nil:
		return geometry.NewCylinder(g.Cylinder.Radius, g.Cylinder.Radius, g.Cylinder.Length), nil
	case g.Sphere != nil:
		return geometry.NewSphere(g.Sphere.Radius), nil
	case g.Capsule != nil:
		return nil, fmt.Errorf("capsule geometry is not supported by the viewer")
	case g.Mesh != nil:
		filename := g.Mesh.Filename
		if !filepath.IsAbs(filename) && dir != "" {
			filename = filepath.Join(dir, filename)
		}
		return geometry.LoadMeshFile(filename)
	default:
		return nil, fmt.Errorf("empty geometry element")
	}
}

// objectFor assembles the lumped object for a link's visuals. An inline
// material color on the first visual is carried over; URDF alpha below one
// becomes opacity.
func objectFor(link Link, dir string) (*geometry.Object, error) {
	opts := make([]geometry.ObjectOption, 0, len(link.Visuals)+1)
	var materialOpts []geometry.MaterialOption
	for i, visual := range link.Visuals {
		geom, err := geometryFor(visual.Geometry, dir)
		if err != nil {
			return nil, fmt.Errorf("link %s visual %d: %w", link.Name, i, err)
		}
		origin, err := visual.Origin.Pose()
		if err != nil {
			return nil, fmt.Errorf("link %s visual %d: %w", link.Name, i, err)
		}
		opts = append(opts, geometry.WithGeometryAt(geom, origin))

		if i == 0 && visual.Material != nil && visual.Material.Color != nil {
			rgba, err := visual.Material.Color.Values()
			if err != nil {
				return nil, fmt.Errorf("link %s: %w", link.Name, err)
			}
			materialOpts = append(materialOpts, geometry.WithColor(packColor(rgba)))
			if rgba[3] < 1 {
				materialOpts = append(materialOpts, geometry.WithOpacity(rgba[3]))
			}
		}
	}
	if len(materialOpts) > 0 {
		opts = append(opts, geometry.WithMaterial(geometry.NewMaterial(materialOpts...)))
	}
	return geometry.NewObject(opts...), nil
}

func packColor(rgba [4]float64) uint32 {
	channel := func(v float64) uint32 {
		return uint32(math.Round(math.Min(math.Max(v, 0), 1) * 255))
	}
	return channel(rgba[0])<<16 | channel(rgba[1])<<8 | channel(rgba[2])
}

func sortedValues(m map[string]string) []string {
	vals := make([]string, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

// Publish mirrors the robot into the viewer under prefix: stale paths are
// deleted first, then every link with visuals gets a set_object and every
// joint origin a set_transform. An empty prefix roots the robot at "/".
func Publish(ctx context.Context, v *meshcat.Visualizer, prefix string, robot *Robot) error {
	paths := PathMap(robot)
	if prefix != "" {
		for name, path := range paths {
			paths[name] = prefix + path
		}
	}

	for _, path := range sortedValues(paths) {
		if err := v.Delete(ctx, path); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}

	for _, link := range robot.Links {
		if len(link.Visuals) == 0 {
			continue
		}
		obj, err := objectFor(link, robot.Dir)
		if err != nil {
			return err
		}
		if err := v.SetObject(ctx, paths[link.Name], obj); err != nil {
			return fmt.Errorf("set object %s: %w", paths[link.Name], err)
		}
	}

	for _, joint := range robot.Joints {
		origin, err := joint.Origin.Pose()
		if err != nil {
			return fmt.Errorf("joint %s: %w", joint.Name, err)
		}
		if err := v.SetTransform(ctx, paths[joint.Name], origin); err != nil {
			return fmt.Errorf("set transform %s: %w", paths[joint.Name], err)
		}
	}
	return nil
}
