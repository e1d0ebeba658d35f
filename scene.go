package meshcat

import (
	"sort"
	"strings"
	"sync"

	"github.com/inercia/meshcat-go/geometry"
	"github.com/inercia/meshcat-go/pose"
)

// Scene is the client-side mirror of the viewer's scene graph: a tree of
// path-addressed nodes recording the last object, transform, and properties
// sent for each path. Nodes only ever change through Visualizer calls, so
// the mirror reflects exactly what the client has told the viewer.
//
// Scene is safe for concurrent use.
type Scene struct {
	mu   sync.RWMutex
	root *sceneNode
}

type sceneNode struct {
	children   map[string]*sceneNode
	object     *geometry.Object
	transform  *pose.Pose
	properties map[string]any
}

func newSceneNode() *sceneNode {
	return &sceneNode{children: make(map[string]*sceneNode)}
}

// NewScene returns an empty scene mirror.
func NewScene() *Scene {
	return &Scene{root: newSceneNode()}
}

// lookup walks to the node at path without creating anything.
func (s *Scene) lookup(path string) *sceneNode {
	node := s.root
	for _, part := range SplitPath(path) {
		next, ok := node.children[part]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// materialize walks to the node at path, creating intermediate nodes.
func (s *Scene) materialize(path string) *sceneNode {
	node := s.root
	for _, part := range SplitPath(path) {
		next, ok := node.children[part]
		if !ok {
			next = newSceneNode()
			node.children[part] = next
		}
		node = next
	}
	return node
}

func (s *Scene) setObject(path string, obj *geometry.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialize(path).object = obj
}

func (s *Scene) setTransform(path string, p pose.Pose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialize(path).transform = &p
}

func (s *Scene) setProperty(path, name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	node := s.materialize(path)
	if node.properties == nil {
		node.properties = make(map[string]any)
	}
	node.properties[name] = value
}

// remove prunes the node at path and its whole subtree. Removing the root
// clears the scene.
func (s *Scene) remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := SplitPath(path)
	if len(parts) == 0 {
		s.root = newSceneNode()
		return
	}
	node := s.root
	for _, part := range parts[:len(parts)-1] {
		next, ok := node.children[part]
		if !ok {
			return
		}
		node = next
	}
	delete(node.children, parts[len(parts)-1])
}

// Has reports whether a node exists at path.
func (s *Scene) Has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(path) != nil
}

// Object returns the object last set at path, if any.
func (s *Scene) Object(path string) (*geometry.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node := s.lookup(path)
	if node == nil || node.object == nil {
		return nil, false
	}
	return node.object, true
}

// Transform returns the transform last set at path. Nodes that never had a
// transform set report false.
func (s *Scene) Transform(path string) (pose.Pose, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node := s.lookup(path)
	if node == nil || node.transform == nil {
		return pose.Identity(), false
	}
	return *node.transform, true
}

// Property returns the value last set for a property at path.
func (s *Scene) Property(path, name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node := s.lookup(path)
	if node == nil {
		return nil, false
	}
	value, ok := node.properties[name]
	return value, ok
}

// Paths returns every known path in the scene, sorted.
func (s *Scene) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var paths []string
	var walk func(prefix string, node *sceneNode)
	walk = func(prefix string, node *sceneNode) {
		for name, child := range node.children {
			path := prefix + "/" + name
			paths = append(paths, path)
			walk(path, child)
		}
	}
	walk("", s.root)
	sort.Strings(paths)
	return paths
}

// PathsUnder returns the known paths at or below the given path, sorted.
// The root path matches everything.
func (s *Scene) PathsUnder(path string) []string {
	normalized := NormalizePath(path)
	if normalized == "/" {
		return s.Paths()
	}
	var matched []string
	for _, p := range s.Paths() {
		if p == normalized || strings.HasPrefix(p, normalized+"/") {
			matched = append(matched, p)
		}
	}
	return matched
}
