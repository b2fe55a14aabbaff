// Package scene instantiates mesh templates into entity subtrees.
//
// Instantiation is deferred: Instantiate only records a directive and the subtree is
// created by Flush, which the schedule runs as the barrier after the Spawn phase.
// A template may contain one node that owns an animation player; it ends up at
// whatever depth the model puts it.
package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/rs/zerolog/log"
)

// ErrTemplateNotReady is returned while the source document of a template is not loaded yet.
// Any other error from a TemplateSource is permanent.
var ErrTemplateNotReady = errors.New("template not ready")

// Node is one node of a template.
type Node struct {
	Name            string
	Local           components.TransformComponent
	Children        []Node
	AnimationPlayer bool
}

// Template is an instantiable scene: a named root with top-level nodes.
type Template struct {
	Name  string
	Nodes []Node
}

// TemplateSource resolves mesh handles to templates. It returns ErrTemplateNotReady
// while the template is not available yet.
type TemplateSource interface {
	Template(mesh types.Handle) (*Template, error)
}

// StaticTemplates is a TemplateSource backed by a fixed map.
type StaticTemplates map[types.Handle]*Template

// Template implements TemplateSource.
func (s StaticTemplates) Template(mesh types.Handle) (*Template, error) {
	t, ok := s[mesh]
	if !ok {
		return nil, ErrTemplateNotReady
	}
	return t, nil
}

// DocumentSource hands out decoded glTF documents by file path.
type DocumentSource interface {
	Document(path string) (*gltf.Document, bool)
}

// GLTFTemplates builds templates from "#Scene<n>" handles of decoded documents and caches them.
// A handle whose template cannot be built is remembered and logged once.
type GLTFTemplates struct {
	docs     DocumentSource
	maxDepth int
	cache    map[types.Handle]*Template
	failed   map[types.Handle]error
}

// NewGLTFTemplates creates a template source over docs. maxDepth bounds node nesting.
func NewGLTFTemplates(docs DocumentSource, maxDepth int) *GLTFTemplates {
	return &GLTFTemplates{
		docs:     docs,
		maxDepth: maxDepth,
		cache:    make(map[types.Handle]*Template),
		failed:   make(map[types.Handle]error),
	}
}

// Template implements TemplateSource.
func (g *GLTFTemplates) Template(mesh types.Handle) (*Template, error) {
	if t, ok := g.cache[mesh]; ok {
		return t, nil
	}
	if err, ok := g.failed[mesh]; ok {
		return nil, err
	}
	doc, ok := g.docs.Document(mesh.Path())
	if !ok {
		return nil, ErrTemplateNotReady
	}
	t, err := g.build(doc, mesh)
	if err != nil {
		err = fmt.Errorf("template %s: %w", mesh, err)
		g.failed[mesh] = err
		log.Error().Err(err).Str("handle", mesh.String()).Msg("failed to build scene template")
		return nil, err
	}
	g.cache[mesh] = t
	return t, nil
}

func (g *GLTFTemplates) build(doc *gltf.Document, mesh types.Handle) (*Template, error) {
	index, err := sceneIndex(mesh.Label())
	if err != nil {
		return nil, err
	}
	return TemplateFromDocument(doc, index, g.maxDepth)
}

func sceneIndex(label string) (int, error) {
	if label == "" {
		return 0, nil
	}
	if !strings.HasPrefix(label, "Scene") {
		return 0, fmt.Errorf("label %q is not a scene", label)
	}
	return strconv.Atoi(strings.TrimPrefix(label, "Scene"))
}

// TemplateFromDocument converts scene index of doc into a Template.
//
// When the document carries animations, the first top-level node receives the
// animation player, the node every animation channel of the file is expected to target.
func TemplateFromDocument(doc *gltf.Document, index, maxDepth int) (*Template, error) {
	if index < 0 || index >= len(doc.Scenes) {
		return nil, fmt.Errorf("scene %d out of range (document has %d)", index, len(doc.Scenes))
	}
	s := doc.Scenes[index]

	t := &Template{Name: s.Name}
	for _, n := range s.Nodes {
		node, err := buildNode(doc, n, 1, maxDepth)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", index, err)
		}
		t.Nodes = append(t.Nodes, node)
	}
	if len(doc.Animations) > 0 && len(t.Nodes) > 0 {
		t.Nodes[0].AnimationPlayer = true
	}
	return t, nil
}

// buildNode converts node index at depth (1 for top-level nodes) and its subtree.
func buildNode(doc *gltf.Document, index uint32, depth, maxDepth int) (Node, error) {
	if depth > maxDepth {
		return Node{}, fmt.Errorf("node %d nested deeper than %d", index, maxDepth)
	}
	if int(index) >= len(doc.Nodes) {
		return Node{}, fmt.Errorf("node %d out of range", index)
	}
	n := doc.Nodes[index]

	node := Node{Name: n.Name, Local: nodeTransform(n)}
	for _, c := range n.Children {
		child, err := buildNode(doc, c, depth+1, maxDepth)
		if err != nil {
			return Node{}, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func nodeTransform(n *gltf.Node) components.TransformComponent {
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return components.TransformComponent{
		Translation: mgl32.Vec3(t),
		Rotation:    mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}},
		Scale:       mgl32.Vec3(s),
	}
}
