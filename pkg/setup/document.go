package setup

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultRefractiveIndex is used for refractive materials that leave the index out
const DefaultRefractiveIndex = 1.5

type vec3 [3]float64

type rgba [4]float64

func newVec3(v core.Vec3) vec3 { return vec3{v.X, v.Y, v.Z} }

func (v vec3) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func newRGBA(c core.Color) rgba { return rgba{c.X, c.Y, c.Z, c.W} }

func (c rgba) toColor() core.Color { return core.NewColor(c[0], c[1], c[2], c[3]) }

// document is the on-disk form of a Setup, shared by the JSON and TOML codecs
type document struct {
	Parameters parametersDoc `json:"parameters" toml:"parameters"`
	Camera     cameraDoc     `json:"camera" toml:"camera"`
	Background backgroundDoc `json:"background" toml:"background"`
	Objects    []objectDoc   `json:"objects" toml:"objects"`
}

type parametersDoc struct {
	ImageWidth       int    `json:"image_width" toml:"image_width"`
	ImageHeight      int    `json:"image_height" toml:"image_height"`
	AntialiasSamples int    `json:"antialias_samples" toml:"antialias_samples"`
	BounceLimit      int    `json:"bounce_limit" toml:"bounce_limit"`
	DebugMode        string `json:"debug_mode" toml:"debug_mode"`
	TileSize         int    `json:"tile_size" toml:"tile_size"`
	Workers          int    `json:"workers" toml:"workers"`
	Seed             uint64 `json:"seed" toml:"seed"`
}

type cameraDoc struct {
	Origin         vec3    `json:"origin" toml:"origin"`
	Up             vec3    `json:"up" toml:"up"`
	LookAt         *vec3   `json:"look_at,omitempty" toml:"look_at,omitempty"`
	FieldOfView    float64 `json:"field_of_view" toml:"field_of_view"`
	FocusDistance  float64 `json:"focus_distance" toml:"focus_distance"`
	ApertureRadius float64 `json:"aperture_radius" toml:"aperture_radius"`
	ShutterOpen    float64 `json:"shutter_open" toml:"shutter_open"`
	ShutterClose   float64 `json:"shutter_close" toml:"shutter_close"`
}

type backgroundDoc struct {
	Kind   string `json:"kind" toml:"kind"` // "gradient" or "constant"
	Top    rgba   `json:"top" toml:"top"`
	Bottom rgba   `json:"bottom" toml:"bottom"`
	Color  *rgba  `json:"color,omitempty" toml:"color,omitempty"`
}

type objectDoc struct {
	Shape    shapeDoc    `json:"shape" toml:"shape"`
	Material materialDoc `json:"material" toml:"material"`
	Velocity *vec3       `json:"velocity,omitempty" toml:"velocity,omitempty"`
}

type shapeDoc struct {
	Kind   string  `json:"kind" toml:"kind"` // "sphere" or "plane"
	Center *vec3   `json:"center,omitempty" toml:"center,omitempty"`
	Radius float64 `json:"radius,omitempty" toml:"radius,omitempty"`
	Point  *vec3   `json:"point,omitempty" toml:"point,omitempty"`
	Normal *vec3   `json:"normal,omitempty" toml:"normal,omitempty"`
}

type materialDoc struct {
	Kind            string  `json:"kind" toml:"kind"`
	Albedo          *rgba   `json:"albedo,omitempty" toml:"albedo,omitempty"`
	Roughness       float64 `json:"roughness,omitempty" toml:"roughness,omitempty"`
	RefractiveIndex float64 `json:"refractive_index,omitempty" toml:"refractive_index,omitempty"`
}

// defaultDocument holds the values used for anything a file leaves out
func defaultDocument() document {
	params := renderer.DefaultParameters()
	camera := geometry.DefaultCameraConfig()
	background := scene.DefaultBackground()

	return document{
		Parameters: newParametersDoc(params),
		Camera:     newCameraDoc(camera),
		Background: newBackgroundDoc(background),
	}
}

func newParametersDoc(p renderer.Parameters) parametersDoc {
	return parametersDoc{
		ImageWidth:       p.ImageWidth,
		ImageHeight:      p.ImageHeight,
		AntialiasSamples: p.AntialiasSamples,
		BounceLimit:      p.BounceLimit,
		DebugMode:        p.DebugMode.String(),
		TileSize:         p.TileSize,
		Workers:          p.NumWorkers,
		Seed:             p.Seed,
	}
}

func newCameraDoc(c geometry.CameraConfig) cameraDoc {
	doc := cameraDoc{
		Origin:         newVec3(c.Origin),
		Up:             newVec3(c.Up),
		FieldOfView:    c.FieldOfView,
		FocusDistance:  c.FocusDistance,
		ApertureRadius: c.ApertureRadius,
		ShutterOpen:    c.ShutterOpen,
		ShutterClose:   c.ShutterClose,
	}
	if c.LookAt != nil {
		lookAt := newVec3(*c.LookAt)
		doc.LookAt = &lookAt
	}
	return doc
}

func newBackgroundDoc(b scene.Background) backgroundDoc {
	if b.Kind == scene.BackgroundConstant {
		color := newRGBA(b.Top)
		return backgroundDoc{Kind: "constant", Top: color, Bottom: color, Color: &color}
	}
	return backgroundDoc{Kind: "gradient", Top: newRGBA(b.Top), Bottom: newRGBA(b.Bottom)}
}

// newDocument converts a setup into its file form
func newDocument(s *Setup) (document, error) {
	if s == nil || s.Scene == nil {
		return document{}, fmt.Errorf("no scene to write")
	}

	doc := document{
		Parameters: newParametersDoc(s.Parameters),
		Background: newBackgroundDoc(s.Scene.Background),
		Objects:    make([]objectDoc, 0, len(s.Scene.Objects)),
	}
	if s.Scene.Camera != nil {
		doc.Camera = newCameraDoc(*s.Scene.Camera)
	} else {
		doc.Camera = newCameraDoc(geometry.DefaultCameraConfig())
	}

	for i, obj := range s.Scene.Objects {
		shape, err := newShapeDoc(obj.Shape)
		if err != nil {
			return document{}, fmt.Errorf("object %d: %w", i, err)
		}
		if obj.Material == nil {
			return document{}, fmt.Errorf("object %d: no material", i)
		}

		objDoc := objectDoc{Shape: shape, Material: newMaterialDoc(obj.Material)}
		if !obj.Velocity.IsZero() {
			velocity := newVec3(obj.Velocity)
			objDoc.Velocity = &velocity
		}
		doc.Objects = append(doc.Objects, objDoc)
	}

	return doc, nil
}

func newShapeDoc(shape geometry.Shape) (shapeDoc, error) {
	switch s := shape.(type) {
	case *geometry.Sphere:
		center := newVec3(s.Center)
		return shapeDoc{Kind: "sphere", Center: &center, Radius: s.Radius}, nil
	case *geometry.Plane:
		point := newVec3(s.Point)
		normal := newVec3(s.Normal)
		return shapeDoc{Kind: "plane", Point: &point, Normal: &normal}, nil
	}
	return shapeDoc{}, fmt.Errorf("unsupported shape %T", shape)
}

func newMaterialDoc(m *material.Material) materialDoc {
	albedo := newRGBA(m.Albedo)
	doc := materialDoc{Kind: m.Kind.String(), Albedo: &albedo}
	switch m.Kind {
	case material.Metallic:
		doc.Roughness = m.Roughness
	case material.Refractive:
		doc.RefractiveIndex = m.RefractiveIndex
	}
	return doc
}

// toSetup builds the in-memory setup, defaulting optional object fields
func (doc document) toSetup() (*Setup, error) {
	debugMode, err := renderer.ParseDebugMode(doc.Parameters.DebugMode)
	if err != nil {
		return nil, err
	}
	params := renderer.Parameters{
		ImageWidth:       doc.Parameters.ImageWidth,
		ImageHeight:      doc.Parameters.ImageHeight,
		AntialiasSamples: doc.Parameters.AntialiasSamples,
		BounceLimit:      doc.Parameters.BounceLimit,
		DebugMode:        debugMode,
		TileSize:         doc.Parameters.TileSize,
		NumWorkers:       doc.Parameters.Workers,
		Seed:             doc.Parameters.Seed,
	}

	camera := geometry.CameraConfig{
		Origin:         doc.Camera.Origin.toVec3(),
		Up:             doc.Camera.Up.toVec3(),
		FieldOfView:    doc.Camera.FieldOfView,
		FocusDistance:  doc.Camera.FocusDistance,
		ApertureRadius: doc.Camera.ApertureRadius,
		ShutterOpen:    doc.Camera.ShutterOpen,
		ShutterClose:   doc.Camera.ShutterClose,
	}
	if doc.Camera.LookAt != nil {
		lookAt := doc.Camera.LookAt.toVec3()
		camera.LookAt = &lookAt
	}

	s := scene.New(camera)
	switch doc.Background.Kind {
	case "", "gradient":
		s.Background = scene.Background{
			Kind:   scene.BackgroundGradient,
			Top:    doc.Background.Top.toColor(),
			Bottom: doc.Background.Bottom.toColor(),
		}
	case "constant":
		color := doc.Background.Top
		if doc.Background.Color != nil {
			color = *doc.Background.Color
		}
		s.Background = scene.ConstantBackground(color.toColor())
	default:
		return nil, fmt.Errorf("unknown background kind %q", doc.Background.Kind)
	}

	for i, objDoc := range doc.Objects {
		obj, err := objDoc.toObject()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(obj)
	}

	return &Setup{Parameters: params, Scene: s}, nil
}

func (doc objectDoc) toObject() (scene.Object, error) {
	shape, err := doc.Shape.toShape()
	if err != nil {
		return scene.Object{}, err
	}
	mat, err := doc.Material.toMaterial()
	if err != nil {
		return scene.Object{}, err
	}
	if doc.Velocity != nil {
		return scene.NewMovingObject(shape, mat, doc.Velocity.toVec3()), nil
	}
	return scene.NewObject(shape, mat), nil
}

func (doc shapeDoc) toShape() (geometry.Shape, error) {
	switch doc.Kind {
	case "sphere":
		if doc.Center == nil {
			return nil, fmt.Errorf("sphere needs a center")
		}
		if doc.Radius == 0 {
			return nil, fmt.Errorf("sphere needs a non-zero radius")
		}
		return geometry.NewSphere(doc.Center.toVec3(), doc.Radius), nil
	case "plane":
		if doc.Point == nil || doc.Normal == nil {
			return nil, fmt.Errorf("plane needs a point and a normal")
		}
		normal := doc.Normal.toVec3()
		if normal.IsZero() {
			return nil, fmt.Errorf("plane normal is zero")
		}
		return geometry.NewPlane(doc.Point.toVec3(), normal), nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", doc.Kind)
}

func (doc materialDoc) toMaterial() (*material.Material, error) {
	kind := material.Diffuse
	if doc.Kind != "" {
		var err error
		if kind, err = material.ParseKind(doc.Kind); err != nil {
			return nil, err
		}
	}

	albedo := core.White
	if doc.Albedo != nil {
		albedo = doc.Albedo.toColor()
	}

	switch kind {
	case material.Metallic:
		return material.NewMetallic(albedo, doc.Roughness), nil
	case material.Refractive:
		index := doc.RefractiveIndex
		if index == 0 {
			index = DefaultRefractiveIndex
		}
		return material.NewRefractive(albedo, index), nil
	}
	return material.NewDiffuse(albedo), nil
}
