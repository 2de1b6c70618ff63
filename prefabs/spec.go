package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("prefabs: invalid scene")

const (
	VariantField  = "field"
	VariantCanvas = "canvas"
)

// SceneSpec describes one object field: how its objects are placed, how they
// move and react to the pointer, and which route each one leads to.
type SceneSpec struct {
	Name     string      `yaml:"name"`
	Variant  string      `yaml:"variant"`
	Seed     int64       `yaml:"seed"`
	Bounds   BoundsSpec  `yaml:"bounds"`
	Motion   MotionSpec  `yaml:"motion"`
	Hover    HoverSpec   `yaml:"hover"`
	Layout   LayoutSpec  `yaml:"layout"`
	Camera   CameraSpec  `yaml:"camera"`
	Font     FontSpec    `yaml:"font"`
	Label    LabelSpec   `yaml:"label"`
	Defaults StyleSpec   `yaml:"defaults"`
	Lights   []LightSpec `yaml:"lights"`
	Canvas   CanvasSpec  `yaml:"canvas"`
	Items    []ItemSpec  `yaml:"items"`
}

type BoundsSpec struct {
	Shape      string  `yaml:"shape"`
	HalfExtent float64 `yaml:"half_extent"`
}

type MotionSpec struct {
	Mode          string  `yaml:"mode"`
	DtScale       float64 `yaml:"dt_scale"`
	Speed         float64 `yaml:"speed"`
	Spin          float64 `yaml:"spin"`
	SpinSymmetric bool    `yaml:"spin_symmetric"`
}

type HoverSpec struct {
	Effect        string  `yaml:"effect"`
	Motion        string  `yaml:"motion"`
	Decay         float64 `yaml:"decay"`
	Restore       float64 `yaml:"restore"`
	Ease          float64 `yaml:"ease"`
	BaseEmissive  float64 `yaml:"base_emissive"`
	HoverEmissive float64 `yaml:"hover_emissive"`
	Scale         float64 `yaml:"scale"`
}

type LayoutSpec struct {
	Kind      string         `yaml:"kind"`
	Radius    float64        `yaml:"radius"`
	MinRadius float64        `yaml:"min_radius"`
	MaxRadius float64        `yaml:"max_radius"`
	Spacing   float64        `yaml:"spacing"`
	Jitter    float64        `yaml:"jitter"`
	Columns   int            `yaml:"columns"`
	Script    string         `yaml:"script"`
	Params    map[string]any `yaml:"params"`
}

type CameraSpec struct {
	Z    float64 `yaml:"z"`
	FovY float64 `yaml:"fov"`
}

type FontSpec struct {
	URL  string  `yaml:"url"`
	Size float64 `yaml:"size"`
}

type LabelSpec struct {
	Size        int         `yaml:"size"`
	Scale       float64     `yaml:"scale"`
	Background  *YAMLColor  `yaml:"background"`
	Color       *YAMLColor  `yaml:"color"`
	Gradient    []YAMLColor `yaml:"gradient"`
	Stroke      *YAMLColor  `yaml:"stroke"`
	StrokeWidth int         `yaml:"stroke_width"`
}

// LightSpec is one scene light. Angle is the spot cone half-angle in
// degrees.
type LightSpec struct {
	Kind      string     `yaml:"kind"`
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  *Vec3Spec  `yaml:"position"`
	Target    *Vec3Spec  `yaml:"target"`
	Angle     float64    `yaml:"angle"`
	Orbit     *OrbitSpec `yaml:"orbit"`
}

// OrbitSpec circles a light around its position. Radius sets both axes;
// RadiusX and RadiusZ override it per axis.
type OrbitSpec struct {
	Radius  float64 `yaml:"radius"`
	RadiusX float64 `yaml:"radius_x"`
	RadiusZ float64 `yaml:"radius_z"`
	Speed   float64 `yaml:"speed"`
	Phase   float64 `yaml:"phase"`
}

type StyleSpec struct {
	Shape     string     `yaml:"shape"`
	Size      float64    `yaml:"size"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Color     *YAMLColor `yaml:"color"`
	Emissive  *YAMLColor `yaml:"emissive"`
	Metalness float64    `yaml:"metalness"`
	Roughness float64    `yaml:"roughness"`
	Opacity   float64    `yaml:"opacity"`
}

type CanvasSpec struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type FloatSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
	Tilt      float64 `yaml:"tilt"`
	Turn      float64 `yaml:"turn"`
}

// ItemSpec is one labeled object. Canvas scenes read X/Y/W/H and Kind; field
// scenes read the style, model and motion overrides.
type ItemSpec struct {
	Label       string     `yaml:"label"`
	Route       string     `yaml:"route"`
	Interactive *bool      `yaml:"interactive"`
	Model       string     `yaml:"model"`
	Position    *Vec3Spec  `yaml:"position"`
	Float       *FloatSpec `yaml:"float"`
	Style       StyleSpec  `yaml:",inline"`

	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// IsInteractive reports whether the item takes part in hit tests. Items
// default to interactive unless they are explicitly marked otherwise.
func (i ItemSpec) IsInteractive() bool {
	if i.Interactive == nil {
		return true
	}
	return *i.Interactive
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadScene reads, validates and decodes a scene file. A bare name such as
// "shapes" resolves to "scenes/shapes.yaml".
func LoadScene(name string) (*SceneSpec, error) {
	filename := sceneFile(name)
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(strings.TrimPrefix(filename, "scenes/"), ".yaml")
	}
	return spec, nil
}

// ParseScene validates data against the scene schema and decodes it.
func ParseScene(data []byte) (*SceneSpec, error) {
	if err := ValidateScene(data); err != nil {
		return nil, err
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if spec.Variant == "" {
		spec.Variant = VariantField
	}
	return &spec, nil
}

func sceneFile(name string) string {
	clean := cleanPrefabPath(name)
	if !strings.Contains(clean, "/") {
		clean = "scenes/" + clean
	}
	if !isSpecFile(clean) {
		clean += ".yaml"
	}
	return clean
}

type PageSpec struct {
	Route string   `yaml:"route"`
	Title string   `yaml:"title"`
	Body  []string `yaml:"body"`
	Links []string `yaml:"links"`
}

type pagesFile struct {
	Pages []PageSpec `yaml:"pages"`
}

func LoadPages() ([]PageSpec, error) {
	spec, err := LoadSpec[pagesFile]("pages.yaml")
	if err != nil {
		return nil, err
	}
	return spec.Pages, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// NRGBA returns the color, or fallback when none was given.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}
