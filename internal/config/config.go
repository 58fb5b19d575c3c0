package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS      = 30
	DefaultDuration = 10.0
	DefaultZoom     = 1.0
)

// Config describes a demo scene: viewer setup, camera, and the objects with
// their motions.
type Config struct {
	Name       string           `yaml:"name"`
	FPS        int              `yaml:"fps"`
	Duration   float64          `yaml:"duration"`
	Strict     bool             `yaml:"strict"`
	Background BackgroundConfig `yaml:"background"`
	Camera     CameraConfig     `yaml:"camera"`
	Objects    []ObjectConfig   `yaml:"objects"`
}

type BackgroundConfig struct {
	Top    [3]float64 `yaml:"top"`
	Bottom [3]float64 `yaml:"bottom"`
}

type CameraConfig struct {
	Pos    [3]float64 `yaml:"pos"`
	LookAt [3]float64 `yaml:"look_at"`
	Zoom   float64    `yaml:"zoom"`
}

type ObjectConfig struct {
	Name    string       `yaml:"name"`
	Shape   string       `yaml:"shape"` // box, sphere, cylinder
	Size    [3]float64   `yaml:"size"`  // box edge lengths
	Radius  float64      `yaml:"radius"`
	Height  float64      `yaml:"height"`
	Color   [3]float64   `yaml:"color"`
	Opacity float64      `yaml:"opacity"`
	Pos     [3]float64   `yaml:"pos"`
	Motion  MotionConfig `yaml:"motion"`
}

type MotionConfig struct {
	Type   string     `yaml:"type"` // none, orbit, spin, lissajous, swing
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
	Omega  float64    `yaml:"omega"`
	Amp    [3]float64 `yaml:"amp"`
	Freq   [3]float64 `yaml:"freq"`
	Pivot  [3]float64 `yaml:"pivot"`
	Length float64    `yaml:"length"`
	Swing  float64    `yaml:"swing"` // peak deflection, rad
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "default",
		FPS:      DefaultFPS,
		Duration: DefaultDuration,
		Background: BackgroundConfig{
			Top:    [3]float64{1, 1, 1},
			Bottom: [3]float64{1, 1, 1},
		},
		Camera: CameraConfig{
			Pos:  [3]float64{3, 2, 5},
			Zoom: DefaultZoom,
		},
		Objects: []ObjectConfig{
			{
				Name: "ball", Shape: "sphere", Radius: 0.3,
				Color:  [3]float64{0.9, 0.3, 0.2},
				Motion: MotionConfig{Type: "orbit", Radius: 1.5, Omega: 1.2},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Objects = nil // a file's object list replaces, never extends
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	for i, o := range c.Objects {
		switch o.Shape {
		case "box", "sphere", "cylinder":
		default:
			return fmt.Errorf("object %d (%q): unknown shape %q", i, o.Name, o.Shape)
		}
		switch o.Motion.Type {
		case "", "none", "orbit", "spin", "lissajous", "swing":
		default:
			return fmt.Errorf("object %d (%q): unknown motion %q", i, o.Name, o.Motion.Type)
		}
	}
	return nil
}
