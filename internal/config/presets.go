package config

import "sort"

// Presets are the built-in demo scenes.
var Presets = map[string]*Config{
	"orbits": {
		Name: "orbits", FPS: 30, Duration: 12,
		Background: BackgroundConfig{Top: [3]float64{1, 1, 1}, Bottom: [3]float64{0.9, 0.9, 1}},
		Camera:     CameraConfig{Pos: [3]float64{4, 3, 6}, Zoom: 1},
		Objects: []ObjectConfig{
			{
				Name: "sun", Shape: "sphere", Radius: 0.5, Color: [3]float64{1, 0.8, 0.1},
				Motion: MotionConfig{Type: "spin", Omega: 0.5},
			},
			{
				Name: "planet", Shape: "sphere", Radius: 0.2, Color: [3]float64{0.2, 0.4, 0.9},
				Motion: MotionConfig{Type: "orbit", Radius: 2, Omega: 0.8},
			},
			{
				Name: "moon", Shape: "sphere", Radius: 0.08, Color: [3]float64{0.7, 0.7, 0.7},
				Motion: MotionConfig{Type: "orbit", Radius: 2.6, Omega: 1.9},
			},
		},
	},
	"pendulum": {
		Name: "pendulum", FPS: 60, Duration: 10,
		Background: BackgroundConfig{Top: [3]float64{1, 1, 1}, Bottom: [3]float64{1, 1, 1}},
		Camera:     CameraConfig{Pos: [3]float64{0, 1, 6}, LookAt: [3]float64{0, 1, 0}, Zoom: 1},
		Objects: []ObjectConfig{
			{
				Name: "pivot", Shape: "box", Size: [3]float64{0.2, 0.2, 0.2},
				Color: [3]float64{0.3, 0.3, 0.3}, Pos: [3]float64{0, 3, 0},
			},
			{
				Name: "bob", Shape: "sphere", Radius: 0.25, Color: [3]float64{0.8, 0.2, 0.2},
				Motion: MotionConfig{Type: "swing", Pivot: [3]float64{0, 3, 0}, Length: 2, Swing: 0.9, Omega: 2.2},
			},
		},
	},
	"weave": {
		Name: "weave", FPS: 30, Duration: 20,
		Background: BackgroundConfig{Top: [3]float64{1, 1, 1}, Bottom: [3]float64{0.95, 0.95, 0.95}},
		Camera:     CameraConfig{Pos: [3]float64{5, 4, 8}, Zoom: 1.2},
		Objects: []ObjectConfig{
			{
				Name: "a", Shape: "cylinder", Radius: 0.15, Height: 0.6, Color: [3]float64{0.2, 0.8, 0.4},
				Motion: MotionConfig{Type: "lissajous", Amp: [3]float64{2, 1, 0}, Freq: [3]float64{1, 2, 0}},
			},
			{
				Name: "b", Shape: "cylinder", Radius: 0.15, Height: 0.6, Color: [3]float64{0.8, 0.4, 0.2},
				Motion: MotionConfig{Type: "lissajous", Amp: [3]float64{1, 2, 1}, Freq: [3]float64{3, 1, 2}},
			},
			{
				Name: "crate", Shape: "box", Size: [3]float64{0.8, 0.8, 0.8}, Color: [3]float64{0.4, 0.4, 0.8},
				Motion: MotionConfig{Type: "spin", Omega: 1.5},
			},
		},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
