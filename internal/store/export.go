package store

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the JSON export shape for one recording.
type ExportData struct {
	Meta       RecordingMeta       `json:"meta"`
	Trajectory []ExportedTrajPoint `json:"trajectory"`
}

type ExportedTrajPoint struct {
	Frame int        `json:"frame"`
	Path  string     `json:"path"`
	Pos   [3]float64 `json:"pos"`
}

// Export writes a recording's metadata and trajectory as indented JSON.
func (s *Store) Export(recID string, w io.Writer) error {
	meta, err := s.Load(recID)
	if err != nil {
		return err
	}
	points, err := s.LoadTrajectory(recID, "")
	if err != nil {
		return err
	}

	data := ExportData{Meta: *meta, Trajectory: make([]ExportedTrajPoint, len(points))}
	for i, p := range points {
		data.Trajectory[i] = ExportedTrajPoint{
			Frame: p.Frame,
			Path:  p.Path,
			Pos:   [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportStdout writes the recording export to standard output.
func (s *Store) ExportStdout(recID string) error {
	return s.Export(recID, os.Stdout)
}
