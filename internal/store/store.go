package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robolab/roboscene/internal/spatial"
	"github.com/robolab/roboscene/internal/vistree"
)

// Store keeps recorded animation clips under a data directory, one
// subdirectory per recording: metadata.json plus a trajectory CSV of the
// per-frame transform writes.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RecordingMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	FPS       int       `json:"fps"`
	Frames    int       `json:"frames"`
	Objects   []string  `json:"objects"`
}

// TrajectoryPoint is one object's position at one frame.
type TrajectoryPoint struct {
	Frame int
	Path  string
	Pos   spatial.Vec3
}

// Save persists a recorded clip and returns its recording id.
func (s *Store) Save(name, preset string, objects []string, clip *vistree.Clip) (string, error) {
	recID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	recDir := filepath.Join(s.baseDir, recID)

	if err := os.MkdirAll(recDir, 0755); err != nil {
		return "", err
	}

	meta := RecordingMeta{
		ID:        recID,
		Name:      name,
		Preset:    preset,
		Timestamp: time.Now(),
		FPS:       clip.FPS,
		Frames:    clip.Len(),
		Objects:   objects,
	}

	metaFile, err := os.Create(filepath.Join(recDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(recDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "path", "x", "y", "z"}); err != nil {
		return "", err
	}
	for _, frame := range clip.Frames() {
		for _, write := range frame.Writes() {
			if write.Op != vistree.OpTransform {
				continue
			}
			p := write.Transform.Pos()
			row := []string{
				strconv.Itoa(frame.Index),
				write.Path,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return recID, nil
}

func (s *Store) List() ([]RecordingMeta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMeta{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMeta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RecordingMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		recs = append(recs, meta)
	}
	return recs, nil
}

func (s *Store) Load(recID string) (*RecordingMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, recID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RecordingMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back the per-frame positions of one recording,
// optionally filtered to a single object path ("" keeps everything).
func (s *Store) LoadTrajectory(recID, path string) ([]TrajectoryPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, recID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]TrajectoryPoint, 0, len(records))
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) != 5 {
			continue
		}
		if path != "" && rec[1] != path {
			continue
		}
		frame, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(rec[2], 64)
		y, errY := strconv.ParseFloat(rec[3], 64)
		z, errZ := strconv.ParseFloat(rec[4], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		points = append(points, TrajectoryPoint{Frame: frame, Path: rec[1], Pos: spatial.Vec3{X: x, Y: y, Z: z}})
	}
	return points, nil
}
