// Package landmark defines the map hotspots and their design-space geometry.
package landmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"manhattan-map/pkg/geometry"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Design space dimensions. Landmark boxes are authored against a map image
// of exactly this size.
const (
	DesignWidth  = 1000
	DesignHeight = 1019
)

// Landmark is a clickable hotspot on the map.
type Landmark struct {
	ID        string  `json:"id" yaml:"id"`
	Title     string  `json:"title" yaml:"title"`
	NavTarget string  `json:"navTarget" yaml:"navTarget"`
	Image     string  `json:"image" yaml:"image"`
	Tooltip   string  `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	WikiURL   string  `json:"wikiUrl,omitempty" yaml:"wikiUrl,omitempty"`
	Left      float64 `json:"left" yaml:"left"`
	Top       float64 `json:"top" yaml:"top"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
}

// Box returns the landmark's rectangle in design space.
func (l Landmark) Box() geometry.Rect {
	return geometry.NewRect(l.Left, l.Top, l.Width, l.Height)
}

// Label returns the tooltip text, falling back to the title.
func (l Landmark) Label() string {
	if l.Tooltip != "" {
		return l.Tooltip
	}
	return l.Title
}

// Defaults returns the built-in Manhattan landmarks.
func Defaults() []Landmark {
	return []Landmark{
		{
			ID:        "empire-state",
			Title:     "Empire State Building",
			NavTarget: "about",
			Image:     "map_images/Empire State Building.png",
			WikiURL:   "https://en.wikipedia.org/wiki/Empire_State_Building",
			Left:      630,
			Top:       127,
			Width:     98,
			Height:    266,
		},
		{
			ID:        "one-wtc",
			Title:     "One World Trade Center",
			NavTarget: "misc",
			Image:     "map_images/One World Trade.png",
			WikiURL:   "https://en.wikipedia.org/wiki/One_World_Trade_Center",
			Left:      283.11,
			Top:       564.94,
			Width:     100.29,
			Height:    313.57,
		},
		{
			ID:        "statue-liberty",
			Title:     "Statue of Liberty",
			NavTarget: "xg",
			Image:     "map_images/Statue of Liberty.png",
			WikiURL:   "https://en.wikipedia.org/wiki/Statue_of_Liberty",
			Left:      24,
			Top:       865,
			Width:     115,
			Height:    154,
		},
		{
			ID:        "clock",
			Title:     "Grand Central Clock",
			NavTarget: "projects",
			Image:     "map_images/Grand Central Clock.png",
			WikiURL:   "https://en.wikipedia.org/wiki/Grand_Central_Terminal",
			Left:      870.9,
			Top:       266.6,
			Width:     55.86,
			Height:    97.75,
		},
		{
			ID:        "walker-tower",
			Title:     "Walker Tower",
			NavTarget: "contact",
			Image:     "map_images/Walker Tower.png",
			WikiURL:   "https://en.wikipedia.org/wiki/Walker_Tower",
			Left:      398.63,
			Top:       276.76,
			Width:     64.75,
			Height:    139.65,
		},
	}
}

type file struct {
	Landmarks []Landmark `json:"landmarks" yaml:"landmarks"`
}

// Load reads landmarks from a YAML (.yaml, .yml) or JSON file.
// Entries are not validated; a malformed box simply renders in the wrong place.
func Load(path string) ([]Landmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read landmarks: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = sonic.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("landmarks %s: unsupported file type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse landmarks %s: %w", path, err)
	}
	return f.Landmarks, nil
}

// LoadOrDefault loads landmarks from path, or returns Defaults when path is empty.
func LoadOrDefault(path string) ([]Landmark, error) {
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

// Index provides lookups over an immutable landmark list.
type Index struct {
	all   []Landmark
	byID  map[string]int
	byNav map[string]int
}

// NewIndex builds an index. On duplicate keys the first entry wins.
func NewIndex(landmarks []Landmark) *Index {
	idx := &Index{
		all:   append([]Landmark(nil), landmarks...),
		byID:  make(map[string]int, len(landmarks)),
		byNav: make(map[string]int, len(landmarks)),
	}
	for i, l := range idx.all {
		if _, ok := idx.byID[l.ID]; !ok {
			idx.byID[l.ID] = i
		}
		if _, ok := idx.byNav[l.NavTarget]; !ok {
			idx.byNav[l.NavTarget] = i
		}
	}
	return idx
}

// All returns a copy of the landmarks in authored order.
func (idx *Index) All() []Landmark {
	return append([]Landmark(nil), idx.all...)
}

// Len returns the number of landmarks.
func (idx *Index) Len() int {
	return len(idx.all)
}

// ByID returns the landmark with the given id.
func (idx *Index) ByID(id string) (Landmark, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return Landmark{}, false
	}
	return idx.all[i], true
}

// ByNavTarget returns the landmark linked to a navigation target.
func (idx *Index) ByNavTarget(target string) (Landmark, bool) {
	i, ok := idx.byNav[target]
	if !ok {
		return Landmark{}, false
	}
	return idx.all[i], true
}

// Duplicates returns ids and nav targets that appear more than once.
func (idx *Index) Duplicates() []string {
	var dups []string
	if len(idx.byID) != len(idx.all) {
		seen := map[string]bool{}
		for _, l := range idx.all {
			if seen["id:"+l.ID] {
				dups = append(dups, "id:"+l.ID)
			}
			seen["id:"+l.ID] = true
		}
	}
	if len(idx.byNav) != len(idx.all) {
		seen := map[string]bool{}
		for _, l := range idx.all {
			if seen["nav:"+l.NavTarget] {
				dups = append(dups, "nav:"+l.NavTarget)
			}
			seen["nav:"+l.NavTarget] = true
		}
	}
	return dups
}
