package cache

import (
	"encoding/json"
	"fmt"
	"route-sketch-service/internal/domain"
)

// entry is the serialized form of a RouteResult. Every backend stores this shape.
type entry struct {
	Path          [][2]float64 `json:"path"`
	TotalDistance float64      `json:"total_distance"`
}

func encodeEntry(r domain.RouteResult) ([]byte, error) {
	e := entry{Path: make([][2]float64, 0, len(r.Path)), TotalDistance: r.TotalDistance}
	for _, p := range r.Path {
		e.Path = append(e.Path, [2]float64{p.X, p.Y})
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode route entry: %w", err)
	}
	return b, nil
}

func decodeEntry(b []byte) (domain.RouteResult, error) {
	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return domain.RouteResult{}, fmt.Errorf("decode route entry: %w", err)
	}
	path := make(domain.Route, 0, len(e.Path))
	for _, p := range e.Path {
		path = append(path, domain.Point{X: p[0], Y: p[1]})
	}
	return domain.RouteResult{Path: path, TotalDistance: e.TotalDistance}, nil
}
