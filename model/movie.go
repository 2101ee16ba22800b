package model

import (
	"slices"
	"strconv"
	"strings"
)

type Movie struct {
	Title    string   `json:"title"`
	Images   []string `json:"images"`
	Director string   `json:"director"`
	Year     int      `json:"year"`
	Genre    string   `json:"genre"`
	Actors   []string `json:"actors"`
	Rating   float64  `json:"rating"`
	Plot     string   `json:"plot"`
}

// PosterURL returns the first image of the movie, or "" when it has none.
func (m Movie) PosterURL() string {
	if len(m.Images) == 0 {
		return ""
	}
	return strings.TrimSpace(m.Images[0])
}

func (m Movie) ActorList() string {
	return strings.Join(m.Actors, ", ")
}

func (m Movie) RatingLabel() string {
	return strconv.FormatFloat(m.Rating, 'f', 1, 64)
}

func (m Movie) clone() Movie {
	m.Images = slices.Clone(m.Images)
	m.Actors = slices.Clone(m.Actors)
	return m
}

// GetMovies returns the built-in catalog in display order. Every call returns
// a fresh copy, so callers may modify the result freely.
func GetMovies() []Movie {
	out := make([]Movie, 0, len(catalog))
	for _, movie := range catalog {
		out = append(out, movie.clone())
	}
	return out
}
