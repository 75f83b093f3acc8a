// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import "github.com/MKhiriev/movie-catalog/models"

type sampleActor struct {
	firstName  string
	lastName   string
	nickName   string
	birthdate  string
	popularity float64
}

// sampleCast references movies and actors by their index in sampleMovies and
// sampleActors.
type sampleCast struct {
	movie      int
	actor      int
	role       string
	characters []string
}

func sampleMovies() []models.CreateMovieRequest {
	return []models.CreateMovieRequest{
		{
			Title:          "Inception",
			ReleaseDate:    "2010-07-16",
			Genres:         []string{"Sci-Fi", "Action", "Thriller"},
			Duration:       148,
			Trending:       true,
			Rating:         rating(8.8),
			Description:    "A mind-bending thriller about dreams",
			Classification: "PG-13",
		},
		{
			Title:          "The Dark Knight",
			ReleaseDate:    "2008-07-18",
			Genres:         []string{"Action", "Crime", "Drama"},
			Duration:       152,
			Trending:       true,
			Rating:         rating(9.0),
			Description:    "Batman faces the Joker in this epic crime thriller",
			Classification: "PG-13",
		},
		{
			Title:          "Interstellar",
			ReleaseDate:    "2014-11-07",
			Genres:         []string{"Science Fiction", "Drama", "Adventure"},
			Duration:       169,
			Trending:       false,
			Rating:         rating(8.6),
			Description:    "A team of explorers travel through a wormhole in space",
			Classification: "PG-13",
		},
	}
}

var sampleActors = []sampleActor{
	{"Leonardo", "DiCaprio", "Leo", "1974-11-11", 95.5},
	{"Cillian", "Murphy", "Cillian", "1976-05-25", 85.2},
	{"Joseph", "Gordon-Levitt", "Joe", "1981-02-17", 82.3},
	{"Tom", "Hardy", "Tom", "1977-09-15", 88.7},
	{"Christian", "Bale", "", "1974-01-30", 92.1},
	{"Heath", "Ledger", "", "1979-04-04", 90.0},
	{"Gary", "Oldman", "", "1958-03-21", 87.5},
	{"Aaron", "Eckhart", "", "1968-03-12", 75.8},
	{"Matthew", "McConaughey", "Matt", "1969-11-04", 89.3},
	{"Anne", "Hathaway", "", "1982-11-12", 86.4},
	{"Jessica", "Chastain", "", "1977-03-24", 84.6},
	{"Timothee", "Chalamet", "", "1995-12-27", 91.2},
}

var sampleCastEntries = []sampleCast{
	{0, 0, "Lead", []string{"Dom Cobb"}},
	{0, 1, "Support", []string{"Robert Fisher"}},
	{0, 2, "Support", []string{"Arthur"}},
	{0, 3, "Support", []string{"Eames"}},
	{1, 4, "Lead", []string{"Bruce Wayne", "Batman"}},
	{1, 5, "Antagonist", []string{"Joker"}},
	{1, 6, "Support", []string{"James Gordon"}},
	{1, 7, "Antagonist", []string{"Harvey Dent", "Two-Face"}},
	{2, 8, "Lead", []string{"Joseph Cooper"}},
	{2, 9, "Support", []string{"Amelia Brand"}},
	{2, 10, "Support", []string{"Murph Cooper"}},
	{2, 11, "Support", []string{"Tom Cooper"}},
}

func (a sampleActor) request() models.CreateActorRequest {
	popularity := a.popularity
	return models.CreateActorRequest{
		FirstName:  a.firstName,
		LastName:   a.lastName,
		NickName:   a.nickName,
		Birthdate:  a.birthdate,
		Popularity: &popularity,
	}
}

func rating(v float64) *float64 { return &v }
