// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/movie-catalog/models"
)

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, email, password, COALESCE(first_name, ''), COALESCE(last_name, ''), role, created_at, updated_at`

	createUser = `INSERT INTO users (email, password, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUserRole = `UPDATE users
    SET role = $2, updated_at = now()
    WHERE email = $1
    RETURNING ` + userColumns + `;`
)

var movieColumns = []string{
	"id",
	"title",
	"release_date",
	"genres",
	"duration",
	"trending",
	"rating",
	"COALESCE(image_url, '')",
	"COALESCE(description, '')",
	"COALESCE(clasification, '')",
	"tmdb_id",
	"created_at",
	"updated_at",
}

var (
	movieReturning = strings.Join(movieColumns, ", ")

	createMovie = `INSERT INTO movies (title, release_date, genres, duration, trending, rating, image_url, description, clasification, tmdb_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + movieReturning + `;`

	listMovies = `SELECT ` + movieReturning + `
    FROM movies
    ORDER BY created_at DESC, id DESC;`

	findMovieByID = `SELECT ` + movieReturning + `
    FROM movies
    WHERE id = $1;`
)

const deleteMovie = `DELETE FROM movies WHERE id = $1;`

var actorColumns = []string{
	"id",
	"COALESCE(first_name, '')",
	"COALESCE(last_name, '')",
	"COALESCE(nick_name, '')",
	"birthdate",
	"popularity",
	"COALESCE(profile_image, '')",
	`COALESCE("character", '')`,
	"tmdb_id",
	"created_at",
	"updated_at",
}

var (
	actorReturning = strings.Join(actorColumns, ", ")

	createActor = `INSERT INTO actors (first_name, last_name, nick_name, birthdate, popularity, profile_image, "character", tmdb_id)
    VALUES ($1, $2, $3, $4, COALESCE($5, 0), $6, $7, $8)
    RETURNING ` + actorReturning + `;`

	listActors = `SELECT ` + actorReturning + `
    FROM actors
    ORDER BY id;`

	findActorByID = `SELECT ` + actorReturning + `
    FROM actors
    WHERE id = $1;`
)

const deleteActor = `DELETE FROM actors WHERE id = $1;`

const (
	castColumns = `id, movie_id, actor_id, role, characters, created_at, updated_at`

	createCastEntry = `INSERT INTO "cast" (movie_id, actor_id, role, characters)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + castColumns + `;`

	listMovieCast = `SELECT c.id, c.movie_id, c.actor_id, c.role, c.characters, c.created_at, c.updated_at,
        a.id, COALESCE(a.first_name, ''), COALESCE(a.last_name, ''), COALESCE(a.nick_name, ''), a.birthdate, a.popularity,
        COALESCE(a.profile_image, ''), COALESCE(a."character", ''), a.tmdb_id, a.created_at, a.updated_at
    FROM "cast" c
    JOIN actors a ON a.id = c.actor_id
    WHERE c.movie_id = $1
    ORDER BY c.id;`

	deleteCastEntry = `DELETE FROM "cast" WHERE id = $1;`
)

// buildSearchMoviesQuery selects one page of movies whose title or
// description contains search.Query, case-insensitively, newest first.
func buildSearchMoviesQuery(search models.MovieSearch) (string, []any, error) {
	if search.Limit < 0 || search.Offset < 0 {
		return "", nil, fmt.Errorf("%w: negative limit or offset", ErrBuildingSQLQuery)
	}

	query := psql.Select(movieColumns...).
		From("movies").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(search.Limit)).
		Offset(uint64(search.Offset))

	if search.Query != "" {
		query = query.Where(searchCondition(search.Query))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

// buildCountMoviesQuery counts all movies matching search.Query.
func buildCountMoviesQuery(search models.MovieSearch) (string, []any, error) {
	query := psql.Select("COUNT(*)").From("movies")

	if search.Query != "" {
		query = query.Where(searchCondition(search.Query))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

func searchCondition(text string) sq.Sqlizer {
	pattern := "%" + escapeLike(text) + "%"
	return sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"description": pattern},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildUpdateMovieQuery sets only the fields present in update and returns
// the updated row.
func buildUpdateMovieQuery(movieID int64, update models.UpdateMovieRequest) (string, []any, error) {
	set := make(map[string]any, 11)

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.ReleaseDate != nil {
		releaseDate, err := models.ParseDate(*update.ReleaseDate)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		set["release_date"] = releaseDate
	}
	if update.Genres != nil {
		set["genres"] = models.StringList(*update.Genres)
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Trending != nil {
		set["trending"] = *update.Trending
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.ImageURL != nil {
		set["image_url"] = nullString(*update.ImageURL)
	}
	if update.Description != nil {
		set["description"] = nullString(*update.Description)
	}
	if update.Classification != nil {
		set["clasification"] = nullString(*update.Classification)
	}
	if update.TmdbID != nil {
		set["tmdb_id"] = *update.TmdbID
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}
	set["updated_at"] = sq.Expr("now()")

	sqlQuery, args, err := psql.Update("movies").
		SetMap(set).
		Where(sq.Eq{"id": movieID}).
		Suffix("RETURNING " + movieReturning).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

// buildUpdateActorQuery sets only the fields present in update and returns
// the updated row.
func buildUpdateActorQuery(actorID int64, update models.UpdateActorRequest) (string, []any, error) {
	set := make(map[string]any, 9)

	if update.FirstName != nil {
		set["first_name"] = nullString(*update.FirstName)
	}
	if update.LastName != nil {
		set["last_name"] = nullString(*update.LastName)
	}
	if update.NickName != nil {
		set["nick_name"] = nullString(*update.NickName)
	}
	if update.Birthdate != nil {
		birthdate, err := models.ParseDate(*update.Birthdate)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		set["birthdate"] = birthdate
	}
	if update.Popularity != nil {
		set["popularity"] = *update.Popularity
	}
	if update.ProfileImage != nil {
		set["profile_image"] = nullString(*update.ProfileImage)
	}
	if update.Character != nil {
		set[`"character"`] = nullString(*update.Character)
	}
	if update.TmdbID != nil {
		set["tmdb_id"] = *update.TmdbID
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}
	set["updated_at"] = sq.Expr("now()")

	sqlQuery, args, err := psql.Update("actors").
		SetMap(set).
		Where(sq.Eq{"id": actorID}).
		Suffix("RETURNING " + actorReturning).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}
