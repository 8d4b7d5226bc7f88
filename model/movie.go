package model

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	Id           string  `json:"_id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	Language     string  `json:"original_language"`
	Tagline      string  `json:"tagline"`
	Genres       []Genre `json:"genres"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Runtime      int     `json:"runtime"`
}

// GenreNames returns at most limit genre names in their listed order.
// A non-positive limit returns all of them.
func (m Movie) GenreNames(limit int) []string {
	names := make([]string, 0, len(m.Genres))
	for _, genre := range m.Genres {
		if limit > 0 && len(names) >= limit {
			break
		}
		names = append(names, genre.Name)
	}
	return names
}
