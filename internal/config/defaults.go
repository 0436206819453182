package config

// DefaultGames returns the built-in game definitions written by "snack init".
func DefaultGames() []GameConfig {
	return []GameConfig{
		{
			Name:        "animal",
			Title:       "Guess the Animal",
			Description: "A daily animal from class, weight, lifespan, diet and range.",
			Dataset:     "animals.json",
			Attributes: []AttributeConfig{
				{Name: "class", Label: "Class", Kind: "categorical"},
				{Name: "weight", Label: "Weight", Kind: "numeric", Unit: "kg"},
				{Name: "lifespan", Label: "Lifespan", Kind: "numeric", Unit: "yr"},
				{Name: "diet", Label: "Diet", Kind: "categorical"},
				{Name: "continents", Label: "Continents", Kind: "set"},
				{Name: "domesticated", Label: "Domesticated", Kind: "boolean"},
			},
		},
		{
			Name:        "movie",
			Title:       "Guess the Movie",
			Description: "A daily film from genre, year, runtime, rating and cast.",
			Dataset:     "movies.json",
			Identity:    "title",
			Attributes: []AttributeConfig{
				{Name: "genres", Label: "Genres", Kind: "set"},
				{Name: "year", Label: "Year", Kind: "numeric", Field: "releaseYear"},
				{Name: "runtime", Label: "Runtime", Kind: "numeric", Field: "runtimeMinutes", Unit: "min"},
				{Name: "rating", Label: "IMDb", Kind: "numeric", Field: "imdbRating"},
				{Name: "country", Label: "Country", Kind: "categorical"},
				{Name: "cast", Label: "Cast", Kind: "set"},
			},
			Import: &ImportConfig{
				ListSeparator:  "|",
				DifficultyFrom: "rating",
				EasyAt:         8,
				MediumAt:       7,
			},
		},
		{
			Name:        "tennis",
			Title:       "Guess the Tennis Player",
			Description: "A daily player from ranking, titles and playing style.",
			Dataset:     "tennis.js",
			Attributes: []AttributeConfig{
				{Name: "nationality", Label: "Country", Kind: "categorical"},
				{Name: "hand", Label: "Hand", Kind: "categorical"},
				{Name: "backhand", Label: "Backhand", Kind: "categorical"},
				{Name: "ranking", Label: "Ranking", Kind: "numeric_inverted", Field: "currentRanking"},
				{Name: "bestRanking", Label: "Best", Kind: "numeric_inverted", Field: "highestRanking"},
				{Name: "slams", Label: "Slams", Kind: "numeric", Field: "grandSlamTitles"},
				{Name: "titles", Label: "Titles", Kind: "numeric", Field: "careerTitles"},
				{Name: "turnedPro", Label: "Turned pro", Kind: "numeric"},
			},
		},
		{
			Name:        "book",
			Title:       "Guess the Book",
			Description: "A daily book from author, genre, year and length.",
			Dataset:     "books.json",
			Identity:    "title",
			Attributes: []AttributeConfig{
				{Name: "author", Label: "Author", Kind: "categorical"},
				{Name: "authorNationality", Label: "Nationality", Kind: "categorical"},
				{Name: "genre", Label: "Genre", Kind: "categorical"},
				{Name: "year", Label: "Year", Kind: "numeric", Field: "publicationYear"},
				{Name: "pages", Label: "Pages", Kind: "numeric", Field: "pageCount"},
				{Name: "language", Label: "Language", Kind: "categorical", Field: "originalLanguage"},
			},
		},
		{
			Name:        "music",
			Title:       "Blind Test",
			Description: "A daily match of songs from artist, genre, decade and language.",
			Dataset:     "music.json",
			Identity:    "songName",
			MatchSize:   5,
			Attributes: []AttributeConfig{
				{Name: "artist", Label: "Artist", Kind: "categorical", Field: "artistName"},
				{Name: "genre", Label: "Genre", Kind: "categorical"},
				{Name: "decade", Label: "Decade", Kind: "numeric", Field: "releaseDecade"},
				{Name: "duration", Label: "Duration", Kind: "numeric", Unit: "s"},
				{Name: "country", Label: "Country", Kind: "set", Field: "artistCountry"},
				{Name: "members", Label: "Members", Kind: "numeric", Field: "groupMembers"},
				{Name: "language", Label: "Language", Kind: "set"},
			},
		},
		{
			Name:        "f1",
			Title:       "Guess the F1 Driver",
			Description: "A daily driver from nationality, titles, wins and teams.",
			Dataset:     "f1.json",
			Attributes: []AttributeConfig{
				{Name: "nationality", Label: "Nationality", Kind: "categorical"},
				{Name: "championships", Label: "Titles", Kind: "numeric", Field: "worldChampionships"},
				{Name: "wins", Label: "Wins", Kind: "numeric"},
				{Name: "podiums", Label: "Podiums", Kind: "numeric"},
				{Name: "firstSeason", Label: "Debut", Kind: "numeric"},
				{Name: "teams", Label: "Teams", Kind: "set", Field: "teamsHistory"},
			},
			Import: &ImportConfig{ListSeparator: "|"},
		},
	}
}
