package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"quickshow-cli/format"
	"quickshow-cli/model"
	"quickshow-cli/service"
	"quickshow-cli/tui"
)

var seatsCmd = &cobra.Command{
	Use:   "seats [movie-id] [date]",
	Short: "Open the seat layout for a movie and date",
	Long:  `Open the seat layout page directly. Missing arguments are asked for interactively.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var movieID, date string
		if len(args) > 0 {
			movieID = args[0]
		}
		if len(args) > 1 {
			date = args[1]
		}

		if movieID == "" || date == "" {
			rt, err := setup()
			if err != nil {
				return err
			}
			movieID, date, err = promptSeatArgs(cmd.Context(), rt.source, movieID, date)
			rt.close()
			if err != nil {
				return err
			}
		}
		return runTUI(tui.Options{StartMovieID: movieID, StartDate: date})
	},
}

func promptSeatArgs(ctx context.Context, source service.Source, movieID, date string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if movieID == "" {
		movies, err := source.ListMovies(ctx)
		if err != nil {
			return "", "", err
		}
		if movieID, err = promptSelectMovie(movies); err != nil {
			return "", "", err
		}
	}
	if date == "" {
		show, err := source.FindShowByID(ctx, movieID)
		if err != nil {
			if service.IsNotFound(err) {
				// The seat page reports the missing show itself.
				return movieID, "", nil
			}
			return "", "", err
		}
		if date, err = promptSelectDate(show); err != nil {
			return "", "", err
		}
	}
	return movieID, date, nil
}

func promptSelectMovie(movies []model.Movie) (string, error) {
	if len(movies) == 0 {
		return "", errors.New("no movies are showing")
	}
	labels := make([]string, len(movies))
	for i, movie := range movies {
		labels[i] = movieLabel(movie)
	}

	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(labels[index]), strings.ToLower(strings.TrimSpace(input)))
	}

	selectMovie := promptui.Select{
		Label:    "Select Movie",
		Items:    labels,
		Size:     10,
		Searcher: searcher,
	}
	index, _, err := selectMovie.Run()
	if err != nil {
		return "", fmt.Errorf("select movie: %w", err)
	}
	return movies[index].Id, nil
}

func promptSelectDate(show model.Show) (string, error) {
	dates := show.Dates()
	if len(dates) == 0 {
		return "", fmt.Errorf("no showtimes for %q", show.Movie.Title)
	}

	selectDate := promptui.Select{
		Label: "Select Date",
		Items: dates,
		Size:  10,
	}
	_, date, err := selectDate.Run()
	if err != nil {
		return "", fmt.Errorf("select date: %w", err)
	}
	return date, nil
}

func movieLabel(movie model.Movie) string {
	if year := format.ReleaseYear(movie.ReleaseDate); year != "" {
		return fmt.Sprintf("%s (%s)", movie.Title, year)
	}
	return movie.Title
}
