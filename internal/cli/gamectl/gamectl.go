// Package gamectl implements the command-line consumer of the game library API.
package gamectl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"text/tabwriter"
	"time"

	"gamelibrary-backend/internal/client"
	"gamelibrary-backend/internal/config"
	"gamelibrary-backend/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type session struct {
	server  string
	timeout time.Duration
	verbose bool

	out    io.Writer
	logger *logrus.Logger
	api    *client.Client
}

// New returns the `gamectl` root command. The API client is built once from
// the persistent flags and shared by every subcommand.
func New(out io.Writer, logger *logrus.Logger) *cobra.Command {
	defaults := config.LoadClient()
	s := &session{out: out, logger: logger}

	root := &cobra.Command{
		Use:           "gamectl",
		Short:         "Manage the game library catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.verbose {
				s.logger.SetLevel(logrus.DebugLevel)
			}
			s.api = client.New(s.server, &http.Client{Timeout: s.timeout}, s.logger)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&s.server, "server", defaults.BaseURL, "game library API base URL")
	root.PersistentFlags().DurationVar(&s.timeout, "timeout", defaults.HTTPTimeout, "HTTP request timeout")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log every request")

	root.AddCommand(
		s.listCmd(),
		s.getCmd(),
		s.addCmd(),
		s.updateCmd(),
		s.deleteCmd(),
		s.genresCmd(),
	)
	return root
}

func (s *session) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.printGames(cmd.Context())
		},
	}
}

func (s *session) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one game as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			game, err := s.api.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(s.out)
			enc.SetIndent("", "  ")
			return enc.Encode(game)
		},
	}
}

// gameFlags are shared by add and update.
type gameFlags struct {
	name        string
	description string
	genreID     uint
	price       float64
	released    string
	image       string
	imageFile   string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "game name")
	cmd.Flags().StringVar(&f.description, "description", "", "game description")
	cmd.Flags().UintVar(&f.genreID, "genre-id", 0, "genre id (see `gamectl genres`)")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price")
	cmd.Flags().StringVar(&f.released, "released", "", "release date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.image, "image", "", "base64 encoded image")
	cmd.Flags().StringVar(&f.imageFile, "image-file", "", "image file to attach, base64 encoded on upload")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")
}

// apply copies every flag the user set onto game.
func (f *gameFlags) apply(cmd *cobra.Command, game *models.Game) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		game.Name = f.name
	}
	if changed("description") {
		game.Description = f.description
	}
	if changed("genre-id") {
		game.GenreID = f.genreID
	}
	if changed("price") {
		game.Price = f.price
	}
	if changed("released") {
		date, err := models.ParseDate(f.released)
		if err != nil {
			return fmt.Errorf("invalid --released: %w", err)
		}
		game.ReleasedDate = date
	}
	if changed("image") {
		game.Image = f.image
	}
	if changed("image-file") {
		encoded, err := client.EncodeImageFile(f.imageFile)
		if err != nil {
			return err
		}
		game.Image = encoded
	}
	return nil
}

func (s *session) addCmd() *cobra.Command {
	var flags gameFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			game := &models.Game{}
			if err := flags.apply(cmd, game); err != nil {
				return err
			}
			created, err := s.api.AddGame(cmd.Context(), game)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Product added: %d %s\n", created.ID, created.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (s *session) updateCmd() *cobra.Command {
	var flags gameFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a game; fields not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			game, err := s.api.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			game.Genre = nil
			if err := flags.apply(cmd, game); err != nil {
				return err
			}
			updated, err := s.api.UpdateGame(cmd.Context(), game)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Game updated: %d %s\n", updated.ID, updated.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (s *session) deleteCmd() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := s.api.DeleteGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, msg)
			if refresh {
				return s.printGames(cmd.Context())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "list the remaining games afterwards")
	return cmd
}

func (s *session) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genre reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genres, err := s.api.ListGenres(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, g := range genres {
				fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Name)
			}
			return w.Flush()
		},
	}
}

func (s *session) printGames(ctx context.Context) error {
	games, err := s.api.ListGames(ctx)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(s.out, "No games")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGENRE\tPRICE\tRELEASED")
	for _, g := range games {
		genre := strconv.FormatUint(uint64(g.GenreID), 10)
		if g.Genre != nil {
			genre = g.Genre.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", g.ID, g.Name, genre, g.Price, g.ReleasedDate)
	}
	return w.Flush()
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return uint(id), nil
}
