package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/godoku/internal/domain"
	"svw.info/godoku/internal/infrastructure/csvio"
	"svw.info/godoku/internal/ports"
	"svw.info/godoku/internal/solver"
	"svw.info/godoku/internal/usecase"
	"svw.info/godoku/internal/validator"
)

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// NewRootCommand builds the godoku command: read a CSV puzzle, solve it,
// and write solution_<name> beside the input.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		levelStr   string
		solverKind string
		profiling  bool
	)

	cmd := &cobra.Command{
		Use:          "godoku [flags] <puzzle.csv>",
		Short:        "Solves CSV grid puzzles by constraint propagation and search",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(levelStr)
			if profiling {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			var s ports.Solver
			switch strings.ToLower(strings.TrimSpace(solverKind)) {
			case "backtrack", "backtracking":
				s = solver.NewBacktrackingSolver()
			default:
				s = solver.NewConstraintSolver()
			}

			svc := usecase.NewService(s, validator.New(), csvio.NewReader(), csvio.NewWriter())
			res, err := svc.Run(cmd.Context(), args[0])

			if verbose && res != nil && res.Input != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "The initial configuration of the puzzle:")
				fmt.Fprintln(cmd.OutOrStdout(), res.Input)
			}
			if err != nil {
				if errors.Is(err, domain.ErrNoSolution) {
					logger.Info("search exhausted", "nodes", res.Stats.Nodes, "dur", res.Stats.Duration)
					fmt.Fprintln(cmd.OutOrStdout(), "No solution was found for the given puzzle.")
					return nil
				}
				return err
			}

			logger.Info("solved", "size", res.Input.Size, "nodes", res.Stats.Nodes,
				"dur", res.Stats.Duration, "out", res.Path)
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), "The final configuration of the puzzle:")
				fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The solver has completed. Please find the solution in %s\n", res.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the grid before and after solving")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&solverKind, "solver", "propagate", "solver to use: propagate|backtrack")
	cmd.Flags().BoolVar(&profiling, "profile", false, "write a CPU profile of the run")
	return cmd
}
