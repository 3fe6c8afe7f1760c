package main

import (
	"fmt"
	"strconv"

	"github.com/ezBadminton/gobracket/badminton"
	"github.com/ezBadminton/gobracket/core"
	"github.com/ezBadminton/gobracket/internal/config"
	"github.com/ezBadminton/gobracket/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) engine(tournamentID string) *core.Engine {
	return core.NewEngine(logging.NewEvents(a.logger, tournamentID))
}

func (a *app) generateCmd() *cobra.Command {
	var teamsPath, tournamentID string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the bracket of a new tournament",
		Long: `Creates the bracket from a YAML list of exactly 10 teams in seed order:

  teams:
    - id: smash
      name: Smash Bros
    - name: Net Ninjas
    ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := config.LoadTeams(teamsPath)
			if err != nil {
				return err
			}

			if tournamentID == "" {
				tournamentID = uuid.NewString()
			}

			bracket, err := a.engine(tournamentID).Generate(teams)
			if err != nil {
				return err
			}

			if err := a.store.Save(cmd.Context(), tournamentID, bracket); err != nil {
				return err
			}

			a.logger.Info("Bracket generated",
				zap.String("tournament", tournamentID),
				zap.Int("matches", len(bracket.Matches)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), tournamentID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&teamsPath, "teams", "t", "teams.yaml", "team list in seed order")
	cmd.Flags().StringVar(&tournamentID, "id", "", "tournament ID (random when empty)")

	return cmd
}

func (a *app) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start TOURNAMENT MATCH",
		Short: "Mark a match as in progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tournamentID, matchID := args[0], args[1]

			bracket, err := a.store.Load(cmd.Context(), tournamentID)
			if err != nil {
				return err
			}

			bracket, err = a.engine(tournamentID).Start(bracket, matchID)
			if err != nil {
				return err
			}

			return a.store.Save(cmd.Context(), tournamentID, bracket)
		},
	}
}

func (a *app) advanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance TOURNAMENT MATCH SCORE1 SCORE2",
		Short: "Record the result of a match",
		Long: `Records the points of both slots of a match. The slot with more points
wins. The winner and the loser are moved to their next matches.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			tournamentID, matchID := args[0], args[1]

			points1, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[2], err)
			}
			points2, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[3], err)
			}

			score, err := badminton.NewGameScore(points1, points2, a.score)
			if err != nil {
				return fmt.Errorf("invalid score %v-%v: %w", points1, points2, err)
			}

			bracket, err := a.store.Load(cmd.Context(), tournamentID)
			if err != nil {
				return err
			}

			match, ok := bracket.Match(matchID)
			if !ok {
				return fmt.Errorf("%w: %v", core.ErrUnknownMatch, matchID)
			}
			winnerID, loserID := score.Result(match)

			if err := core.ValidateResult(bracket, matchID, winnerID, loserID); err != nil {
				return err
			}

			bracket = a.engine(tournamentID).Advance(
				bracket,
				matchID,
				winnerID,
				loserID,
				score.Points1,
				score.Points2,
			)

			if err := a.store.Save(cmd.Context(), tournamentID, bracket); err != nil {
				return err
			}

			m, _ := bracket.Match(matchID)
			return renderMatch(cmd.OutOrStdout(), bracket, m)
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TOURNAMENT",
		Short: "Print the rounds of a bracket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bracket, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderBracket(cmd.OutOrStdout(), bracket)
		},
	}
}

func (a *app) standingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings TOURNAMENT",
		Short: "Print the placements of the teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bracket, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderStandings(cmd.OutOrStdout(), bracket)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func (a *app) simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate TOURNAMENT",
		Short: "Play all open matches with the first slot winning",
		Long: `Plays every open match in routing order. The team in the first slot
wins each match without conceding a point. Useful for trying out a bracket.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tournamentID := args[0]

			bracket, err := a.store.Load(cmd.Context(), tournamentID)
			if err != nil {
				return err
			}
			if err := core.Validate(bracket); err != nil {
				return err
			}

			bracket, err = simulate(a.engine(tournamentID), bracket, badminton.MaxScore(a.score))
			if err != nil {
				return err
			}

			if err := a.store.Save(cmd.Context(), tournamentID, bracket); err != nil {
				return err
			}

			return renderBracket(cmd.OutOrStdout(), bracket)
		},
	}
}

// Plays the open matches in topological order of the routing
// graph until no match is playable
func simulate(engine *core.Engine, bracket *core.Bracket, score badminton.GameScore) (*core.Bracket, error) {
	graph, err := core.NewRoutingGraph(bracket.Matches)
	if err != nil {
		return nil, err
	}
	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	for len(bracket.PlayableMatches()) > 0 {
		for _, id := range order {
			m, _ := bracket.Match(id)
			if !m.IsReady() || m.IsCompleted() {
				continue
			}
			winnerID, loserID := score.Result(m)
			bracket = engine.Advance(bracket, id, winnerID, loserID, score.Points1, score.Points2)
		}
	}

	return bracket, nil
}
