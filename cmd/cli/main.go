// Package main provides the cinehub-cli binary, an operator tool that works
// directly against the application database: admin promotion, suggestion
// review and basic stats.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"cinehub-rest-api/internal/config"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
	"cinehub-rest-api/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "cinehub-cli",
		Short: "CineHub operator tool",
		Long: `cinehub-cli operates directly on the CineHub database.

It covers the tasks that should not go through the HTTP API: promoting
accounts to admin, reviewing suggestions in bulk and inspecting stats.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (defaults to DB_PATH)")

	cmd.AddCommand(
		promoteCmd(&dbPath),
		suggestionsCmd(&dbPath),
		statsCmd(&dbPath),
		pruneCmd(&dbPath),
	)
	return cmd
}

// openDB opens the application database, falling back to the configured path.
func openDB(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Database.Path
	}
	return repository.OpenSQLite(dbPath)
}

func promoteCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant admin rights to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewSQLiteUserRepository(db)
			if err := repo.SetAdmin(cmd.Context(), args[0], true); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no account with email %s", args[0])
				}
				return err
			}
			fmt.Printf("%s is now an admin\n", args[0])
			return nil
		},
	}
}

func suggestionsCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggestions",
		Short: "List and review movie suggestions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List suggestions by status (default pending)",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")

			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewSQLiteSuggestionRepository(db)
			suggestions, err := repo.List(cmd.Context(), model.SuggestionStatus(status))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tUSER\tSTATUS\tSUBMITTED")
			for _, s := range suggestions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					s.ID, s.Title, s.UserName, s.Status, s.SubmittedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
	list.Flags().String("status", string(model.SuggestionPending), "pending, approved, rejected or empty for all")

	review := func(use, short string, approve bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var id int64
				if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
					return fmt.Errorf("invalid suggestion id %q", args[0])
				}

				db, err := openDB(*dbPath)
				if err != nil {
					return err
				}
				defer db.Close()

				svc := reviewService(db)
				var reviewed *model.MovieSuggestion
				if approve {
					reviewed, err = svc.Approve(cmd.Context(), id, 0)
				} else {
					reviewed, err = svc.Reject(cmd.Context(), id, 0)
				}
				if err != nil {
					return err
				}
				fmt.Printf("suggestion %d is now %s\n", reviewed.ID, reviewed.Status)
				return nil
			},
		}
	}

	cmd.AddCommand(
		list,
		review("approve", "Approve a pending suggestion", true),
		review("reject", "Reject a pending suggestion", false),
	)
	return cmd
}

// reviewService wires the minimal service graph a review needs. The CLI
// never uses Redis; the in-process services are enough.
func reviewService(db *sql.DB) *service.SuggestionService {
	cfg := config.MustLoad()
	userRepo := repository.NewSQLiteUserRepository(db)
	storeRepo := repository.NewSQLiteStoreRepository(db)
	notificationRepo := repository.NewSQLiteNotificationRepository(db)
	suggestionRepo := repository.NewSQLiteSuggestionRepository(db)

	notifier := service.NewNotificationService(notificationRepo)
	economy := service.NewEconomyService(userRepo, storeRepo, notifier, nil, cfg.Economy)
	return service.NewSuggestionService(suggestionRepo, notifier, economy)
}

func statsCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print database stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			users, err := repository.NewSQLiteUserRepository(db).Count(ctx)
			if err != nil {
				return err
			}
			purchases, err := repository.NewSQLiteStoreRepository(db).CountPurchases(ctx)
			if err != nil {
				return err
			}
			movies, err := repository.NewSQLiteMovieRepository(db).Count(ctx)
			if err != nil {
				return err
			}
			pending, err := repository.NewSQLiteSuggestionRepository(db).List(ctx, model.SuggestionPending)
			if err != nil {
				return err
			}

			fmt.Printf("users:               %d\n", users)
			fmt.Printf("purchases:           %d\n", purchases)
			fmt.Printf("community movies:    %d\n", movies)
			fmt.Printf("pending suggestions: %d\n", len(pending))
			return nil
		},
	}
}

func pruneCmd(dbPath *string) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune-notifications",
		Short: "Delete read notifications older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewSQLiteNotificationRepository(db)
			cutoff := time.Now().UTC().Add(-olderThan)
			deleted, err := repo.DeleteReadBefore(context.Background(), cutoff)
			if err != nil {
				return err
			}
			fmt.Printf("pruned %d notifications\n", deleted)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "retention window")
	return cmd
}
