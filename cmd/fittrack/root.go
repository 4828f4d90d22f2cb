package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ogould/fittrack/internal/config"
	"github.com/ogould/fittrack/internal/db"
	"github.com/ogould/fittrack/internal/security"
	"github.com/ogould/fittrack/internal/services"
	"github.com/ogould/fittrack/internal/session"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string

	cfg      config.Config
	database *gorm.DB
	repos    *db.Repositories
	sessions *session.Store

	authService    *services.AuthService
	profileService *services.ProfileService
	catalogService *services.CatalogService
	logService     *services.LogService
)

var errNotLoggedIn = errors.New("not logged in, run 'fittrack login' first")

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Local fitness tracker",
	Long: `FitTrack is a single-device fitness tracker.

Register an account, complete the body-metric setup to get your BMR and
TDEE, pick a goal, then log meals and workouts from the catalogs. Admins
manage the shared catalogs and user accounts.

All data lives in a local SQLite database under the data directory
(default ~/.fittrack, override with FITTRACK_DATA_DIR or --config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sessions != nil {
			return sessions.Close()
		}
		return nil
	},
}

func initApp() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	database, err = db.Open(cfg.DatabasePath(), db.Options{
		BestEffortMigrations: cfg.BestEffortMigrations,
	})
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	sessions, err = session.Open(cfg.SessionDir())
	if err != nil {
		return err
	}

	repos = db.NewRepositories(database)
	authService = services.NewAuthService(repos.Users)
	profileService = services.NewProfileService(repos.Profiles)
	catalogService = services.NewCatalogService(repos.Meals, repos.Workouts)
	logService = services.NewLogService(repos.MealLogs, repos.WorkoutLogs, repos.Meals, repos.Workouts)

	seedPassword, err := authService.EnsureDefaultAdmin(func() (string, error) {
		return security.GenerateToken(12)
	})
	if err != nil {
		return err
	}
	if seedPassword != "" {
		log.Printf("seeded %q account with password %s (change it after first login)",
			services.DefaultAdminUsername, seedPassword)
	}
	return nil
}

// currentSession returns the logged-in session or errNotLoggedIn.
func currentSession() (session.Session, error) {
	current, found, err := sessions.Current()
	if err != nil {
		return session.Session{}, err
	}
	if !found {
		return session.Session{}, errNotLoggedIn
	}
	return current, nil
}

func requireAdmin() (session.Session, error) {
	current, err := currentSession()
	if err != nil {
		return session.Session{}, err
	}
	if !current.IsAdmin {
		return session.Session{}, services.ErrAdminRequired
	}
	return current, nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
}
