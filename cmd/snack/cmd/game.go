package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/f3rmion/snack/internal/config"
	"github.com/f3rmion/snack/internal/dataset"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/store"
	"github.com/spf13/viper"
)

// loadConfig loads the user's config, falling back to the built-in games
// when none was written yet.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigDir())
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("no games file, using built-in games", "dir", getConfigDir())
		return &config.Config{
			Games:    config.DefaultGames(),
			Settings: config.DefaultSettings(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// dataDir returns where datasets live: --data, then settings, then the
// config dir.
func dataDir(s config.Settings) string {
	if d := viper.GetString("data_dir"); d != "" {
		return d
	}
	if s.DataDir != "" {
		return s.DataDir
	}
	return filepath.Join(getConfigDir(), "data")
}

// databasePath returns the session database: --db, then settings, then the
// config dir.
func databasePath(s config.Settings) string {
	if p := viper.GetString("database"); p != "" {
		return p
	}
	if s.Database != "" {
		return s.Database
	}
	return filepath.Join(getConfigDir(), "snack.db")
}

// today returns the game date: --date if given, else the current date at
// the configured day boundary.
func today(s config.Settings) (time.Time, error) {
	if d := viper.GetString("date"); d != "" {
		t, err := time.ParseInLocation(store.DayFormat, d, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: %w", d, err)
		}
		return t, nil
	}
	boundary := s.Boundary()
	if viper.GetBool("utc") {
		boundary = engine.BoundaryUTC
	}
	return engine.Today(time.Now(), boundary), nil
}

// game bundles a configured game with its loaded catalog.
type game struct {
	cfg      *config.GameConfig
	settings config.Settings
	catalog  *dataset.Catalog
}

// openGame loads the named game's dataset.
func openGame(name string) (*game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	gc, err := cfg.Game(name)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(gc, cfg.Settings)
	if err != nil {
		return nil, err
	}
	return &game{cfg: gc, settings: cfg.Settings, catalog: catalog}, nil
}

func loadCatalog(gc *config.GameConfig, s config.Settings) (*dataset.Catalog, error) {
	schema, err := gc.Schema()
	if err != nil {
		return nil, err
	}
	eligible, err := gc.Eligible()
	if err != nil {
		return nil, err
	}

	path := gc.DatasetPath(dataDir(s))
	start := time.Now()
	catalog, err := dataset.Open(path, schema, eligible...)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gc.Name, err)
	}
	logging.Debug("dataset loaded", "game", gc.Name, "path", path, "items", catalog.Size(), "pool", catalog.PoolSize(), "took", time.Since(start))
	return catalog, nil
}

func (g *game) title() string {
	if g.cfg.Title != "" {
		return g.cfg.Title
	}
	return g.cfg.Name
}

// openStore opens the session database, creating its directory.
func (g *game) openStore() (*store.Store, error) {
	return openStore(g.settings)
}

func openStore(s config.Settings) (*store.Store, error) {
	path := databasePath(s)
	if err := ensureParent(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}

// daily resumes or starts today's session.
func (g *game) daily(st *store.Store) (*store.Record, *engine.Session, error) {
	date, err := today(g.settings)
	if err != nil {
		return nil, nil, err
	}
	secret, err := engine.SelectSecret(g.catalog.Pool(), date)
	if err != nil {
		return nil, nil, err
	}

	rec, _, err := st.StartOrResume(g.cfg.Name, date.Format(store.DayFormat), store.Daily, secret.Name)
	if err != nil {
		return nil, nil, err
	}
	sess, err := store.Restore(rec, g.catalog.Schema(), g.catalog)
	if err != nil {
		return nil, nil, err
	}
	return rec, sess, nil
}
