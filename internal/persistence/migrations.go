package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// RunMigrations applies every .sql file under migrations/ in lexical
// order. The files are written to be re-runnable (CREATE ... IF NOT
// EXISTS), so there is no version bookkeeping table.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	scripts, err := listMigrationScripts()
	if err != nil {
		return err
	}

	for _, script := range scripts {
		sql, err := os.ReadFile(script)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", script, err)
		}
		logger.Info("applying migration", zap.String("file", filepath.Base(script)))
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", script, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(scripts)))
	return nil
}

func listMigrationScripts() ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	scripts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		scripts = append(scripts, filepath.Join(migrationsDir, entry.Name()))
	}
	sort.Strings(scripts)
	return scripts, nil
}
