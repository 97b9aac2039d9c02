package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/file"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/firestore"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/memory"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend          string
	dataDir          string
	projectID        string
	databaseID       string
	collectionPrefix string
	credentialsFile  string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (file, firestore or memory)",
			Value:       "file",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for the file backend (default: <user config dir>/vitaguard)",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_DATA_DIR"),
			Destination: &r.dataDir,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix for Firestore collection names",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.collectionPrefix,
		},
		&cli.StringFlag{
			Name:        "firestore-credentials",
			Usage:       "Service account JSON file for Firestore (default: application default credentials)",
			Category:    "Repository",
			Sources:     cli.EnvVars("VITAGUARD_FIRESTORE_CREDENTIALS"),
			Destination: &r.credentialsFile,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file", "":
		dir := r.dataDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, goerr.Wrap(err, "failed to determine data directory, set --data-dir")
			}
			dir = filepath.Join(base, "vitaguard")
		}
		repo, err := file.New(dir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file repository")
		}
		logging.From(ctx).Info("Using file repository", "dir", dir)
		return repo, nil

	case "firestore":
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.collectionPrefix != "" {
			opts = append(opts, firestore.WithCollectionPrefix(r.collectionPrefix))
		}
		if r.credentialsFile != "" {
			opts = append(opts, firestore.WithClientOptions(option.WithCredentialsFile(r.credentialsFile)))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.From(ctx).Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
			"collection_prefix", r.collectionPrefix,
		)
		return repo, nil

	case "memory":
		logging.From(ctx).Info("Using in-memory repository (reminders are lost on exit)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
