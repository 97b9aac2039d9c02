package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
)

type Firestore struct {
	client   *firestore.Client
	reminder *reminderRepository
}

var _ interfaces.Repository = &Firestore{}

type config struct {
	collectionPrefix string
	clientOptions    []option.ClientOption
}

type Option func(*config)

func WithCollectionPrefix(prefix string) Option {
	return func(c *config) {
		c.collectionPrefix = prefix
	}
}

// WithClientOptions passes options such as credentials or endpoint to the Firestore client
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, opts...)
	}
}

// New connects to the given Firestore database. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	reminder := newReminderRepository(client)
	reminder.collectionPrefix = cfg.collectionPrefix

	return &Firestore{
		client:   client,
		reminder: reminder,
	}, nil
}

func (f *Firestore) Reminder() interfaces.ReminderRepository {
	return f.reminder
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
