package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

const (
	reminderSetsCollection = "reminder_sets"
)

type reminderRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.ReminderRepository = &reminderRepository{}

func newReminderRepository(client *firestore.Client) *reminderRepository {
	return &reminderRepository{
		client: client,
	}
}

// reminderDoc is the Firestore persistence model of a single reminder
type reminderDoc struct {
	ID        string    `firestore:"id"`
	Title     string    `firestore:"title"`
	Time      string    `firestore:"time"`
	Type      string    `firestore:"type"`
	Enabled   bool      `firestore:"enabled"`
	Days      []string  `firestore:"days"`
	CreatedAt time.Time `firestore:"created_at"`
}

// reminderSetDoc holds the whole collection of one user. Array order is the list order.
type reminderSetDoc struct {
	Reminders []reminderDoc `firestore:"reminders"`
	UpdatedAt time.Time     `firestore:"updated_at"`
}

func (r *reminderRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + reminderSetsCollection)
	}
	return r.client.Collection(reminderSetsCollection)
}

func (r *reminderRepository) toDoc(rem *model.Reminder) reminderDoc {
	return reminderDoc{
		ID:        string(rem.ID),
		Title:     rem.Title,
		Time:      string(rem.Time),
		Type:      string(rem.Type),
		Enabled:   rem.Enabled,
		Days:      rem.Days.Strings(),
		CreatedAt: rem.CreatedAt,
	}
}

func (r *reminderRepository) fromDoc(doc reminderDoc) *model.Reminder {
	days := make(types.Days, len(doc.Days))
	for i, d := range doc.Days {
		days[i] = types.DayTag(d)
	}
	return &model.Reminder{
		ID:        model.ReminderID(doc.ID),
		Title:     doc.Title,
		Time:      types.ClockTime(doc.Time),
		Type:      types.ReminderType(doc.Type),
		Enabled:   doc.Enabled,
		Days:      days,
		CreatedAt: doc.CreatedAt,
	}
}

func (r *reminderRepository) ReadAll(ctx context.Context, key model.StorageKey) ([]*model.Reminder, error) {
	snap, err := r.collection().Doc(string(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "reminder set not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get reminder set", goerr.V("key", key))
	}

	var doc reminderSetDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode reminder set", goerr.V("key", key))
	}

	reminders := make([]*model.Reminder, len(doc.Reminders))
	for i, d := range doc.Reminders {
		reminders[i] = r.fromDoc(d)
	}
	return reminders, nil
}

func (r *reminderRepository) WriteAll(ctx context.Context, key model.StorageKey, reminders []*model.Reminder) error {
	doc := reminderSetDoc{
		Reminders: make([]reminderDoc, len(reminders)),
		UpdatedAt: time.Now().UTC(),
	}
	for i, rem := range reminders {
		doc.Reminders[i] = r.toDoc(rem)
	}

	if _, err := r.collection().Doc(string(key)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to write reminder set",
			goerr.V("key", key),
			goerr.V("count", len(reminders)))
	}
	return nil
}

func (r *reminderRepository) ListRecent(ctx context.Context, limit int) ([]*model.ReminderSetSummary, error) {
	query := r.collection().
		OrderBy("updated_at", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var summaries []*model.ReminderSetSummary
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list reminder sets")
		}

		var doc reminderSetDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode reminder set", goerr.V("key", snap.Ref.ID))
		}

		summaries = append(summaries, &model.ReminderSetSummary{
			Key:       model.StorageKey(snap.Ref.ID),
			Count:     len(doc.Reminders),
			UpdatedAt: doc.UpdatedAt,
		})
	}

	return summaries, nil
}
