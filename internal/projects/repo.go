package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("project not found")
	ErrWrite    = errors.New("write conflict")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create mints a fresh public id and inserts the document in one statement.
// A unique violation on the freshly minted id is surfaced as ErrWrite rather
// than retried.
func (r *Repo) Create(ctx context.Context, name string, schema json.RawMessage, schemaType string, conversation json.RawMessage) (*Project, error) {
	publicID, err := NewPublicID()
	if err != nil {
		return nil, err
	}

	if len(schema) == 0 {
		schema = json.RawMessage(`{}`)
	}
	if len(conversation) == 0 {
		conversation = json.RawMessage(`[]`)
	}

	const q = `
insert into projects (public_id, name, schema, schema_type, conversation)
values ($1, $2, $3, $4, $5)
returning created_at, updated_at;
`
	p := Project{
		PublicID:     publicID,
		Name:         name,
		Schema:       schema,
		SchemaType:   schemaType,
		Conversation: conversation,
	}
	err = r.db.QueryRow(ctx, q, publicID, name, []byte(schema), schemaType, []byte(conversation)).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %s", ErrWrite, pgErr.Message)
		}
		return nil, err
	}

	return &p, nil
}

// Get looks a project up by its public id, never the internal row key.
func (r *Repo) Get(ctx context.Context, publicID string) (*Project, error) {
	const q = `
select public_id, name, schema, schema_type, conversation, created_at, updated_at
from projects
where public_id = $1;
`
	var p Project
	var schema, conversation []byte
	err := r.db.QueryRow(ctx, q, publicID).
		Scan(&p.PublicID, &p.Name, &schema, &p.SchemaType, &conversation, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Schema = json.RawMessage(schema)
	p.Conversation = json.RawMessage(conversation)
	return &p, nil
}

// Update replaces name and schema and refreshes updated_at. schema_type and
// conversation are left untouched. No document is created if the id misses.
func (r *Repo) Update(ctx context.Context, publicID, name string, schema json.RawMessage) error {
	if len(schema) == 0 {
		schema = json.RawMessage(`{}`)
	}

	const q = `
update projects
set name = $2, schema = $3, updated_at = now()
where public_id = $1;
`
	ct, err := r.db.Exec(ctx, q, publicID, name, []byte(schema))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
