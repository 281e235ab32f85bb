package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"lang-detect/api/internal/classify/types"
)

type AnalysisRepo struct{ DB *sql.DB }

func NewAnalysisRepo(db *sql.DB) *AnalysisRepo { return &AnalysisRepo{DB: db} }

// AnalysisRow is one stored analysis.
type AnalysisRow struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	DocName   string       `json:"doc_name"`
	TextHash  string       `json:"text_hash"`
	Result    types.Result `json:"result"`
}

const schema = `
create table if not exists analyses (
	id              bigserial primary key,
	created_at      timestamptz not null default now(),
	doc_name        text not null,
	text_hash       text not null,
	freq_verdict    text not null,
	short_verdict   text not null,
	oracle_engine   text not null default '',
	oracle_verdict  text not null,
	elapsed_ms      bigint not null,
	result_json     jsonb not null
);
create index if not exists analyses_created_at_idx on analyses (created_at);
create index if not exists analyses_text_hash_idx on analyses (text_hash)`

func (r *AnalysisRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

// Insert stores an analysis and returns its id.
func (r *AnalysisRepo) Insert(ctx context.Context, docName, textHash string, res types.Result) (int64, error) {
	js, err := json.Marshal(res)
	if err != nil {
		return 0, err
	}
	const q = `
insert into analyses(doc_name, text_hash, freq_verdict, short_verdict, oracle_engine, oracle_verdict, elapsed_ms, result_json)
values ($1,$2,$3,$4,$5,$6,$7,$8)
returning id`
	var id int64
	err = r.DB.QueryRowContext(ctx, q, docName, textHash,
		string(res.FrequencyVerdict), string(res.ShortWordVerdict),
		res.OracleEngine, res.OracleVerdict, res.Elapsed.Milliseconds(), js).Scan(&id)
	return id, err
}

// Recent returns the newest analyses first.
func (r *AnalysisRepo) Recent(ctx context.Context, limit int) ([]AnalysisRow, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
select id, created_at, doc_name, text_hash, result_json
from analyses
order by created_at desc, id desc
limit $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AnalysisRow, 0, limit)
	for rows.Next() {
		var (
			row AnalysisRow
			js  []byte
		)
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.DocName, &row.TextHash, &js); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(js, &row.Result); err != nil {
			return nil, fmt.Errorf("analysis %d: bad result_json: %w", row.ID, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DeleteOlderThan removes analyses created before now-age.
func (r *AnalysisRepo) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	const q = `delete from analyses where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, time.Now().Add(-age))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// HashText identifies a document by the text that was analysed.
func HashText(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
