package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const lookupEventsTable = "lookup_events"

func (r *eventRepo) AppendLookup(ctx context.Context, data LookupEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(lookupEventsTable).
		Columns("sequence", "timestamp", "topic", "source", "found", "latency_ms").
		Values(seqNum, time.Now().UnixMilli(), data.Topic, data.Source, data.Found, data.LatencyMs).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save lookup event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLookups(ctx context.Context, opts QueryOpts) ([]LookupEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("sequence", "timestamp", "topic", "source", "found", "latency_ms").
		From(entsql.Table(lookupEventsTable))
	applyQueryOpts(sel, opts, "topic")

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	var events []LookupEvent
	for rows.Next() {
		var (
			e  LookupEvent
			ts int64
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.Topic, &e.Source, &e.Found, &e.LatencyMs); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}
