package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable log
// of deep-analysis progress events. NOTIFY payloads reference rows here so
// reconnecting clients can catch up on anything they missed. Rows are
// associated to reports by report_uuid (not a FK — events outlive report
// deletion until the retention sweep removes them).
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_uuid"),
		field.String("channel"),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("report_uuid"),
		index.Fields("created_at"),
	}
}
