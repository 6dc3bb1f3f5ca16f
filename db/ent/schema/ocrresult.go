package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/db/ent/schema/utils"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

type OcrResult struct{ ent.Schema }

func (OcrResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OcrResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("file_name").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int64("file_size").NonNegative(),
		field.String("extracted_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("language_name"),
		field.String("language_code"),
		field.Float("language_confidence").Range(0, 1),
		field.Float("confidence_score").Range(0, 1),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceKinds...)),
		field.String("pdf_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.PDFTypes...)),
		field.Int("page_count").NonNegative(),
		field.Int64("processing_time_ms").NonNegative(),
		field.JSON("bounding_boxes", []entity.BoundingBox{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (OcrResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("language_code"),
		index.Fields("source_type"),
	}
}
