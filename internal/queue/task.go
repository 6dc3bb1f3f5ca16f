package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/joseph-ayodele/scriptsense/constants"
)

// TaskProcessDocument runs one staged upload through the pipeline.
const TaskProcessDocument = "ocr:process"

// ProcessPayload is the task body. The document bytes stay in Redis under
// StagingKey so the task itself stays small.
type ProcessPayload struct {
	RequestID   uuid.UUID            `json:"request_id"`
	FileName    string               `json:"file_name"`
	MimeType    string               `json:"mime_type"`
	Source      constants.SourceKind `json:"source"`
	Size        int64                `json:"size"`
	StagingKey  string               `json:"staging_key"`
	SubmittedAt time.Time            `json:"submitted_at"`
}

// NewProcessTask encodes p into an asynq task.
func NewProcessTask(p ProcessPayload, opts ...asynq.Option) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", TaskProcessDocument, err)
	}
	return asynq.NewTask(TaskProcessDocument, body, opts...), nil
}

// DecodeProcessPayload parses a task body written by NewProcessTask.
func DecodeProcessPayload(t *asynq.Task) (ProcessPayload, error) {
	var p ProcessPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ProcessPayload{}, fmt.Errorf("decode %s payload: %w", t.Type(), err)
	}
	if p.StagingKey == "" {
		return ProcessPayload{}, fmt.Errorf("decode %s payload: missing staging key", t.Type())
	}
	return p, nil
}
