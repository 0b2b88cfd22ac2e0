package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Field is a single named datum to extract (e.g. "Invoice Number").
// Only Label ever reaches a rendered prompt; ID is bookkeeping for the UI.
type Field struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Goal is the extraction objective associated with a document type.
type Goal struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	SuggestedFields []Field `json:"suggested_fields"`
}

// DocumentType is a category of source document driving which fields are
// suggested. The data model supports multiple goals, but every consumer only
// ever reads the first one; the slice is kept so user-defined types round-trip
// unchanged.
type DocumentType struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Icon          Icon   `json:"icon"`
	Goals         []Goal `json:"goals"`
	IsUserDefined bool   `json:"is_user_defined"`
}

// OutputFormat is the structural shape requested for the LLM's eventual answer.
type OutputFormat struct {
	ID    OutputFormatID `json:"id"`
	Label string         `json:"label"`
	Icon  Icon           `json:"icon"`
}

// Selection is the caller-owned input to a render call. It is rebuilt by the
// form layer on every mutation and read-only to the core.
type Selection struct {
	DocumentTypeID      string         `json:"document_type_id"`
	SelectedFieldLabels []string       `json:"selected_field_labels"`
	CustomFieldLabels   []string       `json:"custom_field_labels"`
	OutputFormatID      OutputFormatID `json:"output_format_id"`
	FreeInstructions    string         `json:"free_instructions"`
	FileContentMode     bool           `json:"file_content_mode"`
}

// FieldLabels returns the authoritative field list: selected labels followed
// by custom labels, order preserved, duplicates preserved.
func (s *Selection) FieldLabels() []string {
	labels := make([]string, 0, len(s.SelectedFieldLabels)+len(s.CustomFieldLabels))
	labels = append(labels, s.SelectedFieldLabels...)
	labels = append(labels, s.CustomFieldLabels...)
	return labels
}

// PromptRun records one pass through the two-stage generation pipeline.
type PromptRun struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	SessionID        uuid.UUID       `db:"session_id" json:"session_id"`
	Selection        json.RawMessage `db:"selection" json:"selection"`
	Status           RunState        `db:"status" json:"status"`
	RawPrompt        string          `db:"raw_prompt" json:"-"`
	EngineeredPrompt string          `db:"engineered_prompt" json:"engineered_prompt,omitempty"`
	RefineWarning    string          `db:"refine_warning" json:"refine_warning,omitempty"`
	ModelUsed        string          `db:"model_used" json:"model_used,omitempty"`
	ErrorMessage     string          `db:"error_message" json:"error_message,omitempty"`
	ArtifactKey      string          `db:"artifact_key" json:"-"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// UserDocumentType is a session-scoped custom document type as stored.
type UserDocumentType struct {
	SessionID uuid.UUID       `db:"session_id" json:"session_id"`
	TypeID    string          `db:"type_id" json:"type_id"`
	Label     string          `db:"label" json:"label"`
	Icon      string          `db:"icon" json:"icon"`
	Goals     json.RawMessage `db:"goals" json:"goals"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// ToDocumentType converts the stored row into a catalog document type.
func (u *UserDocumentType) ToDocumentType() (DocumentType, error) {
	var goals []Goal
	if len(u.Goals) > 0 {
		if err := json.Unmarshal(u.Goals, &goals); err != nil {
			return DocumentType{}, err
		}
	}
	return DocumentType{
		ID:            u.TypeID,
		Label:         u.Label,
		Icon:          ResolveIcon(u.Icon),
		Goals:         goals,
		IsUserDefined: true,
	}, nil
}
