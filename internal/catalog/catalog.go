// Package catalog holds the built-in document type and output format
// registries and merges session-defined document types over them.
package catalog

import "promptpilot/internal/domain"

// Catalog resolves document types and output formats for a single request.
// Built-in entries always win over user-defined entries with the same id.
type Catalog struct {
	documentTypes []domain.DocumentType
	typesByID     map[string]domain.DocumentType
	formatsByID   map[domain.OutputFormatID]domain.OutputFormat
}

// NewBuiltin returns a catalog containing only the compiled-in registries.
func NewBuiltin() *Catalog {
	return New(nil)
}

// New builds a catalog from the built-in registries plus the given
// user-defined overlay. Overlay entries whose id or label collides with a
// built-in entry are dropped.
func New(overlay []domain.DocumentType) *Catalog {
	c := &Catalog{
		typesByID:   make(map[string]domain.DocumentType, len(builtinDocumentTypes)+len(overlay)),
		formatsByID: make(map[domain.OutputFormatID]domain.OutputFormat, len(builtinOutputFormats)),
	}
	labels := make(map[string]struct{}, len(builtinDocumentTypes))
	for _, dt := range builtinDocumentTypes {
		c.documentTypes = append(c.documentTypes, dt)
		c.typesByID[dt.ID] = dt
		labels[dt.Label] = struct{}{}
	}
	for _, dt := range overlay {
		if _, exists := c.typesByID[dt.ID]; exists {
			continue
		}
		if _, exists := labels[dt.Label]; exists {
			continue
		}
		dt.IsUserDefined = true
		c.documentTypes = append(c.documentTypes, dt)
		c.typesByID[dt.ID] = dt
		labels[dt.Label] = struct{}{}
	}
	for _, f := range builtinOutputFormats {
		c.formatsByID[f.ID] = f
	}
	return c
}

// DocumentTypes returns all document types in presentation order, built-ins
// first, then the overlay.
func (c *Catalog) DocumentTypes() []domain.DocumentType {
	out := make([]domain.DocumentType, len(c.documentTypes))
	copy(out, c.documentTypes)
	return out
}

// LookupDocumentType returns the document type with the given id, or false
// when no such type exists.
func (c *Catalog) LookupDocumentType(id string) (domain.DocumentType, bool) {
	dt, ok := c.typesByID[id]
	return dt, ok
}

// FirstGoal returns the first goal of the document type. Document types
// carry a list of goals but assembly only ever reads the first one.
func FirstGoal(dt domain.DocumentType) (domain.Goal, bool) {
	if len(dt.Goals) == 0 {
		return domain.Goal{}, false
	}
	return dt.Goals[0], true
}

// OutputFormats returns the supported output formats in presentation order.
func (c *Catalog) OutputFormats() []domain.OutputFormat {
	out := make([]domain.OutputFormat, len(builtinOutputFormats))
	copy(out, builtinOutputFormats)
	return out
}

// LookupOutputFormat returns the output format with the given id, or false
// when the id is not one of the supported formats.
func (c *Catalog) LookupOutputFormat(id domain.OutputFormatID) (domain.OutputFormat, bool) {
	f, ok := c.formatsByID[id]
	return f, ok
}

// IsBuiltinDocumentType reports whether the id belongs to a compiled-in
// document type.
func IsBuiltinDocumentType(id string) bool {
	for _, dt := range builtinDocumentTypes {
		if dt.ID == id {
			return true
		}
	}
	return false
}

// IsBuiltinDocumentTypeLabel reports whether the label belongs to a
// compiled-in document type.
func IsBuiltinDocumentTypeLabel(label string) bool {
	for _, dt := range builtinDocumentTypes {
		if dt.Label == label {
			return true
		}
	}
	return false
}
