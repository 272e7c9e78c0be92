package rvnindexx

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FieldOptions is the per-field indexing configuration of an index. Every
// option is independently optional; an unset option leaves the choice to the
// server.
type FieldOptions struct {
	// Sort specifies the sort options to use for the field.
	Sort SortOptions
	// Indexing specifies how the field value is indexed.
	Indexing FieldIndexing
	// Storage specifies whether the field value is stored in the index.
	Storage FieldStorage
	// Suggestions specifies whether suggestions are produced for the field.
	Suggestions *bool
	// TermVector specifies whether term vectors are stored for the field.
	TermVector FieldTermVector
	// Analyzer is the name of the analyzer used to index the field.
	Analyzer *string
}

func (o *FieldOptions) encodeToJson() (json.RawMessage, error) {
	j := fieldOptionsJson{
		Analyzer:    o.Analyzer,
		Suggestions: o.Suggestions,
	}

	var err error
	if j.Indexing, err = encodeEnum("Indexing", o.Indexing); err != nil {
		return nil, err
	}
	if j.Sort, err = encodeEnum("Sort", o.Sort); err != nil {
		return nil, err
	}
	if j.Storage, err = encodeEnum("Storage", o.Storage); err != nil {
		return nil, err
	}
	if j.TermVector, err = encodeEnum("TermVector", o.TermVector); err != nil {
		return nil, err
	}

	return json.Marshal(j)
}

// EncodeJSON renders the field options in their wire format.
func (o *FieldOptions) EncodeJSON() (json.RawMessage, error) {
	raw, err := o.encodeToJson()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode field options")
	}

	return raw, nil
}

func (o FieldOptions) MarshalJSON() ([]byte, error) {
	return o.EncodeJSON()
}

var _ json.Marshaler = FieldOptions{}
