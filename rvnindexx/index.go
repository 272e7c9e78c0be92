package rvnindexx

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// AutoIndexPrefix marks an index name as generated by the server.
const AutoIndexPrefix = "Auto/"

// IndexType is the structural classification of an index.
type IndexType string

const (
	IndexTypeMap           IndexType = "Map"
	IndexTypeMapReduce     IndexType = "MapReduce"
	IndexTypeAutoMap       IndexType = "AutoMap"
	IndexTypeAutoMapReduce IndexType = "AutoMapReduce"
)

// IndexDefinitionOptions lists everything that can be set when creating an
// IndexDefinition.
type IndexDefinitionOptions struct {
	// Name is the name of the index. Names starting with AutoIndexPrefix
	// denote server generated indexes.
	Name string
	// Maps are the map statements of the index. Duplicates are collapsed and
	// at least one non-blank statement is required.
	Maps []string
	// Reduce is the reduce statement. A non-empty value makes the index a
	// map-reduce index.
	Reduce string
	// Configuration is passed through to the server untouched.
	Configuration map[string]string
	// Fields holds the per-field options, keyed by field name.
	Fields map[string]*FieldOptions
	// IndexID is assigned by the server, leave it zero for new indexes.
	IndexID     int
	IsTestIndex bool
	LockMode    IndexLockMode
	Priority    IndexPriority
}

// IndexDefinition describes a single index.
type IndexDefinition struct {
	Name          string
	Reduce        string
	Configuration map[string]string
	Fields        map[string]*FieldOptions
	IndexID       int
	IsTestIndex   bool
	LockMode      IndexLockMode
	Priority      IndexPriority

	maps map[string]struct{}
}

func NewIndexDefinition(opts IndexDefinitionOptions) (*IndexDefinition, error) {
	statements := make(map[string]struct{}, len(opts.Maps))
	for _, statement := range opts.Maps {
		if strings.TrimSpace(statement) == "" {
			return nil, errors.Wrapf(ErrInvalidDefinition, "index %q has a blank map statement", opts.Name)
		}
		statements[statement] = struct{}{}
	}
	if len(statements) == 0 {
		return nil, errors.Wrapf(ErrInvalidDefinition, "index %q must have at least one map statement", opts.Name)
	}

	configuration := opts.Configuration
	if configuration == nil {
		configuration = make(map[string]string)
	}

	fields := opts.Fields
	if fields == nil {
		fields = make(map[string]*FieldOptions)
	}

	return &IndexDefinition{
		Name:          opts.Name,
		Reduce:        opts.Reduce,
		Configuration: configuration,
		Fields:        fields,
		IndexID:       opts.IndexID,
		IsTestIndex:   opts.IsTestIndex,
		LockMode:      opts.LockMode,
		Priority:      opts.Priority,
		maps:          statements,
	}, nil
}

func (d *IndexDefinition) isAuto() bool {
	return strings.HasPrefix(d.Name, AutoIndexPrefix)
}

// Type classifies the index from its current name and reduce statement.
func (d *IndexDefinition) Type() IndexType {
	switch {
	case d.isAuto() && d.IsMapReduce():
		return IndexTypeAutoMapReduce
	case d.isAuto():
		return IndexTypeAutoMap
	case d.IsMapReduce():
		return IndexTypeMapReduce
	default:
		return IndexTypeMap
	}
}

func (d *IndexDefinition) IsMapReduce() bool {
	return d.Reduce != ""
}

// Map returns the map statement of an index that has exactly one.
func (d *IndexDefinition) Map() (string, error) {
	if len(d.maps) != 1 {
		return "", errors.Wrapf(ErrAmbiguousMapAccess, "index %q has %d map statements", d.Name, len(d.maps))
	}

	for statement := range d.maps {
		return statement, nil
	}
	return "", nil
}

// SetMap replaces all map statements with the given one.
func (d *IndexDefinition) SetMap(statement string) {
	d.maps = map[string]struct{}{statement: {}}
}

// AddMap adds a map statement, statements already present are ignored.
func (d *IndexDefinition) AddMap(statement string) {
	if d.maps == nil {
		d.maps = make(map[string]struct{})
	}
	d.maps[statement] = struct{}{}
}

func (d *IndexDefinition) HasMap(statement string) bool {
	_, ok := d.maps[statement]
	return ok
}

// Maps returns the map statements in sorted order. The server attaches no
// meaning to the order.
func (d *IndexDefinition) Maps() []string {
	statements := make([]string, 0, len(d.maps))
	for statement := range d.maps {
		statements = append(statements, statement)
	}
	slices.Sort(statements)
	return statements
}

func (d *IndexDefinition) encodeToJson() (json.RawMessage, error) {
	j := indexDefinitionJson{
		Configuration: d.Configuration,
		Fields:        make(map[string]json.RawMessage, len(d.Fields)),
		IndexId:       d.IndexID,
		IsTestIndex:   d.IsTestIndex,
		Maps:          d.Maps(),
		Name:          d.Name,
		Type:          d.Type(),
	}
	if j.Configuration == nil {
		j.Configuration = map[string]string{}
	}
	if d.Reduce != "" {
		reduce := d.Reduce
		j.Reduce = &reduce
	}

	for name, field := range d.Fields {
		if field == nil {
			field = &FieldOptions{}
		}

		raw, err := field.encodeToJson()
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", name)
		}
		j.Fields[name] = raw
	}

	var err error
	if j.LockMode, err = encodeEnum("LockMode", d.LockMode); err != nil {
		return nil, err
	}
	if j.Priority, err = encodeEnum("Priority", d.Priority); err != nil {
		return nil, err
	}

	return json.Marshal(j)
}

// EncodeJSON renders the index definition in its wire format.
func (d *IndexDefinition) EncodeJSON() (json.RawMessage, error) {
	raw, err := d.encodeToJson()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode index %q", d.Name)
	}

	return raw, nil
}

func (d *IndexDefinition) MarshalJSON() ([]byte, error) {
	return d.EncodeJSON()
}

var _ json.Marshaler = (*IndexDefinition)(nil)
