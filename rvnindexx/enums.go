package rvnindexx

// IndexLockMode controls whether the server may modify or replace an index.
type IndexLockMode uint

const (
	indexLockModeUnset IndexLockMode = iota

	IndexLockModeUnlock
	IndexLockModeLockedIgnore
	IndexLockModeLockedError
	IndexLockModeSideBySide
)

func (m IndexLockMode) String() string {
	switch m {
	case IndexLockModeUnlock:
		return "Unlock"
	case IndexLockModeLockedIgnore:
		return "LockedIgnore"
	case IndexLockModeLockedError:
		return "LockedError"
	case IndexLockModeSideBySide:
		return "SideBySide"
	}
	return ""
}

func (m IndexLockMode) isUnset() bool { return m == indexLockModeUnset }

// IndexPriority indicates how the server schedules indexing work for an index.
type IndexPriority uint

const (
	indexPriorityUnset IndexPriority = iota

	IndexPriorityLow
	IndexPriorityNormal
	IndexPriorityHigh
)

func (p IndexPriority) String() string {
	switch p {
	case IndexPriorityLow:
		return "Low"
	case IndexPriorityNormal:
		return "Normal"
	case IndexPriorityHigh:
		return "High"
	}
	return ""
}

func (p IndexPriority) isUnset() bool { return p == indexPriorityUnset }

// SortOptions are the sort options to use for a particular field.
type SortOptions uint

const (
	sortOptionsUnset SortOptions = iota

	// SortOptionsNone specifies no sort options.
	SortOptionsNone

	// SortOptionsString sorts using term values as strings.
	SortOptionsString

	// SortOptionsNumeric sorts using term values as encoded doubles and longs.
	SortOptionsNumeric
)

func (o SortOptions) String() string {
	switch o {
	case SortOptionsNone:
		return "None"
	case SortOptionsString:
		return "String"
	case SortOptionsNumeric:
		return "Numeric"
	}
	return ""
}

func (o SortOptions) isUnset() bool { return o == sortOptionsUnset }

// FieldIndexing specifies how the value of a field is indexed.
type FieldIndexing uint

const (
	fieldIndexingUnset FieldIndexing = iota

	// FieldIndexingNo does not index the field value.
	FieldIndexingNo

	// FieldIndexingAnalyzed indexes the tokens produced by running the value through an analyzer.
	FieldIndexingAnalyzed

	// FieldIndexingNotAnalyzed indexes the value as-is, without an analyzer.
	FieldIndexingNotAnalyzed

	// FieldIndexingDefault indexes the value using the server's default analyzer.
	FieldIndexingDefault
)

func (i FieldIndexing) String() string {
	switch i {
	case FieldIndexingNo:
		return "No"
	case FieldIndexingAnalyzed:
		return "Analyzed"
	case FieldIndexingNotAnalyzed:
		return "NotAnalyzed"
	case FieldIndexingDefault:
		return "Default"
	}
	return ""
}

func (i FieldIndexing) isUnset() bool { return i == fieldIndexingUnset }

// FieldTermVector specifies whether term vectors are stored for a field.
type FieldTermVector uint

const (
	fieldTermVectorUnset FieldTermVector = iota

	FieldTermVectorNo
	FieldTermVectorYes
	FieldTermVectorWithPositions
	FieldTermVectorWithOffsets
	FieldTermVectorWithPositionsAndOffsets
)

func (v FieldTermVector) String() string {
	switch v {
	case FieldTermVectorNo:
		return "No"
	case FieldTermVectorYes:
		return "Yes"
	case FieldTermVectorWithPositions:
		return "WithPositions"
	case FieldTermVectorWithOffsets:
		return "WithOffsets"
	case FieldTermVectorWithPositionsAndOffsets:
		return "WithPositionsAndOffsets"
	}
	return ""
}

func (v FieldTermVector) isUnset() bool { return v == fieldTermVectorUnset }

// FieldStorage specifies whether the original field value is stored in the index.
type FieldStorage uint

const (
	fieldStorageUnset FieldStorage = iota

	FieldStorageYes
	FieldStorageNo
)

func (s FieldStorage) String() string {
	switch s {
	case FieldStorageYes:
		return "Yes"
	case FieldStorageNo:
		return "No"
	}
	return ""
}

func (s FieldStorage) isUnset() bool { return s == fieldStorageUnset }

type wireEnum interface {
	String() string
	isUnset() bool
}

// encodeEnum returns nil for an unset value so that it renders as JSON null.
func encodeEnum(name string, v wireEnum) (*string, error) {
	if v.isUnset() {
		return nil, nil
	}

	s := v.String()
	if s == "" {
		return nil, invalidEnumError(name, v)
	}

	return &s, nil
}
