package rvnindexx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCanonical(t *testing.T, expected map[wireEnum]string) {
	seen := make(map[string]bool, len(expected))
	for v, s := range expected {
		assert.Equal(t, s, v.String())
		assert.False(t, seen[s], "token %q rendered by more than one value", s)
		seen[s] = true
	}
}

func TestEnumCanonicalStrings(t *testing.T) {
	t.Run("lock mode", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			IndexLockModeUnlock:       "Unlock",
			IndexLockModeLockedIgnore: "LockedIgnore",
			IndexLockModeLockedError:  "LockedError",
			IndexLockModeSideBySide:   "SideBySide",
		})
	})

	t.Run("priority", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			IndexPriorityLow:    "Low",
			IndexPriorityNormal: "Normal",
			IndexPriorityHigh:   "High",
		})
	})

	t.Run("sort options", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			SortOptionsNone:    "None",
			SortOptionsString:  "String",
			SortOptionsNumeric: "Numeric",
		})
	})

	t.Run("field indexing", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			FieldIndexingNo:          "No",
			FieldIndexingAnalyzed:    "Analyzed",
			FieldIndexingNotAnalyzed: "NotAnalyzed",
			FieldIndexingDefault:     "Default",
		})
	})

	t.Run("term vector", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			FieldTermVectorNo:                      "No",
			FieldTermVectorYes:                     "Yes",
			FieldTermVectorWithPositions:           "WithPositions",
			FieldTermVectorWithOffsets:             "WithOffsets",
			FieldTermVectorWithPositionsAndOffsets: "WithPositionsAndOffsets",
		})
	})

	t.Run("storage", func(t *testing.T) {
		assertCanonical(t, map[wireEnum]string{
			FieldStorageYes: "Yes",
			FieldStorageNo:  "No",
		})
	})
}

func TestEncodeEnum(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		s, err := encodeEnum("LockMode", IndexLockMode(0))
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("member", func(t *testing.T) {
		s, err := encodeEnum("LockMode", IndexLockModeSideBySide)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "SideBySide", *s)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := encodeEnum("LockMode", IndexLockMode(42))
		assert.ErrorIs(t, err, ErrInvalidEnumValue)
		assert.Contains(t, err.Error(), "LockMode")
	})
}
