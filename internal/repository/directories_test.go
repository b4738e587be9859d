package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func TestObjectTypeForDirectory(t *testing.T) {
	tests := []struct {
		name string
		want zocbuild.DatabaseObjectType
		ok   bool
	}{
		{"function", zocbuild.ObjectTypeFunction, true},
		{"procedure", zocbuild.ObjectTypeProcedure, true},
		{"table", zocbuild.ObjectTypeTable, true},
		{"trigger", zocbuild.ObjectTypeTrigger, true},
		{"type", zocbuild.ObjectTypeType, true},
		{"view", zocbuild.ObjectTypeView, true},
		{"VIEW", zocbuild.ObjectTypeView, true},
		{"views", zocbuild.ObjectTypeUnknown, false},
		{"foobar", zocbuild.ObjectTypeUnknown, false},
		{"", zocbuild.ObjectTypeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ObjectTypeForDirectory(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectoryForObjectType_RoundTrips(t *testing.T) {
	for _, objectType := range zocbuild.AllObjectTypes() {
		dir, ok := DirectoryForObjectType(objectType)
		if assert.True(t, ok, objectType.String()) {
			got, _ := ObjectTypeForDirectory(dir)
			assert.Equal(t, objectType, got)
		}
	}

	_, ok := DirectoryForObjectType(zocbuild.ObjectTypeUnknown)
	assert.False(t, ok)
}

func TestIsScriptFileName(t *testing.T) {
	assert.True(t, isScriptFileName("a.sql"))
	assert.False(t, isScriptFileName(".sql"))
	assert.False(t, isScriptFileName("a.SQL"))
	assert.False(t, isScriptFileName("a.sql.foo"))
	assert.False(t, isScriptFileName("a"))
}
