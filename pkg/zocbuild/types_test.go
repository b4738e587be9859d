package zocbuild_test

import (
	"errors"
	"testing"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func TestScanConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    zocbuild.ScanConfig
		wantError bool
	}{
		{
			name:   "valid config",
			config: zocbuild.ScanConfig{SourcePath: "./db", DatabaseName: "sales"},
		},
		{
			name:      "missing source path",
			config:    zocbuild.ScanConfig{DatabaseName: "sales"},
			wantError: true,
		},
		{
			name:      "missing database name",
			config:    zocbuild.ScanConfig{SourcePath: "./db"},
			wantError: true,
		},
		{
			name:      "negative parallelism",
			config:    zocbuild.ScanConfig{SourcePath: "./db", DatabaseName: "sales", Parallelism: -1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !errors.Is(err, zocbuild.ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDatabaseObjectType_String(t *testing.T) {
	tests := []struct {
		objectType zocbuild.DatabaseObjectType
		want       string
	}{
		{zocbuild.ObjectTypeProcedure, "Procedure"},
		{zocbuild.ObjectTypeView, "View"},
		{zocbuild.ObjectTypeUnknown, "Unknown"},
		{zocbuild.DatabaseObjectType(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.objectType.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseDatabaseObjectType(t *testing.T) {
	for _, objectType := range zocbuild.AllObjectTypes() {
		got, err := zocbuild.ParseDatabaseObjectType(objectType.String())
		if err != nil {
			t.Fatalf("ParseDatabaseObjectType(%q) failed: %v", objectType, err)
		}
		if got != objectType {
			t.Errorf("ParseDatabaseObjectType(%q) = %v", objectType, got)
		}
	}

	if got, err := zocbuild.ParseDatabaseObjectType("PROCEDURE"); err != nil || got != zocbuild.ObjectTypeProcedure {
		t.Errorf("Expected case-insensitive match, got %v, %v", got, err)
	}

	if _, err := zocbuild.ParseDatabaseObjectType("synonym"); err == nil {
		t.Error("Expected error for unknown type")
	}
}

func TestDatabaseObjectType_IsValid(t *testing.T) {
	if zocbuild.ObjectTypeUnknown.IsValid() {
		t.Error("Unknown should not be valid")
	}
	if !zocbuild.ObjectTypeTable.IsValid() {
		t.Error("Table should be valid")
	}
}

func TestScriptFile_Mismatches(t *testing.T) {
	file := &zocbuild.ScriptFile{
		ScriptObject: zocbuild.ObjectIdentity{
			DatabaseName: "sales",
			SchemaName:   "dbo",
			ObjectName:   "orders_get",
			ObjectType:   zocbuild.ObjectTypeProcedure,
		},
		Script: &zocbuild.SQLScript{
			ObjectName: "ORDERS_GET",
			SchemaName: "dbo",
			ObjectType: zocbuild.ObjectTypeProcedure,
		},
	}

	if m := file.Mismatches(); len(m) != 0 {
		t.Errorf("Expected no mismatches, got %v", m)
	}

	file.Script.ObjectName = "orders_list"
	file.Script.ObjectType = zocbuild.ObjectTypeFunction
	if m := file.Mismatches(); len(m) != 2 {
		t.Errorf("Expected 2 mismatches, got %v", m)
	}

	if file.DatabaseName() != "sales" {
		t.Errorf("DatabaseName() = %q", file.DatabaseName())
	}
}
