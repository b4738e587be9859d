package zocbuild

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DatabaseObjectType is the category of a database object. It is inferred
// from the name of the type directory that contains the script file.
type DatabaseObjectType int

const (
	ObjectTypeUnknown DatabaseObjectType = iota
	ObjectTypeFunction
	ObjectTypeProcedure
	ObjectTypeTable
	ObjectTypeTrigger
	ObjectTypeType
	ObjectTypeView
)

// String returns a human-readable string representation of the DatabaseObjectType.
func (t DatabaseObjectType) String() string {
	switch t {
	case ObjectTypeFunction:
		return "Function"
	case ObjectTypeProcedure:
		return "Procedure"
	case ObjectTypeTable:
		return "Table"
	case ObjectTypeTrigger:
		return "Trigger"
	case ObjectTypeType:
		return "Type"
	case ObjectTypeView:
		return "View"
	case ObjectTypeUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsValid returns true if the DatabaseObjectType is a defined, known value.
func (t DatabaseObjectType) IsValid() bool {
	return t >= ObjectTypeFunction && t <= ObjectTypeView
}

// MarshalText renders the type by name so JSON reports stay readable.
func (t DatabaseObjectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseDatabaseObjectType converts a case-insensitive type name ("procedure",
// "View", ...) into a DatabaseObjectType.
func ParseDatabaseObjectType(s string) (DatabaseObjectType, error) {
	for _, t := range AllObjectTypes() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return ObjectTypeUnknown, fmt.Errorf("unknown database object type %q", s)
}

// AllObjectTypes lists every known object type in declaration order.
func AllObjectTypes() []DatabaseObjectType {
	return []DatabaseObjectType{
		ObjectTypeFunction,
		ObjectTypeProcedure,
		ObjectTypeTable,
		ObjectTypeTrigger,
		ObjectTypeType,
		ObjectTypeView,
	}
}

// ObjectIdentity names a database object independent of where its script lives.
type ObjectIdentity struct {
	DatabaseName string
	SchemaName   string
	ObjectName   string
	ObjectType   DatabaseObjectType
}

func (o ObjectIdentity) String() string {
	return fmt.Sprintf("%s.%s.%s (%s)", o.DatabaseName, o.SchemaName, o.ObjectName, o.ObjectType)
}

// SQLScript is the structured result of parsing one build script.
type SQLScript struct {
	ObjectName   string
	SchemaName   string
	ObjectType   DatabaseObjectType
	OriginalText string
}

// ScriptFile is one successfully parsed build script in the catalog.
// A ScriptFile is immutable once returned by a ScriptRepository.
type ScriptFile struct {
	// ID is a deterministic identifier derived from ScriptObject.
	ID uuid.UUID

	// ScriptObject is the identity of the object, derived from the file's
	// location (type directory and file name) and the parsed schema.
	ScriptObject ObjectIdentity

	// Script is the parser output for the file content.
	Script *SQLScript

	// Path is the full path of the source file as reported by the accessor.
	Path string

	// Checksums of the file content (see internal/checksum).
	Checksum    string
	ChecksumRaw string
}

// DatabaseName returns the name of the database that owns the script.
func (f *ScriptFile) DatabaseName() string {
	return f.ScriptObject.DatabaseName
}

// Mismatches reports where the parsed script header disagrees with the file
// naming convention. The repository does not act on these; build steps
// further down the pipeline decide whether they are fatal.
func (f *ScriptFile) Mismatches() []string {
	if f.Script == nil {
		return nil
	}
	var out []string
	if !strings.EqualFold(f.Script.ObjectName, f.ScriptObject.ObjectName) {
		out = append(out, fmt.Sprintf("script defines object %q but file is named %q",
			f.Script.ObjectName, f.ScriptObject.ObjectName))
	}
	if f.Script.ObjectType != f.ScriptObject.ObjectType {
		out = append(out, fmt.Sprintf("script defines a %s but file is in the %s directory",
			f.Script.ObjectType, f.ScriptObject.ObjectType))
	}
	return out
}
