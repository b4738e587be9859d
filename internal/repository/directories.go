package repository

import (
	"strings"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// objectTypeDirectories maps a lowercase type directory name to its object type.
var objectTypeDirectories = map[string]zocbuild.DatabaseObjectType{
	"function":  zocbuild.ObjectTypeFunction,
	"procedure": zocbuild.ObjectTypeProcedure,
	"table":     zocbuild.ObjectTypeTable,
	"trigger":   zocbuild.ObjectTypeTrigger,
	"type":      zocbuild.ObjectTypeType,
	"view":      zocbuild.ObjectTypeView,
}

// ObjectTypeForDirectory returns the object type a directory name maps to.
// Matching ignores case.
func ObjectTypeForDirectory(name string) (zocbuild.DatabaseObjectType, bool) {
	t, ok := objectTypeDirectories[strings.ToLower(name)]
	return t, ok
}

// DirectoryForObjectType returns the canonical directory name for t.
func DirectoryForObjectType(t zocbuild.DatabaseObjectType) (string, bool) {
	for name, candidate := range objectTypeDirectories {
		if candidate == t {
			return name, true
		}
	}
	return "", false
}

// isScriptFileName reports whether name carries the script extension and
// something before it. The comparison is case-sensitive.
func isScriptFileName(name string) bool {
	return len(name) > len(zocbuild.ScriptFileExtension) &&
		strings.HasSuffix(name, zocbuild.ScriptFileExtension)
}

// objectNameFromFile strips the script extension from a file name.
func objectNameFromFile(name string) string {
	return strings.TrimSuffix(name, zocbuild.ScriptFileExtension)
}

// isProjectFile reports whether a root-level file belongs to the tool itself
// rather than to the catalog.
func isProjectFile(name string) bool {
	return name == zocbuild.ProjectFileName || name == zocbuild.EnvFileName
}
