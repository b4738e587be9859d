package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zocbuild/zocbuild/internal/files/filesystem"
	"github.com/zocbuild/zocbuild/internal/repository"
	"github.com/zocbuild/zocbuild/internal/scaffold"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// logFormats contains valid --log-format values for shell completion.
var logFormats = []string{"text", "json"}

func init() {
	scanCmd.ValidArgsFunction = completeDirectories
	initCmd.ValidArgsFunction = completeDirectories
	showCmd.ValidArgsFunction = completeObjectRef

	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

func filterPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}

// completeTemplateNames provides shell completion for template names.
func completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(templates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for --log-format values.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(logFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeObjectRef completes show's <project_path> <type> <name> in turn.
// Names are the script files found in the type directory.
func completeObjectRef(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return nil, cobra.ShellCompDirectiveFilterDirs
	case 1:
		var names []string
		for _, t := range zocbuild.AllObjectTypes() {
			dir, _ := repository.DirectoryForObjectType(t)
			names = append(names, dir)
		}
		return filterPrefix(names, strings.ToLower(toComplete)), cobra.ShellCompDirectiveNoFileComp
	case 2:
		objectType, err := zocbuild.ParseDatabaseObjectType(args[1])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return filterPrefix(scriptNames(filesystem.NewOSFileSystem(), args[0], objectType), toComplete),
			cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// scriptNames lists object names in the type directory for objectType.
// Errors yield no names; completion must never fail loudly.
func scriptNames(fsys filesystem.FileSystemProvider, root string, objectType zocbuild.DatabaseObjectType) []string {
	rootDir, err := fsys.Open(root)
	if err != nil {
		return nil
	}
	dirs, err := rootDir.Directories()
	if err != nil {
		return nil
	}

	var names []string
	for _, dir := range dirs {
		if t, ok := repository.ObjectTypeForDirectory(dir.Name()); !ok || t != objectType {
			continue
		}
		files, err := dir.Files()
		if err != nil {
			continue
		}
		for _, f := range files {
			if filepath.Ext(f.Name()) == zocbuild.ScriptFileExtension {
				names = append(names, strings.TrimSuffix(f.Name(), zocbuild.ScriptFileExtension))
			}
		}
	}
	return names
}
