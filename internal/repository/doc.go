// Package repository implements the file-system script repository.
//
// A repository root holds one subdirectory per database object type:
//
//	<root>/
//	  function/   procedure/   table/   trigger/   type/   view/
//
// Each type directory holds one .sql file per object, named after the
// object. GetAllScripts lists the root, filters out everything that does
// not follow this layout (one diagnostic per filtered file), reads and
// parses the rest concurrently, and returns the catalog. Per-file problems
// never fail the scan; only accessor failures do.
package repository
