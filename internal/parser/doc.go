// Package parser recognizes the object a T-SQL build script defines.
//
// TSQLParser does not parse SQL syntax. It tokenizes the script with a
// participle lexer, skips comments and preamble statements, and reads the
// first CREATE or ALTER header for a supported object type:
//
//	SET ANSI_NULLS ON
//	GO
//	CREATE OR ALTER PROCEDURE [dbo].[orders_get] @id int AS ...
//
// yields Procedure "orders_get" in schema "dbo".
//
// CachingParser memoizes any ScriptParser by content checksum.
package parser
