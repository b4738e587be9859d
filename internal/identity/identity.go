// Package identity derives stable identifiers for database objects.
package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// NamespaceObjectIdentity is the UUID v5 namespace for object identities,
// derived from the URL namespace and "zocbuild.dev/object-identity/v1".
var NamespaceObjectIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("zocbuild.dev/object-identity/v1"))

// ForObject creates a deterministic UUID v5 for a database object.
// Identity is case-insensitive, matching SQL Server's default collation,
// so "Sales.dbo.Orders_Get" and "sales.dbo.orders_get" share an ID.
func ForObject(obj zocbuild.ObjectIdentity) uuid.UUID {
	return uuid.NewSHA1(NamespaceObjectIdentity, []byte(canonical(obj)))
}

// canonical renders database/schema/type/name in lowercase, slash-separated.
// The type participates so a table and a view with the same name differ.
func canonical(obj zocbuild.ObjectIdentity) string {
	return strings.ToLower(strings.Join([]string{
		obj.DatabaseName,
		obj.SchemaName,
		obj.ObjectType.String(),
		obj.ObjectName,
	}, "/"))
}
