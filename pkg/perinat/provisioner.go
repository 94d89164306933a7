package perinat

import "context"

// SchemaProvisioner prepares the warehouse layout before a bulk load.
//
// Thread-Safety: Implementations should be stateless; thread safety depends
// on the injected DBConnection.
type SchemaProvisioner interface {
	// CreateSchemas creates the warehouse schemas if they do not exist.
	CreateSchemas(ctx context.Context, conn DBConnection) error

	// RecreateRawTables drops and recreates the named raw tables, destroying
	// previously loaded rows.
	RecreateRawTables(ctx context.Context, conn DBConnection, tables []string) error
}
