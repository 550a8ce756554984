// Package repository implements the data access layer for the Shows API.
//
// Repositories sit on top of a database.Store and translate between the
// store's schemaless records and model structs.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database.Store
//   - Lookups return (nil, nil) when a record does not exist
//   - Records are converted to models with a JSON round trip
//
// # Example Usage
//
//	repo := NewShowRepository(store)
//	show, err := repo.GetByID(ctx, 3)
//	if err != nil {
//	    return err
//	}
//	if show == nil {
//	    // Handle not found
//	}
package repository
