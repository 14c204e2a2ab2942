// Package mock generates synthetic datasets from named OpenAPI schemas.
//
// Generation runs in two phases. Every schema first gets its records from a
// ValueGenerator, then every record is scanned for fields that look like
// foreign keys (userId, order_id, ...) and those fields are rewritten to the
// id of a random record of the matching schema.
//
// Resolution is a single pass in schema insertion order. A schema resolved
// earlier is already rewritten when a later one borrows from it; transitive
// chains are not followed.
package mock
