// Package conduct normalizes loosely structured conduct-point worksheets
// into typed record tables and answers day, date-range, and class-group
// queries over them.
//
// The package is pure: building a table and querying it are functions of
// their inputs only. Retrieval, caching, and rendering live in collaborator
// packages.
package conduct
