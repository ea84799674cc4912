package store

import "errors"

// Sentinel errors returned by stores and repositories. Match them with
// [errors.Is].
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found in secure store")

	// ErrDecodingNotes is returned when the notes blob is not a valid JSON
	// array of notes.
	ErrDecodingNotes = errors.New("failed to decode notes blob")

	// ErrEncodingNotes is returned when the notes collection can not be
	// serialised.
	ErrEncodingNotes = errors.New("failed to encode notes blob")

	// ErrSealingValue is returned when the encryption layer fails to seal
	// or open a value.
	ErrSealingValue = errors.New("failed to seal secure store value")

	// ErrUnsupportedDSN is returned for DSNs that map to no backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors, wrapped by the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
