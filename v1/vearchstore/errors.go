package vearchstore

import "errors"

// Common vearchstore errors
var (
	// ErrMissingSchemaName is returned when a required schema name is empty.
	ErrMissingSchemaName = errors.New("vearchstore: missing schema name")

	// ErrUnknownPropertyType is returned when a metadata field's declared
	// type is outside the closed {string, float, integer, vector} set.
	ErrUnknownPropertyType = errors.New("vearchstore: unknown property type")

	// ErrUnconfiguredField is returned when a metadata field name has no
	// entry in the schema's property map.
	ErrUnconfiguredField = errors.New("vearchstore: metadata field not configured in schema properties")

	// ErrEmptyID is returned when a document id is empty.
	ErrEmptyID = errors.New("vearchstore: id must not be empty")

	// ErrEmptyEmbedding is returned when an embedding has no components.
	ErrEmptyEmbedding = errors.New("vearchstore: embedding must not be empty")

	// ErrEmptyBatch is returned when a batch operation receives no inputs.
	ErrEmptyBatch = errors.New("vearchstore: batch must not be empty")

	// ErrSizeMismatch is returned when ids, embeddings and segments have
	// unequal lengths.
	ErrSizeMismatch = errors.New("vearchstore: ids, embeddings and segments must have equal lengths")

	// ErrMissingVectorField is returned when a search hit's source lacks
	// the configured embedding field.
	ErrMissingVectorField = errors.New("vearchstore: hit source is missing the embedding field")

	// ErrMalformedVectorField is returned when a hit's embedding field does
	// not hold a numeric feature list.
	ErrMalformedVectorField = errors.New("vearchstore: hit embedding field is malformed")
)

// IsConfigurationError checks if the error is a schema configuration error:
// an unknown property type, an unconfigured metadata field, or a missing
// schema name. These are reported before any network call is attempted.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownPropertyType) ||
		errors.Is(err, ErrUnconfiguredField) ||
		errors.Is(err, ErrMissingSchemaName)
}

// IsValidationError checks if the error is an input validation error:
// empty ids, empty embeddings, empty batches or size mismatches. These are
// reported before any network call is attempted.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyID) ||
		errors.Is(err, ErrEmptyEmbedding) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrSizeMismatch)
}

// IsTranslationError checks if the error came from translating a search hit
// whose vector field was absent or malformed.
func IsTranslationError(err error) bool {
	return errors.Is(err, ErrMissingVectorField) ||
		errors.Is(err, ErrMalformedVectorField)
}
