package rowgraph

// NotFoundReason is the symbolic reason carried by a NotFoundError
type NotFoundReason string

// ReasonEmptyResponse indicates that a required result was empty
const ReasonEmptyResponse NotFoundReason = "EmptyResponse"

// NotFoundError is the error returned by GraphMapper.MapOne (and GraphMapper.WriteMappedOne)
// when the mapped result is empty and the result is required
type NotFoundError struct {
	Reason NotFoundReason
}

func (e *NotFoundError) Error() string {
	return "not found: " + string(e.Reason)
}

// ConfigurationError is the error returned when a ResultMap registry is defective -
// duplicate or empty map ids, references to unknown map ids or cyclic references
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
