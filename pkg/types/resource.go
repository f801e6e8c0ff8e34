package types

type ResourceStatus string

const (
	ResourceIdle    ResourceStatus = "idle"
	ResourceLoading ResourceStatus = "loading"
	ResourceSuccess ResourceStatus = "success"
	ResourceError   ResourceStatus = "error"
)

// Resource is the tri-state wrapper around an asynchronously fetched value.
// Data is meaningful only in the success state, Err only in the error state.
type Resource[T any] struct {
	Status ResourceStatus
	Data   T
	Err    error
}

func NewResource[T any]() Resource[T] {
	return Resource[T]{Status: ResourceIdle}
}

func (r Resource[T]) Loading() Resource[T] {
	r.Status = ResourceLoading
	r.Err = nil
	return r
}

// Succeed keeps no stale error and replaces the data wholesale.
func (r Resource[T]) Succeed(data T) Resource[T] {
	return Resource[T]{Status: ResourceSuccess, Data: data}
}

// Fail preserves the previous data so callers can keep rendering the last
// good value behind an error banner.
func (r Resource[T]) Fail(err error) Resource[T] {
	r.Status = ResourceError
	r.Err = err
	return r
}
