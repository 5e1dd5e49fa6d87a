package usecase

import (
	"errors"
	"fmt"
)

// DataSourceError is a transport/store failure: the data API returned a
// non-success response or the call itself failed. Aggregations that need
// every source abort on the first one of these, no partial results.
type DataSourceError struct {
	Collection string
	Status     int
	Body       string
	Err        error
}

func (e *DataSourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("data source %s unavailable (status %d): %s", e.Collection, e.Status, e.Body)
	}
	return fmt.Sprintf("data source %s unavailable: %v", e.Collection, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

func IsDataSourceError(err error) bool {
	var target *DataSourceError
	return errors.As(err, &target)
}

// ShapeError means a collection response was not the JSON array we
// expected (the store answered with an error object instead). Summary
// numbers computed over a half-shaped snapshot would be silently wrong,
// so this surfaces to the caller like any other source failure.
type ShapeError struct {
	Collection string
	Detail     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("collection %s returned unexpected shape: %s", e.Collection, e.Detail)
}

func IsShapeError(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}
