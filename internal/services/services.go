// Package services contains the typed domain accessors: one method per
// backend endpoint, delegating to the resource client and normalizing the
// response envelope.
//
// Every accessor replicates the same convention: list endpoints return an
// empty slice when the envelope is unsuccessful or empty, single-entity
// fetches return nil for a missing resource, and transport/HTTP failures
// propagate as errors. Absence of data is a value, transport failure is an
// error.
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// ErrValidation marks input rejected client-side before any network call.
var ErrValidation = errors.New("validation failed")

func validationError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}

// decodeData unmarshals the envelope payload into dest. It returns
// (false, nil) when the envelope is unsuccessful or carries no data, so
// callers can map that to an empty list or a nil entity. A literal JSON
// null counts as no data; unmarshalling it would leave dest zero-valued
// and make a missing entity look present.
func decodeData(env *models.Envelope, dest any) (bool, error) {
	if env == nil || !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return false, fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
	}
	return true, nil
}
