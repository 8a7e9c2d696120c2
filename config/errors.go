package config

import (
	"fmt"

	"github.com/pkg/errors"
)

func newConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

func newConfigValidationFieldRequiredError(path, field string) error {
	return newConfigValidationError(path, errors.Errorf("%q is required", field))
}

func indexedPath(field string, idx int) string {
	return fmt.Sprintf("%s.%d", field, idx)
}
