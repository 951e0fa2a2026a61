package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
)

// ReadJSONFile reads a JSON file and unmarshals its contents into target
func ReadJSONFile(path string, target interface{}) error {
	if !fsutil.FileExists(path) {
		return fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}

	return nil
}

// WriteJSONFile writes a value to a JSON file with indentation
func WriteJSONFile(path string, value interface{}) error {
	jsonData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	return fsutil.WriteFile(path, jsonData, 0644)
}
