// Package manifest propagates shared metadata between the JSON
// manifests of a Modelica library distribution.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// Fields copied from the source manifest into the destination's
// metadata object.
var syncedFields = []string{"version", "license", "description"}

// Sync copies the synced fields from the manifest at srcPath into the
// "metadata" object of the manifest at dstPath, creating that object
// when absent and preserving every other field in both files. It
// reports whether the destination was rewritten.
func Sync(srcPath, dstPath string) (bool, error) {
	src, err := readManifest(srcPath)
	if err != nil {
		return false, err
	}
	dst, err := readManifest(dstPath)
	if err != nil {
		return false, err
	}

	meta, ok := dst["metadata"].(map[string]any)
	if !ok {
		meta = make(map[string]any)
	}

	changed := false
	for _, field := range syncedFields {
		value, ok := src[field]
		if !ok {
			continue
		}
		if reflect.DeepEqual(meta[field], value) {
			continue
		}
		meta[field] = value
		changed = true
	}
	if !changed {
		return false, nil
	}
	dst["metadata"] = meta

	return true, writeManifest(dstPath, dst)
}

func readManifest(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
	}
	return doc, nil
}

func writeManifest(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: failed to encode JSON: %w", path, err)
	}
	data = append(data, '\n')

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
