package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rishi/placement-autofill/internal/types"
)

// FromFile loads a single profile from a standalone JSON file of field-name
// to value pairs. Used for ad hoc runs that bypass the named store.
func FromFile(path string) (types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return Clean(p), nil
}

// Clean drops empty field names and trims values, returning a new profile.
func Clean(p types.Profile) types.Profile {
	out := make(types.Profile, len(p))
	for key, value := range p {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}
