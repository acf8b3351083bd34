package tracker

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// DecodeRates reads a RateSet from YAML. A missing default section falls
// back to the built-in defaults, so a settings file may list only the
// countries it cares about.
func DecodeRates(r io.Reader) (RateSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RateSet{}, fmt.Errorf("cannot read rates: %w", err)
	}
	set := RateSet{}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return RateSet{}, fmt.Errorf("cannot parse rates: %w", err)
	}
	if set.Default == (RateConfig{}) {
		set.Default = DefaultRates().Default
	}
	return set, nil
}

// EncodeRates writes a RateSet as YAML.
func EncodeRates(w io.Writer, set RateSet) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("cannot encode rates: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write rates: %w", err)
	}
	return nil
}
