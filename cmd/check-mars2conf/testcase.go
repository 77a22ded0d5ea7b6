package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/mars2grib"
)

// testCase is one YAML-described mars2grib.Encoder invocation plus the
// section/template numbers a correct resolution must produce. Mars/Aux
// values keep their native YAML type (int, float64, string, bool) so
// numeric keys like "param" or "levelist" reach the matchers as dict.Long,
// not dict.String.
type testCase struct {
	Name    string                 `yaml:"name"`
	Mars    map[string]interface{} `yaml:"mars"`
	Aux     map[string]interface{} `yaml:"aux"`
	Options optionsOverride        `yaml:"options"`
	Expect  map[string]int         `yaml:"expect"` // "section3" -> templateNumber, etc.
	Values  []float64              `yaml:"values"`
}

// optionsOverride mirrors mars2grib.Options with pointer fields so a YAML
// case can leave any option unset and fall back to DefaultOptions.
type optionsOverride struct {
	ApplyChecks                   *bool `yaml:"applyChecks"`
	EnableOverride                *bool `yaml:"enableOverride"`
	EnableBitsPerValueCompression *bool `yaml:"enableBitsPerValueCompression"`
	SanitizeMars                  *bool `yaml:"sanitizeMars"`
	SanitizeMisc                  *bool `yaml:"sanitizeMisc"`
	FixMarsGrid                   *bool `yaml:"fixMarsGrid"`
}

// testSuite is the top-level YAML document: a named list of cases.
type testSuite struct {
	Cases []testCase `yaml:"cases"`
}

func loadSuite(path string) (*testSuite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite testSuite
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (o optionsOverride) resolve() mars2grib.Options {
	opts := mars2grib.DefaultOptions()
	if o.ApplyChecks != nil {
		opts.ApplyChecks = *o.ApplyChecks
	}
	if o.EnableOverride != nil {
		opts.EnableOverride = *o.EnableOverride
	}
	if o.EnableBitsPerValueCompression != nil {
		opts.EnableBitsPerValueCompression = *o.EnableBitsPerValueCompression
	}
	if o.SanitizeMars != nil {
		opts.SanitizeMars = *o.SanitizeMars
	}
	if o.SanitizeMisc != nil {
		opts.SanitizeMisc = *o.SanitizeMisc
	}
	if o.FixMarsGrid != nil {
		opts.FixMarsGrid = *o.FixMarsGrid
	}
	return opts
}

func (tc testCase) marsDict() dict.Dict {
	d := dict.NewMarsDict()
	for k, v := range tc.Mars {
		d.Set(k, toValue(v))
	}
	return d
}

func (tc testCase) auxDict() dict.Dict {
	d := dict.NewAuxDict()
	for k, v := range tc.Aux {
		d.Set(k, toValue(v))
	}
	return d
}

// toValue maps a YAML-decoded scalar onto the dict.Value kind a matcher
// expects: whole numbers as Long (param ids, levelists), fractional
// numbers as Double, booleans as Bool (Long 1/0), everything else as String.
func toValue(v interface{}) dict.Value {
	switch t := v.(type) {
	case int:
		return dict.Long(int64(t))
	case int64:
		return dict.Long(t)
	case float64:
		return dict.Double(t)
	case bool:
		return dict.Bool(t)
	case string:
		return dict.String(t)
	default:
		return dict.String(fmt.Sprintf("%v", t))
	}
}
