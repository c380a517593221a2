// Package config finds and reads ranges files and turns them into a
// strategy. Files are TOML by default; a ".hcl" extension selects HCL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflop-trainer/internal/strategy"
)

// tomlFile mirrors the layout of ranges.toml
type tomlFile struct {
	UnopenedRaise map[string]tomlOpen    `toml:"unopened_raise"`
	BBDefense     map[string]tomlDefense `toml:"bb_defense"`
	Generic       *tomlGeneric           `toml:"generic"`
}

type tomlOpen struct {
	Range string `toml:"range"`
}

type tomlDefense struct {
	CallRange  string `toml:"call_range"`
	RaiseRange string `toml:"raise_range"`
}

type tomlGeneric struct {
	AllowedSpotTypes []string `toml:"allowed_spot_types"`
}

// hclFile mirrors the layout of ranges.hcl
type hclFile struct {
	Open             []hclOpen    `hcl:"open,block"`
	BBDefense        []hclDefense `hcl:"bb_defense,block"`
	AllowedSpotTypes *[]string    `hcl:"allowed_spot_types,optional"`
}

type hclOpen struct {
	Position string `hcl:"position,label"`
	Range    string `hcl:"range"`
}

type hclDefense struct {
	Opener     string `hcl:"opener,label"`
	CallRange  string `hcl:"call_range,optional"`
	RaiseRange string `hcl:"raise_range,optional"`
}

// Loader reads ranges files
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader that reports ignored keys to logger
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{logger: logger.WithPrefix("config")}
}

// Load reads the ranges file at path and builds its strategy
func (l *Loader) Load(path string) (*strategy.Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ranges file: %w", err)
	}

	var raw strategy.Raw
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		raw, err = DecodeHCL(data, path)
	} else {
		raw, err = l.decodeTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := strategy.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Info("Loaded ranges",
		"path", path,
		"open_ranges", len(raw.OpenRaise),
		"bb_defense_ranges", len(raw.BBDefense),
		"situations", s.NumAllowed())
	return s, nil
}

func (l *Loader) decodeTOML(data []byte) (strategy.Raw, error) {
	raw, undecoded, err := decodeTOML(data)
	if err != nil {
		return strategy.Raw{}, err
	}
	for _, key := range undecoded {
		l.logger.Warn("Ignoring unknown key in ranges file", "key", key)
	}
	return raw, nil
}

// DecodeTOML parses ranges.toml content into an unparsed strategy
func DecodeTOML(data []byte) (strategy.Raw, error) {
	raw, _, err := decodeTOML(data)
	return raw, err
}

func decodeTOML(data []byte) (strategy.Raw, []string, error) {
	var file tomlFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return strategy.Raw{}, nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	raw := strategy.Raw{
		OpenRaise: make(map[string]string, len(file.UnopenedRaise)),
		BBDefense: make(map[string]strategy.DefenseRanges, len(file.BBDefense)),
	}
	for pos, detail := range file.UnopenedRaise {
		raw.OpenRaise[pos] = detail.Range
	}
	for pos, detail := range file.BBDefense {
		raw.BBDefense[pos] = strategy.DefenseRanges{Call: detail.CallRange, Raise: detail.RaiseRange}
	}
	if file.Generic != nil && md.IsDefined("generic", "allowed_spot_types") {
		raw.Allowed = nonNil(file.Generic.AllowedSpotTypes)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return raw, undecoded, nil
}

// DecodeHCL parses ranges.hcl content into an unparsed strategy. filename is
// only used in diagnostics.
func DecodeHCL(data []byte, filename string) (strategy.Raw, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return strategy.Raw{}, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var decoded hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return strategy.Raw{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	raw := strategy.Raw{
		OpenRaise: make(map[string]string, len(decoded.Open)),
		BBDefense: make(map[string]strategy.DefenseRanges, len(decoded.BBDefense)),
	}
	for _, block := range decoded.Open {
		if _, dup := raw.OpenRaise[block.Position]; dup {
			return strategy.Raw{}, fmt.Errorf("duplicate open block for %q", block.Position)
		}
		raw.OpenRaise[block.Position] = block.Range
	}
	for _, block := range decoded.BBDefense {
		if _, dup := raw.BBDefense[block.Opener]; dup {
			return strategy.Raw{}, fmt.Errorf("duplicate bb_defense block for %q", block.Opener)
		}
		raw.BBDefense[block.Opener] = strategy.DefenseRanges{Call: block.CallRange, Raise: block.RaiseRange}
	}
	if decoded.AllowedSpotTypes != nil {
		raw.Allowed = nonNil(*decoded.AllowedSpotTypes)
	}
	return raw, nil
}

// nonNil keeps an explicitly empty list distinguishable from an absent one
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
