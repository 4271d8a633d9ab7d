// Package importer reads and writes the flat JSON files the time clock has
// always kept: stempel.json, settings.json and urlaub.json.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	PunchFileName    = "stempel.json"
	SettingsFileName = "settings.json"
	LeaveFileName    = "urlaub.json"
)

// Legacy kind spellings written to stempel.json.
const (
	LegacyStart = "Start"
	LegacyEnd   = "Ende"
)

// PunchRecord is one entry of stempel.json.
type PunchRecord struct {
	Typ        string `json:"typ"`
	Zeit       string `json:"zeit"`
	Homeoffice bool   `json:"homeoffice"`
}

// SettingsRecord is the content of settings.json.
type SettingsRecord struct {
	StartwertMinuten int    `json:"startwertMinuten"`
	StandDatum       string `json:"standDatum"`
	HomeofficeAktiv  bool   `json:"homeofficeAktiv"`
}

// LeaveRecord is one entry of urlaub.json.
type LeaveRecord struct {
	Von  string `json:"von"`
	Bis  string `json:"bis"`
	Tage int    `json:"tage"`
}

// Bundle is the full content of a legacy data directory. Settings is nil when
// settings.json was absent.
type Bundle struct {
	Punches  []PunchRecord
	Settings *SettingsRecord
	Leave    []LeaveRecord
}

// LoadBundleDir reads the three legacy files from dir. Missing files are
// treated as empty; a file that exists but cannot be parsed is an error.
func LoadBundleDir(dir string) (*Bundle, error) {
	var b Bundle
	if _, err := readJSONFile(filepath.Join(dir, PunchFileName), &b.Punches); err != nil {
		return nil, err
	}
	var settings SettingsRecord
	found, err := readJSONFile(filepath.Join(dir, SettingsFileName), &settings)
	if err != nil {
		return nil, err
	}
	if found {
		b.Settings = &settings
	}
	if _, err := readJSONFile(filepath.Join(dir, LeaveFileName), &b.Leave); err != nil {
		return nil, err
	}
	return &b, nil
}

// DecodeFile decodes one named legacy file into the bundle.
func (b *Bundle) DecodeFile(name string, data []byte) error {
	switch name {
	case PunchFileName:
		return decode(name, data, &b.Punches)
	case SettingsFileName:
		var s SettingsRecord
		if err := decode(name, data, &s); err != nil {
			return err
		}
		b.Settings = &s
		return nil
	case LeaveFileName:
		return decode(name, data, &b.Leave)
	default:
		return fmt.Errorf("unexpected file %q", name)
	}
}

func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := decode(filepath.Base(path), data, v); err != nil {
		return false, err
	}
	return true, nil
}

func decode(name string, data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
