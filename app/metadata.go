// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// Metadata describes an application. It is the in-memory form of the
// [app] table of a terrazzo.toml manifest.
type Metadata struct {
	// Name is the machine-friendly name, e.g. "tilecounter".
	Name string `toml:"name" validate:"required"`
	// FormalName is the human-facing name, e.g. "Tile Counter".
	FormalName string `toml:"formal_name" validate:"required"`
	// ID is the reverse-DNS bundle identifier.
	ID          string `toml:"id" validate:"required"`
	Author      string `toml:"author"`
	Version     string `toml:"version" validate:"omitempty,semver"`
	Description string `toml:"description"`
	HomePage    string `toml:"home_page" validate:"omitempty,url"`
}

type manifest struct {
	App Metadata `toml:"app"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the metadata's required fields and formats.
func (m Metadata) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("app: invalid metadata: %w", err)
	}
	return nil
}

// Info converts the metadata to the form backends consume.
func (m Metadata) Info() backend.AppInfo {
	return backend.AppInfo{
		Name:       m.Name,
		FormalName: m.FormalName,
		ID:         m.ID,
		Author:     m.Author,
		Version:    m.Version,
		HomePage:   m.HomePage,
	}
}

// LoadManifest reads and validates the [app] table of a terrazzo.toml
// manifest file.
func LoadManifest(path string) (Metadata, error) {
	var mf manifest
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return Metadata{}, fmt.Errorf("app: reading manifest %s: %w", path, err)
	}
	if err := mf.App.Validate(); err != nil {
		return Metadata{}, fmt.Errorf("app: manifest %s: %w", path, err)
	}
	return mf.App, nil
}

// ParseManifest parses and validates manifest bytes.
func ParseManifest(data []byte) (Metadata, error) {
	var mf manifest
	if err := toml.Unmarshal(data, &mf); err != nil {
		return Metadata{}, fmt.Errorf("app: parsing manifest: %w", err)
	}
	if err := mf.App.Validate(); err != nil {
		return Metadata{}, err
	}
	return mf.App, nil
}
