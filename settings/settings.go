/*
 * settings.go, part of gochemio.
 *
 *
 * Copyright 2026 The gochemio authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package settings holds the options readers and writers take (IOSettings),
//and loads them from configuration files and the environment with viper.
package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	chem "github.com/rmera/gochemio"
)

//envPrefix is the prefix of the environment variables that override settings,
//i.e. GOCHEMIO_MODE or GOCHEMIO_GAUSSIAN_BASIS.
const envPrefix = "GOCHEMIO"

//DefaultHeaderBudget is the number of characters the format factory reads
//before giving up on finding a match.
const DefaultHeaderBudget = 65536

//Gaussian contains the options of the Gaussian input writer.
type Gaussian struct {
	Method     string `mapstructure:"method"`
	Basis      string `mapstructure:"basis"`
	Command    string `mapstructure:"command"` //i.e. "opt", "freq", "sp"
	Memory     string `mapstructure:"memory"`  //i.e. "2GB", empty for none
	ProcShared int    `mapstructure:"proc_shared"`
	Comment    string `mapstructure:"comment"`
}

//RSS contains the channel information of the CMLRSS writer.
type RSS struct {
	Title       string `mapstructure:"title"`
	Link        string `mapstructure:"link"`
	Description string `mapstructure:"description"`
	Creator     string `mapstructure:"creator"`
	Publisher   string `mapstructure:"publisher"`
}

//Settings is the full set of reader and writer options.
type Settings struct {
	//Mode is "relaxed" (default) or "strict".
	Mode         string `mapstructure:"mode"`
	HeaderBudget int    `mapstructure:"header_budget"`
	//Program is the program name written in MDL headers.
	Program                string   `mapstructure:"program"`
	WriteAromaticBondTypes bool     `mapstructure:"write_aromatic_bond_types"`
	ForceWrite2D           bool     `mapstructure:"force_write_2d"`
	SDFields               []string `mapstructure:"sd_fields"` //properties written as SD fields, all if empty
	Gaussian               Gaussian `mapstructure:"gaussian"`
	RSS                    RSS      `mapstructure:"rss"`
}

//ReaderMode returns the Mode as a chem.Mode.
func (S Settings) ReaderMode() chem.Mode {
	return chem.ParseMode(S.Mode)
}

//Validate checks the settings for values no reader or writer can use.
func (S Settings) Validate() error {
	if m := strings.ToLower(S.Mode); m != "strict" && m != "relaxed" {
		return fmt.Errorf("settings: invalid mode %q (want strict or relaxed)", S.Mode)
	}
	if S.HeaderBudget <= 0 {
		return fmt.Errorf("settings: header budget must be positive, got %d", S.HeaderBudget)
	}
	if S.Gaussian.ProcShared < 0 {
		return fmt.Errorf("settings: gaussian.proc_shared can't be negative")
	}
	return nil
}

var defaults = map[string]interface{}{
	"mode":                      "relaxed",
	"header_budget":             DefaultHeaderBudget,
	"program":                   "gochemio",
	"write_aromatic_bond_types": false,
	"force_write_2d":            false,
	"sd_fields":                 []string{},
	"gaussian.method":           "b3lyp",
	"gaussian.basis":            "6-31g",
	"gaussian.command":          "opt",
	"gaussian.memory":           "",
	"gaussian.proc_shared":      0,
	"gaussian.comment":          "",
	"rss.title":                 "gochemio feed",
	"rss.link":                  "",
	"rss.description":           "",
	"rss.creator":               "",
	"rss.publisher":             "",
}

//newViper builds a viper instance with the defaults, the GOCHEMIO_ env prefix, and
//a key replacer that maps "." to "_" so "gaussian.basis" is GOCHEMIO_GAUSSIAN_BASIS.
func newViper(env bool) *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if env {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

func unmarshal(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("settings: failed to unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

var (
	defOnce sync.Once
	def     Settings
)

//Default returns the default settings. The environment is not read.
func Default() Settings {
	defOnce.Do(func() {
		var err error
		def, err = unmarshal(newViper(false))
		if err != nil {
			panic("settings: defaults don't validate: " + err.Error()) //can only be a programming error
		}
	})
	s := def
	s.SDFields = append([]string{}, def.SDFields...)
	return s
}

//Load reads the settings file at path (YAML, TOML or JSON, by extension),
//applies GOCHEMIO_* environment overrides and the defaults for everything else.
func Load(path string) (Settings, error) {
	v := newViper(true)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("settings: failed to read %q: %w", path, err)
	}
	return unmarshal(v)
}

//FromEnv builds the settings from the defaults and the GOCHEMIO_* environment variables.
func FromEnv() (Settings, error) {
	return unmarshal(newViper(true))
}
