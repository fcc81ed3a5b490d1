// Package content holds the static command, challenge and tip tables.
//
// Tables are YAML documents embedded at build time. Each carries a semver
// format version; only major version v1 is understood.
package content

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/termcommander/internal/profile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// FormatMajor is the table format major version this build reads.
const FormatMajor = "v1"

// ErrNotFound is returned when a command or challenge does not exist.
var ErrNotFound = errors.New("not found")

// Command describes one shell command.
type Command struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Description string   `yaml:"description"`
	Usage       string   `yaml:"usage"`
	Examples    []string `yaml:"examples"`
	Tip         string   `yaml:"tip,omitempty"`
}

// Matches reports whether name is the command name or one of its aliases.
func (c Command) Matches(name string) bool {
	if c.Name == name {
		return true
	}
	for _, a := range c.Aliases {
		if a == name {
			return true
		}
	}
	return false
}

// Label renders "name (alias, alias)".
func (c Command) Label() string {
	if len(c.Aliases) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, strings.Join(c.Aliases, ", "))
}

// Challenge is a single task the learner answers with one command line.
type Challenge struct {
	ID             string             `yaml:"id"`
	Title          string             `yaml:"title"`
	Description    string             `yaml:"description"`
	Hint           string             `yaml:"hint"`
	AdditionalHint string             `yaml:"additionalHint,omitempty"`
	Solution       string             `yaml:"solution"`
	Difficulty     profile.Difficulty `yaml:"difficulty"`
}

type commandFile struct {
	Version string                   `yaml:"version"`
	Systems map[profile.OS][]Command `yaml:"systems"`
}

type challengeFile struct {
	Version string                     `yaml:"version"`
	Systems map[profile.OS][]Challenge `yaml:"systems"`
}

type tipFile struct {
	Version string                  `yaml:"version"`
	Systems map[profile.OS][]string `yaml:"systems"`
}

// Catalog is the loaded set of tables.
type Catalog struct {
	commands   map[profile.OS][]Command
	challenges map[profile.OS][]Challenge
	tips       map[profile.OS][]string
	byID       map[string]Challenge
}

// Load parses the embedded tables.
func Load() (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		b, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return b, nil
	}
	cmds, err := read("commands.yaml")
	if err != nil {
		return nil, err
	}
	chals, err := read("challenges.yaml")
	if err != nil {
		return nil, err
	}
	tips, err := read("tips.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(cmds, chals, tips)
}

// Parse builds a Catalog from raw YAML tables and validates it.
func Parse(commandsYAML, challengesYAML, tipsYAML []byte) (*Catalog, error) {
	var cf commandFile
	if err := yaml.Unmarshal(commandsYAML, &cf); err != nil {
		return nil, fmt.Errorf("parse commands: %w", err)
	}
	var chf challengeFile
	if err := yaml.Unmarshal(challengesYAML, &chf); err != nil {
		return nil, fmt.Errorf("parse challenges: %w", err)
	}
	var tf tipFile
	if err := yaml.Unmarshal(tipsYAML, &tf); err != nil {
		return nil, fmt.Errorf("parse tips: %w", err)
	}

	for name, v := range map[string]string{
		"commands":   cf.Version,
		"challenges": chf.Version,
		"tips":       tf.Version,
	} {
		if err := checkVersion(v); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	c := &Catalog{
		commands:   cf.Systems,
		challenges: chf.Systems,
		tips:       tf.Systems,
		byID:       make(map[string]Challenge),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid format version %q", v)
	}
	if semver.Major(v) != FormatMajor {
		return fmt.Errorf("unsupported format version %s (want %s.x)", v, FormatMajor)
	}
	return nil
}

// Validate checks table integrity and builds the challenge index.
// Command names are unique per OS; challenge IDs are unique across all OSes.
// Alias collisions are allowed and resolve to the first command in table order.
func (c *Catalog) Validate() error {
	for os := range c.commands {
		if !os.Valid() {
			return fmt.Errorf("commands: unknown os %q", os)
		}
	}
	for os, cmds := range c.commands {
		seen := make(map[string]bool, len(cmds))
		for i, cmd := range cmds {
			if cmd.Name == "" {
				return fmt.Errorf("commands[%s][%d]: empty name", os, i)
			}
			if seen[cmd.Name] {
				return fmt.Errorf("commands[%s]: duplicate name %q", os, cmd.Name)
			}
			seen[cmd.Name] = true
		}
	}

	c.byID = make(map[string]Challenge)
	for os, chals := range c.challenges {
		if !os.Valid() {
			return fmt.Errorf("challenges: unknown os %q", os)
		}
		for i, ch := range chals {
			switch {
			case ch.ID == "":
				return fmt.Errorf("challenges[%s][%d]: empty id", os, i)
			case strings.TrimSpace(ch.Solution) == "":
				return fmt.Errorf("challenge %s: empty solution", ch.ID)
			case !ch.Difficulty.Valid():
				return fmt.Errorf("challenge %s: unknown difficulty %q", ch.ID, ch.Difficulty)
			}
			if _, dup := c.byID[ch.ID]; dup {
				return fmt.Errorf("challenge %s: duplicate id", ch.ID)
			}
			c.byID[ch.ID] = ch
		}
	}

	for os := range c.tips {
		if !os.Valid() {
			return fmt.Errorf("tips: unknown os %q", os)
		}
	}
	return nil
}

// Commands returns the command table for os in table order.
func (c *Catalog) Commands(os profile.OS) []Command {
	return c.commands[os]
}

// FindCommand resolves name against command names and aliases.
// The first match in table order wins.
func (c *Catalog) FindCommand(os profile.OS, name string) (Command, error) {
	for _, cmd := range c.commands[os] {
		if cmd.Matches(name) {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("command %q on %s: %w", name, os, ErrNotFound)
}

// Suggest returns up to limit commands whose name or any alias contains
// fragment. Matching is case-sensitive.
func (c *Catalog) Suggest(os profile.OS, fragment string, limit int) []Command {
	var out []Command
	for _, cmd := range c.commands[os] {
		if len(out) == limit {
			break
		}
		if strings.Contains(cmd.Name, fragment) || anyContains(cmd.Aliases, fragment) {
			out = append(out, cmd)
		}
	}
	return out
}

// Search matches a lower-cased, trimmed term against command names,
// lower-cased descriptions and aliases.
func (c *Catalog) Search(os profile.OS, term string) []Command {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []Command
	for _, cmd := range c.commands[os] {
		if strings.Contains(cmd.Name, term) ||
			strings.Contains(strings.ToLower(cmd.Description), term) ||
			anyContains(cmd.Aliases, term) {
			out = append(out, cmd)
		}
	}
	return out
}

// Challenges returns the challenge table for os in table order.
func (c *Catalog) Challenges(os profile.OS) []Challenge {
	return c.challenges[os]
}

// Challenge looks up a challenge by id.
func (c *Catalog) Challenge(id string) (Challenge, error) {
	ch, ok := c.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("challenge %q: %w", id, ErrNotFound)
	}
	return ch, nil
}

// Tips returns the tips for os.
func (c *Catalog) Tips(os profile.OS) []string {
	return c.tips[os]
}

func anyContains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
