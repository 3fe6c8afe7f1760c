package config

import (
	"fmt"
	"os"

	"github.com/ezBadminton/gobracket/core"
	"gopkg.in/yaml.v3"
)

type teamEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type teamFile struct {
	Teams []teamEntry `yaml:"teams"`
}

// Reads the entry list of a tournament. The order of the
// teams in the file is their seed order.
//
//	teams:
//	  - id: smash
//	    name: Smash Bros
//	  - name: Net Ninjas
func LoadTeams(path string) ([]core.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}

	var file teamFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse teams: %w", err)
	}

	teams := make([]core.Team, 0, len(file.Teams))
	for _, e := range file.Teams {
		teams = append(teams, core.Team{ID: e.ID, Name: e.Name})
	}

	return teams, nil
}
