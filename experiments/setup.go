package experiments

import (
	"os"

	"senet/experiments/metrics"
	"senet/meta"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSetup reads an experiment setup from a YAML file, e.g.
//
//	name: depth
//	games: 20
//	agents:
//	  - {id: 1, config: "expectimax:depth=1"}
//	  - {id: 2, config: "expectimax:depth=3"}
//	matchups: [[1, 2]]
func LoadSetup(path string) (metrics.Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metrics.Setup{}, errors.Wrapf(err, "failed to read setup %q", path)
	}
	var setup metrics.Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return metrics.Setup{}, errors.Wrapf(err, "failed to parse setup %q", path)
	}
	applyDefaults(&setup)
	if err := validate(setup); err != nil {
		return metrics.Setup{}, errors.WithMessagef(err, "invalid setup %q", path)
	}
	return setup, nil
}

func applyDefaults(setup *metrics.Setup) {
	if setup.Name == "" {
		setup.Name = "experiment"
	}
	if setup.NumGames <= 0 {
		setup.NumGames = meta.NUM_GAMES
	}
	if setup.Goroutines <= 0 {
		setup.Goroutines = meta.GO_ROUTINES
	}
	if setup.MaxTurns <= 0 {
		setup.MaxTurns = meta.MAX_TURNS
	}
}

func validate(setup metrics.Setup) error {
	if len(setup.Agents) == 0 {
		return errors.New("no agents")
	}
	ids := make(map[int]bool, len(setup.Agents))
	for _, a := range setup.Agents {
		if ids[a.ID] {
			return errors.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
	}
	if len(setup.Matchups) == 0 {
		return errors.New("no matchups")
	}
	for i, matchup := range setup.Matchups {
		if len(matchup) != 2 {
			return errors.Errorf("matchup %d needs exactly two agents, got %d", i+1, len(matchup))
		}
		for _, id := range matchup {
			if !ids[id] {
				return errors.Errorf("matchup %d uses unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}
