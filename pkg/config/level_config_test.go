package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLevelYAML = `
name: "test level"
spawnX: 820
goalX: -20
lanes: [100, 200, 300]
enemies:
  walker:
    health: 80
    speed: 40
    radius: 12
    reward: 10
obstacles:
  - {x: 400, y: 200, radius: 45}
waves:
  - {delay: 3, enemy: walker, count: 6, interval: 1.5}
`

func TestLoadLevelConfig(t *testing.T) {
	path := writeTempYAML(t, "level.yaml", validLevelYAML)

	cfg, err := LoadLevelConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test level", cfg.Name)
	assert.Equal(t, 820.0, cfg.SpawnX)
	assert.Equal(t, -20.0, cfg.GoalX)
	assert.Equal(t, []float64{100, 200, 300}, cfg.Lanes)

	walker, ok := cfg.GetEnemyStats("walker")
	require.True(t, ok)
	assert.Equal(t, 80, walker.Health)
	assert.Equal(t, 40.0, walker.Speed)
	assert.Equal(t, 10, walker.Reward)

	require.Len(t, cfg.Obstacles, 1)
	assert.Equal(t, 45.0, cfg.Obstacles[0].Radius)

	require.Len(t, cfg.Waves, 1)
	assert.Equal(t, "walker", cfg.Waves[0].Enemy)
	assert.Equal(t, 6, cfg.Waves[0].Count)
}

func TestLoadLevelConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"spawn behind goal", `
spawnX: 0
goalX: 100
lanes: [100]
enemies:
  walker: {health: 10, speed: 10, radius: 5}
`},
		{"no lanes", `
spawnX: 800
goalX: 0
lanes: []
enemies:
  walker: {health: 10, speed: 10, radius: 5}
`},
		{"no enemies", `
spawnX: 800
goalX: 0
lanes: [100]
enemies: {}
`},
		{"zero health enemy", `
spawnX: 800
goalX: 0
lanes: [100]
enemies:
  walker: {health: 0, speed: 10, radius: 5}
`},
		{"zero radius obstacle", `
spawnX: 800
goalX: 0
lanes: [100]
enemies:
  walker: {health: 10, speed: 10, radius: 5}
obstacles:
  - {x: 1, y: 1, radius: 0}
`},
		{"wave with unknown enemy", `
spawnX: 800
goalX: 0
lanes: [100]
enemies:
  walker: {health: 10, speed: 10, radius: 5}
waves:
  - {delay: 0, enemy: ghost, count: 1, interval: 1}
`},
		{"wave with zero count", `
spawnX: 800
goalX: 0
lanes: [100]
enemies:
  walker: {health: 10, speed: 10, radius: 5}
waves:
  - {delay: 0, enemy: walker, count: 0, interval: 1}
`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeTempYAML(t, "level.yaml", c.yaml)
			_, err := LoadLevelConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadLevelConfigShippedLevelParses(t *testing.T) {
	// The level shipped in data/ must always stay loadable.
	cfg, err := LoadLevelConfig("../../data/levels/level1.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Waves)
	for _, wave := range cfg.Waves {
		_, ok := cfg.GetEnemyStats(wave.Enemy)
		assert.True(t, ok, "wave references enemy %q", wave.Enemy)
	}
}

func TestLoadShippedTowerStats(t *testing.T) {
	cfg, err := LoadTowerStats("../../data/towers.yaml")
	require.NoError(t, err)
	_, ok := cfg.GetTowerStats("cannon")
	assert.True(t, ok)

	// rapid omits speed in the shipped file; the default must kick in.
	rapid, ok := cfg.GetTowerStats("rapid")
	require.True(t, ok)
	assert.Equal(t, float64(DefaultBulletSpeed), rapid.Speed)
}
