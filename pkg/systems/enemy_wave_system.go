package systems

import (
	"math"
	"sort"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/entities"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// EnemyWaveSystem spawns a ring of enemies around the player on a repeating timer.
//
// With MaxAlive set, the oldest enemies are despawned so that the wave fits under the cap.
type EnemyWaveSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.EnemyConfig
	spawns        *events.Queue[assets.SpawnMesh]
	despawns      *events.Queue[DespawnRequest]

	elapsed   float64
	wave      int
	nextOrder uint64
}

// NewEnemyWaveSystem creates the wave spawner.
func NewEnemyWaveSystem(em *ecs.EntityManager, cfg config.EnemyConfig, spawns *events.Queue[assets.SpawnMesh], despawns *events.Queue[DespawnRequest]) *EnemyWaveSystem {
	return &EnemyWaveSystem{
		entityManager: em,
		cfg:           cfg,
		spawns:        spawns,
		despawns:      despawns,
	}
}

// Wave returns the number of waves spawned so far.
func (s *EnemyWaveSystem) Wave() int {
	return s.wave
}

// Update advances the wave timer and spawns a wave each time it fires.
func (s *EnemyWaveSystem) Update(deltaTime float64) {
	interval := s.cfg.WaveInterval.Seconds()
	s.elapsed += deltaTime
	for s.elapsed >= interval {
		s.elapsed -= interval
		s.SpawnWave()
	}
}

// SpawnWave spawns one wave immediately, centred on the player's current position.
// Nothing happens while there is no player.
func (s *EnemyWaveSystem) SpawnWave() {
	center, ok := playerPosition(s.entityManager)
	if !ok {
		log.Debug().Msg("no player, enemy wave skipped")
		return
	}

	count := s.cfg.WaveSize
	if s.cfg.MaxAlive > 0 {
		if count > s.cfg.MaxAlive {
			count = s.cfg.MaxAlive
		}
		s.makeRoom(count)
	}

	for i, pos := range RingPositions(center, s.cfg.SpawnRadius, count) {
		entities.NewEnemyEntity(s.entityManager, pos, s.wave, s.nextOrder+uint64(i), s.spawns)
	}
	s.nextOrder += uint64(count)

	log.Info().Int("wave", s.wave).Int("count", count).Msg("enemy wave spawned")
	s.wave++
}

// makeRoom requests despawns of the oldest enemies so that incoming more fit under the cap.
func (s *EnemyWaveSystem) makeRoom(incoming int) {
	alive := ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)
	excess := len(alive) + incoming - s.cfg.MaxAlive
	if excess <= 0 {
		return
	}

	sort.Slice(alive, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, alive[i])
		b, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, alive[j])
		return a.SpawnOrder < b.SpawnOrder
	})
	for _, id := range alive[:excess] {
		s.despawns.Send(DespawnRequest{Root: id})
	}
	log.Debug().Int("despawned", excess).Int("max_alive", s.cfg.MaxAlive).Msg("enemy cap reached")
}

// RingPositions returns n points at equal angular steps on a circle of radius around
// center in the XY plane, starting on +X.
func RingPositions(center mgl32.Vec3, radius float32, n int) []mgl32.Vec3 {
	positions := make([]mgl32.Vec3, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2 * math.Pi / float64(n)
		offset := mgl32.Vec3{
			radius * float32(math.Cos(theta)),
			radius * float32(math.Sin(theta)),
			0,
		}
		positions = append(positions, center.Add(offset))
	}
	return positions
}

// playerPosition returns the translation of the first player entity.
func playerPosition(em *ecs.EntityManager) (mgl32.Vec3, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em)
	if len(players) == 0 {
		return mgl32.Vec3{}, false
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, players[0])
	return tr.Translation, true
}
