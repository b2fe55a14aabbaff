package systems

import (
	"testing"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/entities"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollow(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	player := entities.NewPlayerEntity(em, cfg.Player, events.NewQueue[assets.SpawnMesh]())
	rig := entities.NewCameraEntity(em, cfg.Camera)
	s := NewCameraFollowSystem(em)

	playerTr, _ := ecs.GetComponent[*components.TransformComponent](em, player)
	rigTr, _ := ecs.GetComponent[*components.TransformComponent](em, rig)

	playerTr.Translation = mgl32.Vec3{1.5, 0, 3}
	s.Update(0.1)
	assert.Equal(t, mgl32.Vec3{}, rigTr.Translation, "inside the dead zone")

	playerTr.Translation = mgl32.Vec3{10, 0, 3}
	s.Update(0.1)
	assert.True(t, rigTr.Translation.ApproxEqual(mgl32.Vec3{1.5, 0, 0}), "got %v", rigTr.Translation)
}
