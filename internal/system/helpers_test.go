package system

import (
	"io"
	"log/slog"

	"krusty/internal/assets"
	"krusty/internal/audio"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/types"
)

const dt = config.TimeStep

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func spawnPlayer(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Players[id] = &component.Player{}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Scores[id] = &component.Score{}
	return id
}

func spawnEnemy(ecs *entity.ECS, x, y float64, health int, follow bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Enemies[id] = &component.Enemy{
		CanFollow: follow,
		FireTimer: component.NewTimer(config.EnemyFirePeriod, true),
	}
	label := ecs.NewEntity()
	ecs.Texts[label] = &component.Text{}
	ecs.Attach(id, label, 0, config.LabelOffsetY)
	return id
}

func countOwned(ecs *entity.ECS, owner component.Faction) int {
	n := 0
	for _, p := range ecs.Projectiles {
		if p.Owner == owner {
			n++
		}
	}
	return n
}

// eventLog records every event of the subscribed types.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range kinds {
		d.Subscribe(t, l)
	}
	return l
}

// fakeSound is a playback handle whose readiness the test controls.
type fakeSound struct {
	id    assets.SoundID
	ready bool
	plays int
	stops int
}

func (f *fakeSound) Ready() bool { return f.ready }

func (f *fakeSound) Play() {
	if f.ready {
		f.plays++
	}
}

func (f *fakeSound) Stop()           { f.stops++ }
func (f *fakeSound) IsPlaying() bool { return f.plays > 0 && f.stops == 0 }

type fakeAudio struct {
	ready   bool
	handles []*fakeSound
}

func (a *fakeAudio) Play(id assets.SoundID) audio.Playback {
	h := &fakeSound{id: id, ready: a.ready}
	h.Play()
	a.handles = append(a.handles, h)
	return h
}
