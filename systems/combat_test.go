package systems

import (
	"testing"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/yohamta/donburi"
)

func TestDamage(t *testing.T) {
	cases := []struct {
		name       string
		health     int
		amount     int
		wantHealth int
		wantBars   int
		wantDead   bool
		wantPopups int
	}{
		{"scratch", 1000, 100, 900, 13, false, 1},
		{"quarter", 1000, 250, 750, 11, false, 1},
		{"half", 1000, 500, 500, 7, false, 1},
		{"lethal", 1000, 1000, 0, 0, true, 1},
		{"overkill", 300, 100000000, 300 - 100000000, 0, true, 1},
		{"already_dead", 0, 50, 0, 0, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			entry := spawnEnemy(t, e, 64, 64)
			actor := components.Actor.Get(entry)
			actor.SetHealth(c.health)

			Damage(e, entry, c.amount)

			if actor.Health != c.wantHealth {
				t.Errorf("expected health %d, got %d", c.wantHealth, actor.Health)
			}
			if actor.HealthBars != c.wantBars {
				t.Errorf("expected %d health bars, got %d", c.wantBars, actor.HealthBars)
			}
			if actor.Dead() != c.wantDead {
				t.Errorf("expected dead=%v, got %v", c.wantDead, actor.Dead())
			}
			if c.wantDead && c.health > 0 && actor.State != cfg.Fall {
				t.Errorf("expected a killed actor to fall, got state %s", actor.State)
			}
			if len(actor.Popups) != c.wantPopups {
				t.Errorf("expected %d popups, got %d", c.wantPopups, len(actor.Popups))
			}
		})
	}
}

func TestAttack(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	enemy := spawnEnemy(t, e, 64, 0)
	actor := components.Actor.Get(player)

	Attack(e, player, enemy)

	if !actor.Attacking {
		t.Fatal("expected the player to be attacking")
	}
	if actor.Target != enemy.Entity() {
		t.Errorf("expected target %v, got %v", enemy.Entity(), actor.Target)
	}
	if actor.State != cfg.WideSlashDown {
		t.Errorf("expected wide slash facing down, got %s", actor.State)
	}
	if !actor.Timer.Started() {
		t.Error("expected the attack animation to run")
	}

	StopAttacking(e, player)
	if actor.Attacking || actor.Target != donburi.Null {
		t.Errorf("expected the attack to be dropped, got attacking=%v target=%v", actor.Attacking, actor.Target)
	}
}

func TestAttackDeadTarget(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	enemy := spawnEnemy(t, e, 64, 0)
	components.Actor.Get(enemy).SetHealth(0)

	Attack(e, player, enemy)

	if components.Actor.Get(player).Attacking {
		t.Error("expected no attack on a dead target")
	}
}

func TestAutoAttackPicksNearest(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	far := spawnEnemy(t, e, 0, 0)
	near := spawnEnemy(t, e, 0, 0)
	outside := spawnEnemy(t, e, 0, 0)

	placeAt(player, 20, 20)
	placeAt(far, 28, 20)
	placeAt(near, 23, 20)
	placeAt(outside, 40, 40)

	AutoAttack(e, player)

	actor := components.Actor.Get(player)
	if !actor.Attacking {
		t.Fatal("expected the player to attack")
	}
	if actor.Target != near.Entity() {
		t.Errorf("expected the nearest enemy to be targeted")
	}
}

func TestAutoAttackSkipsDead(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	dead := spawnEnemy(t, e, 0, 0)
	alive := spawnEnemy(t, e, 0, 0)

	placeAt(player, 20, 20)
	placeAt(dead, 21, 20).SetHealth(0)
	placeAt(alive, 25, 20)

	AutoAttack(e, player)

	if got := components.Actor.Get(player).Target; got != alive.Entity() {
		t.Errorf("expected the living enemy to be targeted")
	}
}

func TestAutoAttackNothingInRange(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	enemy := spawnEnemy(t, e, 0, 0)
	placeAt(player, 10, 10)
	placeAt(enemy, 50, 50)

	AutoAttack(e, player)

	if components.Actor.Get(player).Attacking {
		t.Error("expected no attack without enemies in range")
	}
	d := GetOrCreateDialogue(e)
	if !d.NoticePlaying || d.LastNotice != cfg.NoticeNoEnemiesNearby {
		t.Errorf("expected the no-enemies notice, got %+v", d.Current)
	}
	if d.Current.Text != cfg.NoticeNoEnemiesNearby.Text() {
		t.Errorf("expected %q on screen, got %q", cfg.NoticeNoEnemiesNearby.Text(), d.Current.Text)
	}
}

func TestIsNear(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"same_cell", 10, 10, true},
		{"two_right", 12, 10, true},
		{"three_right", 13, 10, false},
		{"two_diagonal", 8, 12, true},
		{"three_up", 10, 7, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := &components.ActorData{Col: 10, Row: 10, ShortRange: 3}
			b := &components.ActorData{Col: c.col, Row: c.row}
			if got := IsNear(a, b); got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestSwing(t *testing.T) {
	e, _ := newTestWorld(t)
	player := spawnPlayer(t, e, 0, 0)
	enemy := spawnEnemy(t, e, 64, 0)

	Attack(e, player, enemy)
	swing(e, player)

	other := components.Actor.Get(enemy)
	power := components.Actor.Get(player).AttackPower
	if other.Health > cfg.Actor.Health || other.Health <= cfg.Actor.Health-power {
		t.Errorf("expected a blow below attack power %d, health is %d", power, other.Health)
	}
	if len(other.Popups) != 1 {
		t.Errorf("expected one popup, got %d", len(other.Popups))
	}
}

func TestSwingStopsOnLostTarget(t *testing.T) {
	cases := []struct {
		name  string
		setup func(enemy *donburi.Entry, world donburi.World)
	}{
		{"dead", func(enemy *donburi.Entry, _ donburi.World) {
			components.Actor.Get(enemy).SetHealth(0)
		}},
		{"removed", func(enemy *donburi.Entry, world donburi.World) {
			world.Remove(enemy.Entity())
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			player := spawnPlayer(t, e, 0, 0)
			enemy := spawnEnemy(t, e, 64, 0)

			Attack(e, player, enemy)
			c.setup(enemy, e.World)
			swing(e, player)

			if components.Actor.Get(player).Attacking {
				t.Error("expected the attack to stop")
			}
		})
	}
}
