package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 6 {
		t.Errorf("Expected 6 enemies, got %d", len(enemies))
	}

	expected := map[string]EnemyDef{
		"green_slime":   {Name: "Green Slime", Health: 125, Damage: 7, ExperienceReward: 25},
		"blue_slime":    {Name: "Blue Slime", Health: 200, Damage: 20, ExperienceReward: 35},
		"fox":           {Name: "Fox", Health: 200, Damage: 30, ExperienceReward: 50},
		"wolf":          {Name: "Wolf", Health: 250, Damage: 45, ExperienceReward: 75},
		"crimson_slime": {Name: "Crimson Slime", Health: 300, Damage: 60, ExperienceReward: 100},
		"hardmode_wolf": {Name: "Hardmode Wolf", Health: 500, Damage: 75, ExperienceReward: 125},
	}
	for _, e := range enemies {
		want, ok := expected[e.ID]
		if !ok {
			t.Errorf("Unexpected enemy %q", e.ID)
			continue
		}
		if e.Name != want.Name || e.Health != want.Health || e.Damage != want.Damage || e.ExperienceReward != want.ExperienceReward {
			t.Errorf("Enemy %q = %+v, want %+v", e.ID, e, want)
		}
		delete(expected, e.ID)
	}
	for id := range expected {
		t.Errorf("Expected enemy %q not found", id)
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 6 {
		t.Errorf("Expected 6 enemy types, got %d", registry.Count())
	}

	wolf := registry.GetByID("wolf")
	if wolf == nil {
		t.Error("Wolf not found by ID")
	} else if wolf.Name != "Wolf" {
		t.Errorf("Expected name 'Wolf', got %q", wolf.Name)
	}

	if registry.Get(-1) != nil || registry.Get(6) != nil {
		t.Error("Get should return nil for out of range indexes")
	}

	// Selection is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a, b := registry.PickIndex(rng1), registry.PickIndex(rng2)
		if a != b {
			t.Errorf("Pick %d mismatch: %d != %d", i, a, b)
		}
		if a < 0 || a >= registry.Count() {
			t.Errorf("Pick %d out of range: %d", i, a)
		}
	}
}

func TestEnemyRegistryPickCoversCatalog(t *testing.T) {
	registry := MustLoadEnemyRegistry()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[registry.PickIndex(rng)] = true
	}
	if len(seen) != registry.Count() {
		t.Errorf("Uniform pick reached %d of %d enemies", len(seen), registry.Count())
	}
}

func TestEmptyEnemyRegistryPick(t *testing.T) {
	registry := NewEnemyRegistry(nil)
	if got := registry.PickIndex(rand.New(rand.NewSource(1))); got != -1 {
		t.Errorf("PickIndex on empty registry = %d, want -1", got)
	}
}

func TestLoadEquipment(t *testing.T) {
	registry, err := LoadEquipmentRegistry()
	if err != nil {
		t.Fatalf("Failed to load equipment: %v", err)
	}

	wantOrder := []string{
		"Crimson Slime Fang",
		"Kolkallum's Usurper",
		"Nature's Cloak",
		"Steel Greatsword",
		"Samurai Hat",
	}
	if registry.Count() != len(wantOrder) {
		t.Fatalf("Expected %d items, got %d", len(wantOrder), registry.Count())
	}
	for i, name := range wantOrder {
		item := registry.GetByNumber(i + 1)
		if item == nil || item.Name != name {
			t.Errorf("GetByNumber(%d) = %v, want %q", i+1, item, name)
		}
	}

	if registry.GetByNumber(0) != nil || registry.GetByNumber(6) != nil {
		t.Error("GetByNumber should return nil outside [1, count]")
	}

	sword := registry.GetByID("steel_greatsword")
	if sword == nil {
		t.Fatal("steel_greatsword not found")
	}
	if len(sword.Modifiers) != 2 {
		t.Errorf("Steel Greatsword modifiers = %d, want 2", len(sword.Modifiers))
	}
}

func TestModifierApply(t *testing.T) {
	tests := []struct {
		name    string
		mod     Modifier
		current float64
		want    float64
	}{
		{"add", Modifier{Stat: StatDamage, Op: OpAdd, Value: 20}, 10, 30},
		{"mul", Modifier{Stat: StatDamage, Op: OpMul, Value: 1.25}, 10, 12.5},
		{"add probability", Modifier{Stat: StatCritChance, Op: OpAdd, Value: 0.35}, 0.25, 0.6},
		{"empty op adds", Modifier{Stat: StatMaxHealth, Value: 400}, 100, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mod.Apply(tt.current)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Apply(%v) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestModifierString(t *testing.T) {
	if got := (Modifier{Stat: StatCritChance, Op: OpAdd, Value: 0.25}).String(); got != "+0.25 crit_chance" {
		t.Errorf("String() = %q", got)
	}
	if got := (Modifier{Stat: StatDamage, Op: OpMul, Value: 1.25}).String(); got != "x1.25 damage" {
		t.Errorf("String() = %q", got)
	}
}

func TestEquipmentValidate(t *testing.T) {
	bad := EquipmentDef{ID: "bad", Modifiers: []Modifier{{Stat: "luck", Op: OpAdd, Value: 1}}}
	if err := bad.validate(); err == nil {
		t.Error("validate should reject unknown stats")
	}
	badOp := EquipmentDef{ID: "bad_op", Modifiers: []Modifier{{Stat: StatDamage, Op: "pow", Value: 2}}}
	if err := badOp.validate(); err == nil {
		t.Error("validate should reject unknown ops")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#55FF55", true},
		{"#DC143C", true},
		{"#FFF", true}, // Shorthand
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestEnemyDefColor(t *testing.T) {
	def := EnemyDef{ID: "test", Name: "Test Enemy", Color: "#FF0000"}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	broken := EnemyDef{ID: "broken", Color: "nope"}
	if broken.TCellColor() == 0 {
		t.Error("TCellColor should fall back to a visible color")
	}
}
