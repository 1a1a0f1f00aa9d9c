package roster

const (
	Kaito       ID = "kaito"
	Yuki        ID = "yuki"
	Gorath      ID = "gorath"
	Akira       ID = "akira"
	Hana        ID = "hana"
	ShadowLord  ID = "shadow_lord"
	ThunderGod  ID = "thunder_god"
	VoidEmperor ID = "void_emperor"
)

const (
	l  = SymbolLight
	h  = SymbolHeavy
	s1 = SymbolSpecial1
	s2 = SymbolSpecial2
)

var playableOrder = []ID{Kaito, Yuki, Gorath, Akira, Hana}

var bossOrder = []ID{ShadowLord, ThunderGod, VoidEmperor}

var playable = map[ID]*Character{
	Kaito: {
		ID:          Kaito,
		Name:        "Kaito",
		Title:       "The Blazing Fist",
		Description: "A balanced warrior who channels fire energy. Reliable in any situation with strong fundamentals.",
		Color:       "#ff4444",
		AccentColor: "#ff8800",
		Stats:       Stats{MaxHP: 1000, Attack: 80, Defense: 75, Speed: 70, ComboRate: 75},
		Specials: []SpecialMove{
			{Name: "Ember Bolt", Damage: 120, EnergyCost: 25, Range: 400, Startup: 8, Active: 4, Recovery: 12, Type: MoveProjectile, Knockback: 5},
			{Name: "Rising Dragon", Damage: 150, EnergyCost: 30, Range: 80, Startup: 4, Active: 8, Recovery: 18, Type: MoveMelee, Knockback: 12},
		},
		Combos: []ComboSequence{
			{Name: "Fire Rush", Inputs: []Symbol{l, l, h}, Damage: 200, HitCount: 3},
			{Name: "Inferno Chain", Inputs: []Symbol{l, h, s1}, Damage: 320, HitCount: 4},
			{Name: "Dragon Sequence", Inputs: []Symbol{h, h, s2}, Damage: 380, HitCount: 5},
		},
		Ultimate: Ultimate{Name: "Supernova Fist", Damage: 500, EnergyRequired: 100, Animation: "supernova", Duration: 90},
	},
	Yuki: {
		ID:          Yuki,
		Name:        "Yuki",
		Title:       "The Phantom Blade",
		Description: "Lightning-fast ninja who overwhelms foes with speed. Glass cannon with devastating combos.",
		Color:       "#00ccff",
		AccentColor: "#0088ff",
		Stats:       Stats{MaxHP: 750, Attack: 90, Defense: 50, Speed: 100, ComboRate: 95},
		Specials: []SpecialMove{
			{Name: "Shadow Step", Damage: 80, EnergyCost: 20, Range: 250, Startup: 3, Active: 6, Recovery: 8, Type: MoveTeleport, Knockback: 3},
			{Name: "Blade Storm", Damage: 180, EnergyCost: 35, Range: 120, Startup: 6, Active: 10, Recovery: 14, Type: MoveMelee, Knockback: 8},
		},
		Combos: []ComboSequence{
			{Name: "Swift Cuts", Inputs: []Symbol{l, l, l}, Damage: 180, HitCount: 4},
			{Name: "Phantom Dance", Inputs: []Symbol{l, l, s1, h}, Damage: 350, HitCount: 6},
			{Name: "Endless Edge", Inputs: []Symbol{l, h, l, s2}, Damage: 420, HitCount: 8},
		},
		Ultimate: Ultimate{Name: "Thousand Cuts", Damage: 550, EnergyRequired: 100, Animation: "thousand_cuts", Duration: 100},
	},
	Gorath: {
		ID:          Gorath,
		Name:        "Gorath",
		Title:       "The Iron Mountain",
		Description: "An unstoppable juggernaut. Slow but immensely powerful with unmatched defense.",
		Color:       "#88aa44",
		AccentColor: "#556622",
		Stats:       Stats{MaxHP: 1400, Attack: 100, Defense: 95, Speed: 40, ComboRate: 45},
		Specials: []SpecialMove{
			{Name: "Ground Pound", Damage: 200, EnergyCost: 30, Range: 200, Startup: 14, Active: 6, Recovery: 20, Type: MoveMelee, Knockback: 18},
			{Name: "Iron Fortress", Damage: 0, EnergyCost: 25, Range: 0, Startup: 6, Active: 30, Recovery: 10, Type: MoveCounter, Knockback: 0},
		},
		Combos: []ComboSequence{
			{Name: "Hammer Blow", Inputs: []Symbol{h, h}, Damage: 280, HitCount: 2},
			{Name: "Titan Crush", Inputs: []Symbol{h, s1, h}, Damage: 450, HitCount: 3},
			{Name: "Earthquake", Inputs: []Symbol{h, h, s1}, Damage: 500, HitCount: 4},
		},
		Ultimate: Ultimate{Name: "Continental Crush", Damage: 650, EnergyRequired: 100, Animation: "continental", Duration: 110},
	},
	Akira: {
		ID:          Akira,
		Name:        "Akira",
		Title:       "The Storm Weaver",
		Description: "Master of ranged combat with energy projectiles and barriers. Controls space with precision.",
		Color:       "#aa44ff",
		AccentColor: "#6622aa",
		Stats:       Stats{MaxHP: 850, Attack: 85, Defense: 60, Speed: 65, ComboRate: 70},
		Specials: []SpecialMove{
			{Name: "Spirit Orb", Damage: 100, EnergyCost: 20, Range: 500, Startup: 10, Active: 4, Recovery: 10, Type: MoveProjectile, Knockback: 6},
			{Name: "Void Barrier", Damage: 60, EnergyCost: 30, Range: 150, Startup: 8, Active: 15, Recovery: 12, Type: MoveCounter, Knockback: 10},
		},
		Combos: []ComboSequence{
			{Name: "Arcane Volley", Inputs: []Symbol{s1, s1, h}, Damage: 260, HitCount: 3},
			{Name: "Storm Cage", Inputs: []Symbol{l, s1, s2}, Damage: 340, HitCount: 4},
			{Name: "Astral Onslaught", Inputs: []Symbol{s1, h, s2, s1}, Damage: 480, HitCount: 6},
		},
		Ultimate: Ultimate{Name: "Dimensional Rift", Damage: 520, EnergyRequired: 100, Animation: "rift", Duration: 95},
	},
	Hana: {
		ID:          Hana,
		Name:        "Hana",
		Title:       "The Crimson Chain",
		Description: "Combo specialist who chains devastating attack strings. Rewards aggressive, skillful play.",
		Color:       "#ff44aa",
		AccentColor: "#cc2288",
		Stats:       Stats{MaxHP: 900, Attack: 75, Defense: 65, Speed: 85, ComboRate: 100},
		Specials: []SpecialMove{
			{Name: "Chain Lash", Damage: 90, EnergyCost: 15, Range: 200, Startup: 5, Active: 8, Recovery: 10, Type: MoveMelee, Knockback: 4},
			{Name: "Rising Petal", Damage: 130, EnergyCost: 25, Range: 100, Startup: 6, Active: 6, Recovery: 14, Type: MoveMelee, Knockback: 10},
		},
		Combos: []ComboSequence{
			{Name: "Blossom Rush", Inputs: []Symbol{l, l, l, h}, Damage: 260, HitCount: 5},
			{Name: "Petal Storm", Inputs: []Symbol{l, s1, l, s2}, Damage: 380, HitCount: 7},
			{Name: "Eternal Bloom", Inputs: []Symbol{l, l, s1, h, s2}, Damage: 520, HitCount: 10},
		},
		Ultimate: Ultimate{Name: "Crimson Requiem", Damage: 480, EnergyRequired: 100, Animation: "requiem", Duration: 105},
	},
}

var bosses = map[ID]*Character{
	ShadowLord: {
		ID:          ShadowLord,
		Name:        "Shadow Lord",
		Title:       "Harbinger of Darkness",
		Description: "A dark entity that feeds on despair. His attacks drain life and energy.",
		Color:       "#333366",
		AccentColor: "#8844cc",
		Stats:       Stats{MaxHP: 1600, Attack: 95, Defense: 85, Speed: 60, ComboRate: 70},
		Specials: []SpecialMove{
			{Name: "Dark Wave", Damage: 160, EnergyCost: 20, Range: 450, Startup: 10, Active: 6, Recovery: 14, Type: MoveProjectile, Knockback: 8},
			{Name: "Shadow Grab", Damage: 200, EnergyCost: 30, Range: 120, Startup: 8, Active: 8, Recovery: 16, Type: MoveGrab, Knockback: 14},
		},
		Combos: []ComboSequence{
			{Name: "Dark Chain", Inputs: []Symbol{l, h, s1}, Damage: 350, HitCount: 4},
			{Name: "Oblivion", Inputs: []Symbol{h, s1, s2, h}, Damage: 500, HitCount: 6},
		},
		Ultimate: Ultimate{Name: "Eternal Night", Damage: 600, EnergyRequired: 100, Animation: "eternal_night", Duration: 100},
		IsBoss:   true,
	},
	ThunderGod: {
		ID:          ThunderGod,
		Name:        "Raijin",
		Title:       "The Thunder God",
		Description: "Ancient deity of storms. Strikes with lightning speed and devastating thunder.",
		Color:       "#ffcc00",
		AccentColor: "#ff8800",
		Stats:       Stats{MaxHP: 1800, Attack: 110, Defense: 80, Speed: 80, ComboRate: 75},
		Specials: []SpecialMove{
			{Name: "Lightning Bolt", Damage: 180, EnergyCost: 25, Range: 500, Startup: 6, Active: 4, Recovery: 12, Type: MoveProjectile, Knockback: 10},
			{Name: "Thunder Clap", Damage: 220, EnergyCost: 35, Range: 180, Startup: 10, Active: 8, Recovery: 18, Type: MoveMelee, Knockback: 16},
		},
		Combos: []ComboSequence{
			{Name: "Storm Fury", Inputs: []Symbol{l, l, s1, h}, Damage: 450, HitCount: 5},
			{Name: "Divine Wrath", Inputs: []Symbol{h, s2, s1, h}, Damage: 600, HitCount: 7},
		},
		Ultimate: Ultimate{Name: "Ragnarok Thunder", Damage: 700, EnergyRequired: 100, Animation: "ragnarok", Duration: 110},
		IsBoss:   true,
	},
	VoidEmperor: {
		ID:          VoidEmperor,
		Name:        "Void Emperor",
		Title:       "The Final Destruction",
		Description: "The ultimate enemy. Master of all elements with reality-warping power.",
		Color:       "#ff0044",
		AccentColor: "#440022",
		Stats:       Stats{MaxHP: 2200, Attack: 120, Defense: 90, Speed: 75, ComboRate: 85},
		Specials: []SpecialMove{
			{Name: "Void Rend", Damage: 200, EnergyCost: 20, Range: 400, Startup: 8, Active: 6, Recovery: 14, Type: MoveProjectile, Knockback: 12},
			{Name: "Reality Shatter", Damage: 250, EnergyCost: 30, Range: 200, Startup: 6, Active: 10, Recovery: 16, Type: MoveMelee, Knockback: 18},
		},
		Combos: []ComboSequence{
			{Name: "Annihilation", Inputs: []Symbol{h, h, s1, s2}, Damage: 550, HitCount: 6},
			{Name: "End of Days", Inputs: []Symbol{l, s1, h, s2, h}, Damage: 750, HitCount: 9},
		},
		Ultimate: Ultimate{Name: "Cosmic Erasure", Damage: 800, EnergyRequired: 100, Animation: "cosmic_erasure", Duration: 120},
		IsBoss:   true,
	},
}
