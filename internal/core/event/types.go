package event

// Game events consumed by the journal and score systems.

type ActorDied struct {
	ActorID  int32
	Name     string
	IsPlayer bool
	KillerID int32
	Turn     int64
	Depth    int
	XP       int
}

type ItemConsumed struct {
	ActorID int32
	ItemID  int32
	Name    string
	Turn    int64
	Depth   int
}

type DamageDealt struct {
	SourceID int32
	TargetID int32
	Amount   int
	Turn     int64
}

type PlayerDescended struct {
	Depth int
	Turn  int64
}
