package config

// Shot tuning
const (
	ShotSpeed     = 100.0 // units per second along -Z
	ShotBoundaryZ = -50.0 // shots past this plane expire
	ShotScale     = 0.5
	ShotRadius    = 1.0 // collider radius before scaling

	// ShotLightToggleInterval is the minimum time between two shot light toggles.
	ShotLightToggleInterval = 0.5
)

// Ship tuning
const (
	ShipSpeed        = 20.0
	ShipBoundX       = 18.0
	ShipFireCooldown = 0.25
	ShipZ            = 20.0
)

// Enemy wave tuning
const (
	EnemyColumns = 5
	EnemyRows    = 2
	EnemySpacing = 6.0
	EnemyRowZ    = -30.0
	EnemyDrift   = 3.0 // sideways amplitude
	EnemySpin    = 1.2 // radians per second
	EnemyRadius  = 1.0
)
