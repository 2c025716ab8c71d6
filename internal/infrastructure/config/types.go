package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display       DisplayConfig       `json:"display"`
	Physics       PhysicsSettings     `json:"physics"`
	Movement      MovementConfig      `json:"movement"`
	Jump          JumpConfig          `json:"jump"`
	Actor         ActorConfig         `json:"actor"`
	Invincibility InvincibilityConfig `json:"invincibility"`
	Gimmicks      GimmickConfig       `json:"gimmicks"`
	Progress      ProgressConfig      `json:"progress"`
	Input         InputConfig         `json:"input"`
	Campaign      []string            `json:"campaign"` // stage files under stages/, in unlock order
	Taunts        []string            `json:"taunts"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity     float64 `json:"gravity"`     // added to vy every tick
	Friction    float64 `json:"friction"`    // vx multiplier when no direction is held
	WorldHeight float64 `json:"worldHeight"` // default stage height when a stage omits bounds
	FallMargin  float64 `json:"fallMargin"`  // distance past the stage bounds that counts as a fall
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
	MaxSpeed     float64 `json:"maxSpeed"`
}

type JumpConfig struct {
	Force     float64 `json:"force"`
	WallJumpX float64 `json:"wallJumpX"`
	WallJumpY float64 `json:"wallJumpY"`
}

type ActorConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type InvincibilityConfig struct {
	Duration        int     `json:"duration"` // ticks
	Warning         int     `json:"warning"`  // ticks before expiry that blink
	SpeedMultiplier float64 `json:"speedMultiplier"`
}

type GimmickConfig struct {
	FallingGravityMultiplier float64       `json:"fallingGravityMultiplier"`
	LaunchPadCooldown        int           `json:"launchPadCooldown"`
	GravitySwitchCooldown    int           `json:"gravitySwitchCooldown"`
	GravitySwitchNudge       float64       `json:"gravitySwitchNudge"`
	AccelZoneRate            float64       `json:"accelZoneRate"`
	TrustThreshold           int           `json:"trustThreshold"`
	Missile                  MissileConfig `json:"missile"`
	Laser                    LaserConfig   `json:"laser"`
}

type MissileConfig struct {
	Speed    float64 `json:"speed"`
	MaxSpeed float64 `json:"maxSpeed"`
	Accel    float64 `json:"accel"`
	TurnRate float64 `json:"turnRate"`
}

type LaserConfig struct {
	Period   int `json:"period"`
	WarnAt   int `json:"warnAt"`
	ActiveAt int `json:"activeAt"`
}

type ProgressConfig struct {
	HistoryCapacity int    `json:"historyCapacity"`
	AppName         string `json:"appName"`
}

// InputConfig describes the on-screen touch zones as fractions of the screen width
type InputConfig struct {
	MoveZone  float64 `json:"moveZone"`  // left part of the screen used for movement
	LeftSplit float64 `json:"leftSplit"` // touches left of this move left, the rest of the move zone moves right
}
