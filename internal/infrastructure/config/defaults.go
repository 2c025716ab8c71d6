package config

// DefaultPhysics returns the stock tuning. physics.json is decoded on top of
// it, so a config file only needs the values it changes.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:     0.6,
			Friction:    0.82,
			WorldHeight: 600,
			FallMargin:  200,
		},
		Movement: MovementConfig{
			Acceleration: 1.2,
			MaxSpeed:     7,
		},
		Jump: JumpConfig{
			Force:     13.5,
			WallJumpX: 10,
			WallJumpY: 11,
		},
		Actor: ActorConfig{
			Width:  20,
			Height: 20,
		},
		Invincibility: InvincibilityConfig{
			Duration:        600,
			Warning:         120,
			SpeedMultiplier: 1.5,
		},
		Gimmicks: GimmickConfig{
			FallingGravityMultiplier: 1.5,
			LaunchPadCooldown:        30,
			GravitySwitchCooldown:    60,
			GravitySwitchNudge:       5,
			AccelZoneRate:            0.1,
			TrustThreshold:           3,
			Missile: MissileConfig{
				Speed:    2,
				MaxSpeed: 5,
				Accel:    0.05,
				TurnRate: 0.05,
			},
			Laser: LaserConfig{
				Period:   180,
				WarnAt:   90,
				ActiveAt: 120,
			},
		},
		Progress: ProgressConfig{
			HistoryCapacity: 200,
			AppName:         "unfair",
		},
		Input: InputConfig{
			MoveZone:  0.45,
			LeftSplit: 0.225,
		},
	}
}
