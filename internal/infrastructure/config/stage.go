package config

// StageConfig is the root config for a stage file (JSON, YAML or TMX)
type StageConfig struct {
	ID       int            `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Spawn    PositionConfig `json:"spawn" yaml:"spawn"`
	Bounds   RectConfig     `json:"bounds" yaml:"bounds"`
	Entities []EntityConfig `json:"entities" yaml:"entities"`

	// Source is the file the stage was read from
	Source string `json:"-" yaml:"-"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type RectConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// EntityConfig is one entity descriptor. Only the fields relevant to Type
// are read.
type EntityConfig struct {
	Type string  `json:"type" yaml:"type"`
	ID   string  `json:"id,omitempty" yaml:"id,omitempty"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	W    float64 `json:"w,omitempty" yaml:"w,omitempty"`
	H    float64 `json:"h,omitempty" yaml:"h,omitempty"`

	Decorative bool    `json:"decorative,omitempty" yaml:"decorative,omitempty"`
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	Lie        bool    `json:"lie,omitempty" yaml:"lie,omitempty"`
	Target     string  `json:"target,omitempty" yaml:"target,omitempty"`
	Axis       string  `json:"axis,omitempty" yaml:"axis,omitempty"`
	Range      float64 `json:"range,omitempty" yaml:"range,omitempty"`
	Speed      float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	Threshold  int     `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	ForceX     float64 `json:"forceX,omitempty" yaml:"forceX,omitempty"`
	ForceY     float64 `json:"forceY,omitempty" yaml:"forceY,omitempty"`
	LooksSafe  bool    `json:"looksSafe,omitempty" yaml:"looksSafe,omitempty"`
	Visible    bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Fake       bool    `json:"fake,omitempty" yaml:"fake,omitempty"`

	Angle    float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	MaxSpeed float64 `json:"maxSpeed,omitempty" yaml:"maxSpeed,omitempty"`
	TurnRate float64 `json:"turnRate,omitempty" yaml:"turnRate,omitempty"`

	Period   int `json:"period,omitempty" yaml:"period,omitempty"`
	WarnAt   int `json:"warnAt,omitempty" yaml:"warnAt,omitempty"`
	ActiveAt int `json:"activeAt,omitempty" yaml:"activeAt,omitempty"`
	Offset   int `json:"offset,omitempty" yaml:"offset,omitempty"`
}
