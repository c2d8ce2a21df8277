package schema

// RuleBranch is one row of a factor table, in evaluation order.
type RuleBranch struct {
	Condition string `json:"condition" yaml:"condition"`
	Factor    int    `json:"factor" yaml:"factor"`
}

// RuleTable describes how one criterion maps its input to a factor.
type RuleTable struct {
	Key      CriterionKey `json:"key" yaml:"key"`
	Name     string       `json:"name" yaml:"name"`
	Input    string       `json:"input" yaml:"input"`
	Weight   float64      `json:"weight" yaml:"weight"`
	Branches []RuleBranch `json:"branches" yaml:"branches"`
	Fallback int          `json:"fallback" yaml:"fallback"`
}

// RulesRenderModel contains all data needed to display the rule tables.
type RulesRenderModel struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Formula     string      `json:"formula" yaml:"formula"`
	Levels      []LevelBand `json:"levels" yaml:"levels"`
	Tables      []RuleTable `json:"tables" yaml:"tables"`
}

// LevelBand is the score range covered by a difficulty level.
type LevelBand struct {
	Level Level   `json:"level" yaml:"level"`
	Below float64 `json:"below,omitempty" yaml:"below,omitempty"` // exclusive upper bound, 0 for the last band
}
