package builder

// Typed mirrors of the raw questionnaire document, decoded with mapstructure
// after the validator has accepted the shape. Key names match the external
// document format.

type questionnaireConfig struct {
	ID        string           `mapstructure:"id"`
	Title     string           `mapstructure:"title"`
	Questions []questionConfig `mapstructure:"questions"`
}

type questionConfig struct {
	ID         string           `mapstructure:"id"`
	Type       string           `mapstructure:"type"`
	Text       string           `mapstructure:"text"`
	Visibility *conditionConfig `mapstructure:"visibility"`

	MinLength *int `mapstructure:"min_length"`
	MaxLength *int `mapstructure:"max_length"`

	Options []optionConfig `mapstructure:"options"`
	Preset  string         `mapstructure:"preset"`

	AllowOther bool `mapstructure:"allow_other"`
	AllowNone  bool `mapstructure:"allow_none"`
}

type conditionConfig struct {
	Type string `mapstructure:"type"`

	QuestionID    string `mapstructure:"question_id"`
	QuestionText  string `mapstructure:"question_text"`
	ExpectedValue any    `mapstructure:"expected_value"`

	Conditions []conditionConfig `mapstructure:"conditions"`
	Condition  *conditionConfig  `mapstructure:"condition"`
}

type optionConfig struct {
	Label string `mapstructure:"label"`
	Value any    `mapstructure:"value"`
	// ShowValue defaults to true when omitted.
	ShowValue *bool `mapstructure:"show_value"`
}
