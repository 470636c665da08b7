package domain

// DisplaySettings sets the fraction digits used for each group of results
type DisplaySettings struct {
	DiscountCurrencyDigits int `yaml:"discount_currency_digits" toml:"discount_currency_digits" json:"discount_currency_digits"`
	TipCurrencyDigits      int `yaml:"tip_currency_digits" toml:"tip_currency_digits" json:"tip_currency_digits"`
	ProgressCurrencyDigits int `yaml:"progress_currency_digits" toml:"progress_currency_digits" json:"progress_currency_digits"`
	PercentDigits          int `yaml:"percent_digits" toml:"percent_digits" json:"percent_digits"`
}

// OutputSettings controls where and in which formats the page is rendered
type OutputSettings struct {
	Directory string   `yaml:"directory" toml:"directory" json:"directory"`
	Formats   []string `yaml:"formats" toml:"formats" json:"formats"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Site        SiteSettings     `yaml:"site" toml:"site" json:"site"`
	Content     PageContent      `yaml:"content" toml:"content" json:"content"`
	Calculators CalculatorInputs `yaml:"calculators" toml:"calculators" json:"calculators"`
	Display     DisplaySettings  `yaml:"display" toml:"display" json:"display"`
	Output      OutputSettings   `yaml:"output" toml:"output" json:"output"`
}
