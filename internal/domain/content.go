package domain

// SiteSettings controls the document head and text direction of the page
type SiteSettings struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Lang        string `yaml:"lang" toml:"lang" json:"lang"`
	Dir         string `yaml:"dir" toml:"dir" json:"dir"`
}

// HeroStat is a headline figure shown under the page lead
type HeroStat struct {
	Value   string `yaml:"value" toml:"value" json:"value"`
	Caption string `yaml:"caption" toml:"caption" json:"caption"`
}

// Scenario describes an everyday situation where percentages show up
type Scenario struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Highlight   string `yaml:"highlight" toml:"highlight" json:"highlight"`
}

// Section is a heading with a short lead paragraph
type Section struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Lead  string `yaml:"lead" toml:"lead" json:"lead"`
}

// PageContent is the static educational copy surrounding the calculators
type PageContent struct {
	HeroTag   string     `yaml:"hero_tag" toml:"hero_tag" json:"hero_tag"`
	Headline  string     `yaml:"headline" toml:"headline" json:"headline"`
	Lead      string     `yaml:"lead" toml:"lead" json:"lead"`
	HeroStats []HeroStat `yaml:"hero_stats" toml:"hero_stats" json:"hero_stats"`
	Everyday  Section    `yaml:"everyday" toml:"everyday" json:"everyday"`
	Scenarios []Scenario `yaml:"scenarios" toml:"scenarios" json:"scenarios"`
	Tools     Section    `yaml:"tools" toml:"tools" json:"tools"`
	Method    Section    `yaml:"method" toml:"method" json:"method"`
	Steps     []string   `yaml:"steps" toml:"steps" json:"steps"`
	QuickWins []string   `yaml:"quick_wins" toml:"quick_wins" json:"quick_wins"`
}
