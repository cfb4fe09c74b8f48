package domain

// SiteContent - статический контент страницы
type SiteContent struct {
	CompanyName string         `json:"company_name" yaml:"company_name"`
	Hero        HeroBlock      `json:"hero" yaml:"hero"`
	Services    []ServiceOffer `json:"services" yaml:"services"`
	About       AboutBlock     `json:"about" yaml:"about"`
	Contacts    ContactsBlock  `json:"contacts" yaml:"contacts"`
	Footer      FooterBlock    `json:"footer" yaml:"footer"`
}

type HeroBlock struct {
	Title           string `json:"title" yaml:"title"`
	Subtitle        string `json:"subtitle" yaml:"subtitle"`
	BackgroundImage string `json:"background_image" yaml:"background_image"`
	CallToAction    string `json:"call_to_action" yaml:"call_to_action"`
}

type ServiceOffer struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type AboutBlock struct {
	Heading string     `json:"heading" yaml:"heading"`
	Text    string     `json:"text" yaml:"text"`
	Image   string     `json:"image" yaml:"image"`
	Stats   []StatItem `json:"stats" yaml:"stats"`
}

type StatItem struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type ContactsBlock struct {
	Heading      string   `json:"heading" yaml:"heading"`
	Phone        string   `json:"phone" yaml:"phone"`
	Email        string   `json:"email" yaml:"email"`
	Address      string   `json:"address" yaml:"address"`
	WorkingHours []string `json:"working_hours" yaml:"working_hours"`
}

type FooterBlock struct {
	Tagline   string `json:"tagline" yaml:"tagline"`
	Phone     string `json:"phone" yaml:"phone"`
	Email     string `json:"email" yaml:"email"`
	City      string `json:"city" yaml:"city"`
	Copyright string `json:"copyright" yaml:"copyright"`
}
