// Package content holds the compiled-in records rendered by the portfolio
// page: projects, work experience, skills and the owner profile.
package content

// Category groups skills on the page. The set is closed.
type Category string

const (
	Frontend   Category = "Frontend"
	Backend    Category = "Backend"
	Mobile     Category = "Mobile"
	DevOps     Category = "DevOps"
	AIML       Category = "AI & ML"
	Web3       Category = "Web3"
	Automation Category = "Automation"
	Cloud      Category = "Cloud"
)

var categories = []Category{Frontend, Backend, Mobile, DevOps, AIML, Web3, Automation, Cloud}

// Categories returns every skill category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	SourceURL    string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	Image        string   `json:"image,omitempty" yaml:"image,omitempty"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
}

func (p Project) HasSource() bool { return p.SourceURL != "" }
func (p Project) HasLive() bool   { return p.LiveURL != "" }
func (p Project) HasImage() bool  { return p.Image != "" }

type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Role         string   `json:"role" yaml:"role"`
	Duration     string   `json:"duration" yaml:"duration"`
	Location     string   `json:"location" yaml:"location"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

type Skill struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// SkillGroup is one category block of the skills section.
type SkillGroup struct {
	Category Category
	Skills   []Skill
}

type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Link is an outbound link. Key is the stable name used by /go/:link.
type Link struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type ContactDetails struct {
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
}

// Profile is everything on the page that is not a list of records.
type Profile struct {
	Name        string         `json:"name" yaml:"name"`
	Brand       string         `json:"brand" yaml:"brand"`
	Tagline     string         `json:"tagline" yaml:"tagline"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	About       []string       `json:"about" yaml:"about"`
	Stats       []Stat         `json:"stats" yaml:"stats"`
	Contact     ContactDetails `json:"contact" yaml:"contact"`
	Social      []Link         `json:"social" yaml:"social"`
}

// Catalog bundles every record for export.
type Catalog struct {
	Profile     Profile      `json:"profile" yaml:"profile"`
	Skills      []Skill      `json:"skills" yaml:"skills"`
	Projects    []Project    `json:"projects" yaml:"projects"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
}
