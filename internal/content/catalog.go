package content

import (
	"net/url"

	"github.com/pkg/errors"
)

// Owner returns a copy of the site owner's profile.
func Owner() Profile {
	p := owner
	p.About = cloneStrings(owner.About)
	p.Stats = append([]Stat(nil), owner.Stats...)
	p.Social = append([]Link(nil), owner.Social...)
	return p
}

func Skills() []Skill {
	return append([]Skill(nil), skills...)
}

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Technologies = cloneStrings(p.Technologies)
		out[i] = p
	}
	return out
}

func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		e.Achievements = cloneStrings(e.Achievements)
		e.Technologies = cloneStrings(e.Technologies)
		out[i] = e
	}
	return out
}

// All returns the whole catalog, used by the content export command.
func All() Catalog {
	return Catalog{
		Profile:     Owner(),
		Skills:      Skills(),
		Projects:    Projects(),
		Experiences: Experiences(),
	}
}

// GroupSkills groups skills by category. Categories keep the order in which
// they first appear and skills keep their order inside a group.
func GroupSkills(in []Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[Category]int)
	for _, s := range in {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// SocialLink looks up an outbound link by key.
func SocialLink(key string) (Link, bool) {
	for _, l := range owner.Social {
		if l.Key == key {
			return l, true
		}
	}
	return Link{}, false
}

// Validate checks the compiled-in catalog for duplicate IDs, unknown skill
// categories and malformed links.
func Validate() error {
	return validateCatalog(All())
}

func validateCatalog(c Catalog) error {
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.ID == "" || seen[p.ID] {
			return errors.Errorf("project %q: missing or duplicate id", p.Name)
		}
		seen[p.ID] = true
		for _, raw := range []string{p.SourceURL, p.LiveURL} {
			if raw == "" {
				continue
			}
			if err := checkURL(raw); err != nil {
				return errors.Wrapf(err, "project %s", p.ID)
			}
		}
	}

	seen = make(map[string]bool)
	for _, e := range c.Experiences {
		if e.ID == "" || seen[e.ID] {
			return errors.Errorf("experience %q: missing or duplicate id", e.Company)
		}
		seen[e.ID] = true
	}

	for _, s := range c.Skills {
		if !s.Category.Valid() {
			return errors.Errorf("skill %q: unknown category %q", s.Name, s.Category)
		}
	}

	keys := make(map[string]bool)
	for _, l := range c.Profile.Social {
		if keys[l.Key] {
			return errors.Errorf("social link %q: duplicate key", l.Key)
		}
		keys[l.Key] = true
		if err := checkURL(l.URL); err != nil {
			return errors.Wrapf(err, "social link %s", l.Key)
		}
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "parse url")
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return errors.Errorf("url %q has no host", raw)
		}
	case "mailto", "tel":
		if u.Opaque == "" {
			return errors.Errorf("url %q has no target", raw)
		}
	default:
		return errors.Errorf("url %q: unsupported scheme %q", raw, u.Scheme)
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
