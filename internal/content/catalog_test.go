package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSkillsUseKnownCategories(t *testing.T) {
	for _, s := range Skills() {
		assert.Truef(t, s.Category.Valid(), "skill %s has category %q", s.Name, s.Category)
	}
	assert.False(t, Category("Database").Valid())
}

func TestGroupSkillsKeepsFirstSeenOrder(t *testing.T) {
	in := []Skill{
		{Name: "Docker", Category: DevOps},
		{Name: "React", Category: Frontend},
		{Name: "AWS", Category: DevOps},
		{Name: "Svelte", Category: Frontend},
		{Name: "n8n", Category: Automation},
	}

	got := GroupSkills(in)
	want := []SkillGroup{
		{Category: DevOps, Skills: []Skill{in[0], in[2]}},
		{Category: Frontend, Skills: []Skill{in[1], in[3]}},
		{Category: Automation, Skills: []Skill{in[4]}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GroupSkills mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupSkillsCoversEveryCategory(t *testing.T) {
	groups := GroupSkills(Skills())
	var got []Category
	for _, g := range groups {
		got = append(got, g.Category)
	}
	assert.Equal(t, Categories(), got)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := Projects()
	p[0].Technologies[0] = "COBOL"
	p[0].Name = "changed"
	assert.NotEqual(t, "COBOL", Projects()[0].Technologies[0])
	assert.NotEqual(t, "changed", Projects()[0].Name)

	e := Experiences()
	e[0].Achievements[0] = "changed"
	assert.NotEqual(t, "changed", Experiences()[0].Achievements[0])

	o := Owner()
	o.Social[0].URL = "https://example.com"
	assert.NotEqual(t, "https://example.com", Owner().Social[0].URL)
}

func TestOptionalProjectLinks(t *testing.T) {
	byID := make(map[string]Project)
	for _, p := range Projects() {
		byID[p.ID] = p
	}
	assert.True(t, byID["1"].HasSource())
	assert.True(t, byID["1"].HasLive())
	assert.False(t, byID["2"].HasLive())
	assert.False(t, byID["5"].HasImage())
}

func TestSocialLink(t *testing.T) {
	l, ok := SocialLink("github")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/ABDULAAQILKHAN", l.URL)

	_, ok = SocialLink("myspace")
	assert.False(t, ok)
}

func TestValidateCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Catalog)
	}{
		{"duplicate project id", func(c *Catalog) { c.Projects[1].ID = c.Projects[0].ID }},
		{"empty experience id", func(c *Catalog) { c.Experiences[0].ID = "" }},
		{"unknown category", func(c *Catalog) { c.Skills[0].Category = "Database" }},
		{"relative live url", func(c *Catalog) { c.Projects[0].LiveURL = "/demo" }},
		{"bad social scheme", func(c *Catalog) { c.Profile.Social[0].URL = "ftp://example.com" }},
		{"empty mailto", func(c *Catalog) { c.Profile.Social[2].URL = "mailto:" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := All()
			tt.mut(&c)
			assert.Error(t, validateCatalog(c))
		})
	}
}
