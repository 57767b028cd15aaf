package server

import (
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/contact"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/content"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/starfield"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/theme"
)

type fieldView struct {
	Name        string
	Label       string
	Type        string // "text", "email" or "textarea"
	Placeholder string
	Value       string
	Error       string
}

type contactView struct {
	Fields      []fieldView
	SubmitError string
	Sending     bool
	Submitted   bool
}

var fieldMeta = map[contact.Field]fieldView{
	contact.FieldName:    {Label: "Name", Type: "text", Placeholder: "Your name"},
	contact.FieldEmail:   {Label: "Email", Type: "email", Placeholder: "your.email@example.com"},
	contact.FieldMessage: {Label: "Message", Type: "textarea", Placeholder: "Tell me about your project..."},
}

func newContactView(st contact.State) contactView {
	v := contactView{
		SubmitError: st.SubmitError,
		Sending:     st.Sending(),
		Submitted:   st.Submitted(),
	}
	for _, f := range contact.Fields {
		fv := fieldMeta[f]
		fv.Name = string(f)
		fv.Value = st.Form.Get(f)
		fv.Error = st.Error(f)
		v.Fields = append(v.Fields, fv)
	}
	return v
}

type pageView struct {
	Profile     content.Profile
	SkillGroups []content.SkillGroup
	Projects    []content.Project
	Experiences []content.Experience
	Theme       theme.Visuals
	Scene       starfield.Scene
	Contact     contactView
	Year        int
}
