package session

import (
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// View is what a client sees of a session after each operation.
type View struct {
	ID         string          `json:"id"`
	Mojam      string          `json:"mojam"`
	Sort       domain.SortMode `json:"sort"`
	Root       string          `json:"root"`
	Index      int             `json:"index"`
	Total      int             `json:"total"`
	Words      []string        `json:"words"`
	Selected   string          `json:"selected"`
	Rendered   string          `json:"rendered"`
	Note       string          `json:"note"`
	Completed  int             `json:"completed"`
	Percentage int             `json:"percentage"`
	HasList    bool            `json:"hasList"`
	Dirty      bool            `json:"dirty"`
	Phase      string          `json:"phase"`
}

func (s *Service) view(id string, st curation.State) View {
	words := st.Words
	if words == nil {
		words = []string{}
	}
	return View{
		ID:         id,
		Mojam:      st.Mojam,
		Sort:       st.Sort,
		Root:       st.Root,
		Index:      st.Index,
		Total:      len(st.Roots),
		Words:      append([]string(nil), words...),
		Selected:   st.Selected,
		Rendered:   s.engine.Render(st),
		Note:       st.Note,
		Completed:  st.Completed,
		Percentage: st.Percentage(),
		HasList:    st.HasList,
		Dirty:      st.Dirty,
		Phase:      st.Phase.String(),
	}
}

// StartInput opens a session.
type StartInput struct {
	Mojam string
	Sort  domain.SortMode
	Root  string
}

func (i StartInput) Validate() error {
	var errs domain.FieldErrors

	if i.Sort != "" && !i.Sort.IsValid() {
		errs.Add("sort", "must be one of default, length, alpha")
	}
	if i.Mojam != "" && strings.TrimSpace(i.Mojam) == "" {
		errs.Add("mojam", "must not be blank")
	}

	return errs.Err()
}
