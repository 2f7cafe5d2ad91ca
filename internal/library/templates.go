package library

import "sort"

// ProjectTemplate supplies the name and platform of a templated project.
type ProjectTemplate struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

var projectTemplates = map[string]ProjectTemplate{
	"social-media": {Key: "social-media", Name: "Social Media Campaign", Platform: "Instagram"},
	"youtube":      {Key: "youtube", Name: "YouTube Video Project", Platform: "YouTube"},
	"website":      {Key: "website", Name: "Website Content Project", Platform: "Website"},
	"marketing":    {Key: "marketing", Name: "Marketing Materials", Platform: "Print/Digital"},
}

// Templates lists the project templates sorted by key.
func Templates() []ProjectTemplate {
	out := make([]ProjectTemplate, 0, len(projectTemplates))
	for _, t := range projectTemplates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
