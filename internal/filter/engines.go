package filter

import "github.com/studieportaal/regiovoorlichting-api/internal/models"

// Filter keys exposed as query parameters by the browsing endpoints.
const (
	KeyRegion     = "region"
	KeyStudyField = "studyField"
	KeyType       = "type"
	KeyAudience   = "audience"
	KeyDate       = "date"
	KeyCategory   = "category"
	KeySearch     = "search"
)

// Activities returns the activity finder engine: four exact-match fields
// plus an inclusive from-date.
func Activities() *Engine[models.Activity] {
	return NewEngine(map[string]Matcher[models.Activity]{
		KeyRegion:     Equals(func(a models.Activity) string { return a.Region }),
		KeyStudyField: Equals(func(a models.Activity) string { return a.StudyField }),
		KeyType:       Equals(func(a models.Activity) string { return a.Type }),
		KeyAudience:   Equals(func(a models.Activity) string { return a.Audience }),
		KeyDate:       DateOnOrAfter(func(a models.Activity) string { return a.Date }),
	})
}

// Videos returns the video library engine: category plus free-text search
// over title and description.
func Videos() *Engine[models.Video] {
	return NewEngine(map[string]Matcher[models.Video]{
		KeyCategory: Equals(func(v models.Video) string { return v.Category }),
		KeySearch: Search(
			func(v models.Video) string { return v.Title },
			func(v models.Video) string { return v.Description },
		),
	})
}

// Events returns the event calendar engine.
func Events() *Engine[models.Event] {
	return NewEngine(map[string]Matcher[models.Event]{
		KeyType: Equals(func(e models.Event) string { return e.Type }),
		KeyDate: DateOnOrAfter(func(e models.Event) string { return e.Date }),
	})
}
