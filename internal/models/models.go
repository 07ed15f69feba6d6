package models

// Identifiable is implemented by every mutable record kind. The collection
// store assigns ids through SetID and never trusts a caller-supplied id.
type Identifiable interface {
	GetID() int
	SetID(id int)
}

// Activity type values.
const (
	ActivityTypeOpenDag      = "open-dag"
	ActivityTypePresentatie  = "presentatie"
	ActivityTypeWorkshop     = "workshop"
	ActivityTypeProefcollege = "proefcollege"
	ActivityTypeBeurs        = "beurs"
)

// Study field values shared by activities and videos.
const (
	StudyFieldBusiness    = "business"
	StudyFieldLaw         = "law"
	StudyFieldEngineering = "engineering"
	StudyFieldMedicine    = "medicine"
	StudyFieldPsychology  = "psychology"
)

// Audience values.
const (
	AudienceScholieren = "scholieren"
	AudienceOuders     = "ouders"
	AudienceBeide      = "beide"
)

// Event type values.
const (
	EventTypeStudiedag        = "studiedag"
	EventTypeOuderavond       = "ouderavond"
	EventTypeBeurs            = "beurs"
	EventTypeMasterclass      = "masterclass"
	EventTypeInformatiesessie = "informatiesessie"
)

// VideoCategoryStudiekeuze is the only video category outside the study
// fields above.
const VideoCategoryStudiekeuze = "studiekeuze"

// Activity is an informational activity hosted by a university.
type Activity struct {
	ID                   int    `json:"id"`
	Title                string `json:"title"`
	Region               string `json:"region"`
	University           string `json:"university"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Type                 string `json:"type"`
	StudyField           string `json:"studyField"`
	Audience             string `json:"audience"`
	Description          string `json:"description"`
	AvailableSpots       int    `json:"availableSpots"`
	RegistrationRequired bool   `json:"registrationRequired"`
}

func (a *Activity) GetID() int   { return a.ID }
func (a *Activity) SetID(id int) { a.ID = id }

// Event is a calendar entry such as a study day or parent evening.
type Event struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	Time            string `json:"time"`
	Organizer       string `json:"organizer"`
	RegistrationURL string `json:"registrationUrl"`
	Capacity        int    `json:"capacity"`
}

func (e *Event) GetID() int   { return e.ID }
func (e *Event) SetID(id int) { e.ID = id }

// Video is a library entry in the video bibliotheek.
type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	UploadDate  string `json:"uploadDate"`
	Views       int    `json:"views"`
	VideoURL    string `json:"videoUrl"`
}

func (v *Video) GetID() int   { return v.ID }
func (v *Video) SetID(id int) { v.ID = id }

// Coordinates is a lat/lng pair for the region map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Region is static reference data; it has no admin lifecycle and its id is a
// lowercase code rather than an integer.
type Region struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Province    string      `json:"province"`
	Coordinates Coordinates `json:"coordinates"`
	Activities  int         `json:"activities"`
	NextEvent   string      `json:"nextEvent"`
	Description string      `json:"description"`
}
