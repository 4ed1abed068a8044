package models

type RequestStatus string
type ExperienceLevel string
type Availability string

const (
	// Статусы направленной записи ConnectionRequest.
	// accepted выставляется только парно, при взаимном интересе.
	RequestStatusInterested RequestStatus = "interested"
	RequestStatusIgnored    RequestStatus = "ignored"
	RequestStatusAccepted   RequestStatus = "accepted"

	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"

	AvailabilityFullTime Availability = "full_time"
	AvailabilityPartTime Availability = "part_time"
	AvailabilityContract Availability = "contract"
	AvailabilityOpen     Availability = "open"
)

// FilterAny - сентинел "без фильтра" для параметров ленты
const FilterAny = "any"
