package person

import (
	"strings"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

// Person is an employee record. Only the fields the timesheet and calendar
// surfaces read are modeled here; HR master data lives elsewhere.
type Person struct {
	ID             string
	FirstName      string
	LastName       string
	RegistrationNo string // sicil no
	BirthDate      *dateutil.Date
	GroupTags      []string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
