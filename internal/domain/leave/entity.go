package leave

import (
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
)

type PeriodStatus string

const (
	PeriodStatusPending  PeriodStatus = "pending"
	PeriodStatusApproved PeriodStatus = "approved"
	PeriodStatusRejected PeriodStatus = "rejected"
)

var PeriodStatusValues = []string{
	string(PeriodStatusPending),
	string(PeriodStatusApproved),
	string(PeriodStatusRejected),
}

// Leave types carried from the source system. TypeWeeklyRest is the sentinel
// the day resolver treats as an unconditional rest day rather than a leave.
const (
	TypeAnnual     = "Yıllık İzin"
	TypeSick       = "Hastalık İzni"
	TypeUnpaid     = "Ücretsiz İzin"
	TypeExcused    = "Mazeret İzni"
	TypeWeeklyRest = "Haftalık İzin"
	TypeOther      = "Diğer"
)

var TypeValues = []string{
	TypeAnnual,
	TypeSick,
	TypeUnpaid,
	TypeExcused,
	TypeWeeklyRest,
	TypeOther,
}

// Period is one leave request spanning [StartDate, EndDate] inclusive.
// Only approved periods are visible to the timesheet engine.
type Period struct {
	ID        string
	PersonID  string
	StartDate dateutil.Date
	EndDate   dateutil.Date
	Type      string
	Status    PeriodStatus
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	PersonName *string
}
