package calendar

import "time"

// Official Turkish public holidays. Multi-day religious holidays carry their
// full span in DurationDays.
var PublicHolidays = []Holiday{
	// 2026
	{StartDate: "2026-01-01", Name: "Yılbaşı", DurationDays: 1},
	{StartDate: "2026-03-20", Name: "Ramazan Bayramı", DurationDays: 3},
	{StartDate: "2026-04-23", Name: "Ulusal Egemenlik ve Çocuk Bayramı", DurationDays: 1},
	{StartDate: "2026-05-01", Name: "Emek ve Dayanışma Günü", DurationDays: 1},
	{StartDate: "2026-05-19", Name: "Atatürk'ü Anma, Gençlik ve Spor Bayramı", DurationDays: 1},
	{StartDate: "2026-05-27", Name: "Kurban Bayramı", DurationDays: 4},
	{StartDate: "2026-07-15", Name: "Demokrasi ve Milli Birlik Günü", DurationDays: 1},
	{StartDate: "2026-08-30", Name: "Zafer Bayramı", DurationDays: 1},
	{StartDate: "2026-10-29", Name: "Cumhuriyet Bayramı", DurationDays: 1},
	// 2027
	{StartDate: "2027-01-01", Name: "Yılbaşı", DurationDays: 1},
	{StartDate: "2027-03-09", Name: "Ramazan Bayramı", DurationDays: 3},
	{StartDate: "2027-04-23", Name: "Ulusal Egemenlik ve Çocuk Bayramı", DurationDays: 1},
	{StartDate: "2027-05-01", Name: "Emek ve Dayanışma Günü", DurationDays: 1},
	{StartDate: "2027-05-16", Name: "Kurban Bayramı", DurationDays: 4},
	{StartDate: "2027-05-19", Name: "Atatürk'ü Anma, Gençlik ve Spor Bayramı", DurationDays: 1},
	{StartDate: "2027-07-15", Name: "Demokrasi ve Milli Birlik Günü", DurationDays: 1},
	{StartDate: "2027-08-30", Name: "Zafer Bayramı", DurationDays: 1},
	{StartDate: "2027-10-29", Name: "Cumhuriyet Bayramı", DurationDays: 1},
}

// Memorial days recur yearly and never affect day-status resolution; they
// only feed the upcoming-events projection.
var MemorialDays = []RecurringEvent{
	{Month: time.November, Day: 10, Label: "Atatürk'ü Anma Günü"},
	{Month: time.March, Day: 18, Label: "Çanakkale Zaferi ve Şehitleri Anma Günü"},
	{Month: time.August, Day: 26, Label: "Büyük Taarruz Günü"},
	{Month: time.July, Day: 15, Label: "15 Temmuz Şehitlerini Anma"},
}
