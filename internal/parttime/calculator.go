package parttime

import (
	"sort"
	"strings"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/calendar"
	"go-staffpay/internal/config"
	"go-staffpay/internal/shared/scope"
)

type DayEarning struct {
	Date       string `json:"date"`
	Shift      string `json:"shift,omitempty"`
	Location   string `json:"location"`
	Salary     int64  `json:"salary"`
	IsOverride bool   `json:"is_override"`
}

// WeekEarning groups days by their ceil(day/7) index within a calendar month.
type WeekEarning struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	WeekIndex int          `json:"week_index"`
	Days      []DayEarning `json:"days"`
	WeekTotal int64        `json:"week_total"`
}

type SalaryDetail struct {
	StaffName     string        `json:"staff_name"`
	Location      string        `json:"location"`
	TotalDays     int           `json:"total_days"`
	Weeks         []WeekEarning `json:"weeks"`
	TotalEarnings int64         `json:"total_earnings"`
}

// Calculate sums the Present records of name within period. location may be
// a single location or a comma-joined list as returned by Project; an empty
// location matches every location the name worked at.
func Calculate(name, location string, records []attendance.PartTime, period Period, policy config.PayPolicy) SalaryDetail {
	key := scope.NormalizeName(name)
	from, to := period.Bounds()
	wanted := splitLocations(location)

	matched := make([]attendance.PartTime, 0, len(records))
	for _, r := range records {
		if r.Status != attendance.StatusPresent || r.NameKey() != key {
			continue
		}
		if !matchesLocation(wanted, r.Location) {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		matched = append(matched, r)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })

	detail := SalaryDetail{StaffName: strings.TrimSpace(name), Weeks: []WeekEarning{}}
	if len(matched) > 0 {
		detail.StaffName = strings.TrimSpace(matched[0].StaffName)
	}

	var locations []string
	seenLocation := map[string]bool{}
	seenDate := map[time.Time]bool{}
	weekPos := map[[3]int]int{}

	for _, r := range matched {
		if loc := strings.TrimSpace(r.Location); loc != "" && !seenLocation[loc] {
			seenLocation[loc] = true
			locations = append(locations, loc)
		}
		if !seenDate[r.Date] {
			seenDate[r.Date] = true
			detail.TotalDays++
		}

		bucket := [3]int{r.Date.Year(), int(r.Date.Month()), calendar.DisplayWeekIndex(r.Date)}
		pos, ok := weekPos[bucket]
		if !ok {
			pos = len(detail.Weeks)
			weekPos[bucket] = pos
			detail.Weeks = append(detail.Weeks, WeekEarning{Year: bucket[0], Month: bucket[1], WeekIndex: bucket[2]})
		}

		pay := r.ResolvedPay(policy)
		w := &detail.Weeks[pos]
		w.Days = append(w.Days, DayEarning{
			Date:       r.Date.Format(calendar.DateLayout),
			Shift:      r.Shift,
			Location:   strings.TrimSpace(r.Location),
			Salary:     pay,
			IsOverride: r.SalaryOverride,
		})
		w.WeekTotal += pay
		detail.TotalEarnings += pay
	}

	detail.Location = strings.Join(locations, ", ")
	if detail.Location == "" {
		detail.Location = strings.TrimSpace(location)
	}
	return detail
}

// Project groups part-time records by normalized name and calculates each
// worker's earnings for the period, ordered by name.
func Project(records []attendance.PartTime, period Period, policy config.PayPolicy) []SalaryDetail {
	names := map[string]string{}
	for _, r := range records {
		if r.Status != attendance.StatusPresent {
			continue
		}
		key := r.NameKey()
		if _, ok := names[key]; !ok {
			names[key] = r.StaffName
		}
	}

	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SalaryDetail, 0, len(keys))
	for _, k := range keys {
		d := Calculate(names[k], "", records, period, policy)
		if d.TotalDays == 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

func splitLocations(location string) []string {
	var out []string
	for _, part := range strings.Split(location, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func matchesLocation(wanted []string, location string) bool {
	if len(wanted) == 0 {
		return true
	}
	location = strings.TrimSpace(location)
	for _, w := range wanted {
		if strings.EqualFold(w, location) {
			return true
		}
	}
	return false
}
