package entity

import "time"

// Month is one of the 12 fixed calendar months, stored by its Indonesian name.
type Month string

const (
	MonthJanuari   Month = "Januari"
	MonthFebruari  Month = "Februari"
	MonthMaret     Month = "Maret"
	MonthApril     Month = "April"
	MonthMei       Month = "Mei"
	MonthJuni      Month = "Juni"
	MonthJuli      Month = "Juli"
	MonthAgustus   Month = "Agustus"
	MonthSeptember Month = "September"
	MonthOktober   Month = "Oktober"
	MonthNovember  Month = "November"
	MonthDesember  Month = "Desember"
)

var months = [12]Month{
	MonthJanuari, MonthFebruari, MonthMaret, MonthApril,
	MonthMei, MonthJuni, MonthJuli, MonthAgustus,
	MonthSeptember, MonthOktober, MonthNovember, MonthDesember,
}

// Months returns the 12 months in calendar order.
func Months() []Month {
	result := make([]Month, len(months))
	copy(result, months[:])
	return result
}

func IsValidMonth(month string) bool {
	for _, m := range months {
		if m == Month(month) {
			return true
		}
	}
	return false
}

// CurrentMonth maps the wall-clock month onto the enum.
func CurrentMonth(now time.Time) Month {
	return months[int(now.Month())-1]
}

func (m Month) String() string {
	return string(m)
}
