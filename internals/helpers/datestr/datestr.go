package datestr

import (
	"errors"
	"regexp"
	"time"
)

// Layout kalender yang diterima semua filter tanggal.
const Layout = "2006-01-02"

var re = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var ErrBadDate = errors.New("invalid date, expected YYYY-MM-DD")

// Validate menerima hanya tanggal kalender valid berbentuk YYYY-MM-DD.
// Bentuk benar tapi tanggal mustahil (mis. 2024-02-30) juga ditolak,
// supaya nilai tak pernah sampai ke query dalam keadaan meragukan.
func Validate(s string) error {
	if !re.MatchString(s) {
		return ErrBadDate
	}
	if _, err := time.Parse(Layout, s); err != nil {
		return ErrBadDate
	}
	return nil
}
